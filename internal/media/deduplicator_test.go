package media

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
)

func TestDeduplicator_Admit(t *testing.T) {
	d := NewDeduplicator(NewSeenSet("https://img/existing.jpg"), false, 0)

	assert.Equal(t, DecisionReject, d.Admit(""))
	assert.Equal(t, DecisionReject, d.Admit("https://img/existing.jpg"))
	assert.Equal(t, DecisionPrimary, d.Admit("https://img/1.jpg"))
	assert.Equal(t, DecisionGallery, d.Admit("https://img/2.jpg"))
	assert.Equal(t, DecisionReject, d.Admit(" https://img/2.jpg "))
	assert.Equal(t, DecisionGallery, d.Admit("https://img/3.jpg"))

	assert.True(t, d.HasPrimary())
	assert.Equal(t, 2, d.GalleryCount())
}

func TestDeduplicator_ExistingPrimary(t *testing.T) {
	d := NewDeduplicator(nil, true, 4)

	assert.Equal(t, DecisionGallery, d.Admit("https://img/1.jpg"))
	assert.Equal(t, 5, d.GalleryCount())
}

func TestDeduplicator_CloneIsIndependent(t *testing.T) {
	d := NewDeduplicator(nil, false, 0)
	staged := d.Clone()

	assert.Equal(t, DecisionPrimary, staged.Admit("https://img/1.jpg"))
	assert.False(t, d.HasPrimary())
	assert.False(t, d.Seen("https://img/1.jpg"))
	assert.Equal(t, DecisionPrimary, d.Admit("https://img/1.jpg"))
}

func TestDeduplicator_MarkSeen(t *testing.T) {
	d := NewDeduplicator(nil, false, 0)
	d.MarkSeen("https://img/broken.jpg")

	assert.Equal(t, DecisionReject, d.Admit("https://img/broken.jpg"))
	assert.False(t, d.HasPrimary())
}

func TestBandBase(t *testing.T) {
	assert.Equal(t, 1000, BandBase(domain.TierSpecialist))
	assert.Equal(t, 2000, BandBase(domain.TierStructured))
	assert.Equal(t, 3000, BandBase(domain.TierFallback))
	assert.Equal(t, 4000, BandBase(domain.TierMarketing))
	assert.Less(t, BandBase(domain.TierSpecialist)+999, BandBase(domain.TierStructured))
}
