package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francuello10/tec-ecommerce-suite/internal/media"
	"github.com/francuello10/tec-ecommerce-suite/internal/store"
	"github.com/francuello10/tec-ecommerce-suite/internal/store/schema"
)

func TestDraft_CloneIsIndependent(t *testing.T) {
	product := &schema.Product{ID: 1, Name: "Mouse", EnrichedDescription: "<p>a</p>"}
	gallery := []schema.ProductImage{{SourceURL: "https://img/1.jpg"}}
	draft := NewDraft(product, gallery)

	clone := draft.Clone()
	clone.EnrichedDescription += "<p>b</p>"
	clone.Attributes = append(clone.Attributes, store.AttributeAssignment{Name: "DPI", Value: "1600"})
	clone.Stage([]media.StagedImage{
		{SourceURL: "https://img/2.jpg", Decision: media.DecisionPrimary, Image: &media.Image{Payload: []byte{1}}},
	})
	clone.Dedup().MarkSeen("https://img/2.jpg")

	assert.Equal(t, "<p>a</p>", draft.EnrichedDescription)
	assert.Empty(t, draft.Attributes)
	assert.Nil(t, draft.Primary)
	assert.False(t, draft.Dedup().Seen("https://img/2.jpg"))
	assert.True(t, draft.Dedup().Seen("https://img/1.jpg"))
	assert.Equal(t, 1, clone.ImagesAdded())
}

func TestDraft_ChangesOnlyListsModifiedFields(t *testing.T) {
	video := "https://youtu.be/x"
	product := &schema.Product{ID: 1, Name: "Mouse", VideoURL: &video}
	draft := NewDraft(product, nil)

	update, images := draft.Changes()
	assert.Equal(t, store.ProductUpdate{}, update)
	assert.Empty(t, images)

	draft.Name = "Mouse Logitech M90"
	original := "Mouse"
	draft.OriginalName = &original
	draft.DatasheetURL = "https://x/ds.pdf"
	draft.ExternalProductURL = "https://psref.lenovo.com/Detail/M90"
	draft.Stage([]media.StagedImage{
		{SourceURL: "https://img/p.jpg", Decision: media.DecisionPrimary, Image: &media.Image{Payload: []byte{1}, MimeType: "image/jpeg"}},
		{SourceURL: "https://img/g.jpg", Decision: media.DecisionGallery, Sequence: 2000, Name: "Icecat View 2", Image: &media.Image{Payload: []byte{2}, MimeType: "image/png"}},
	})

	update, images = draft.Changes()
	require.NotNil(t, update.Name)
	assert.Equal(t, "Mouse Logitech M90", *update.Name)
	require.NotNil(t, update.OriginalName)
	assert.Equal(t, "Mouse", *update.OriginalName)
	require.NotNil(t, update.DatasheetURL)
	require.NotNil(t, update.ExternalProductURL)
	assert.Equal(t, "https://psref.lenovo.com/Detail/M90", *update.ExternalProductURL)
	assert.Nil(t, update.VideoURL)
	assert.Nil(t, update.EnrichedDescription)
	require.NotNil(t, update.PrimaryImage)
	assert.Equal(t, "https://img/p.jpg", update.PrimaryImage.SourceURL)
	require.Len(t, images, 1)
	assert.Equal(t, 2000, images[0].Sequence)
	assert.Equal(t, "image/png", images[0].MimeType)
}

func TestDraft_OriginalNameIsNotRewritten(t *testing.T) {
	original := "Supplier name"
	draft := NewDraft(&schema.Product{ID: 1, Name: "SEO", OriginalName: &original}, nil)

	draft.Name = "Better SEO"
	update, _ := draft.Changes()

	assert.Nil(t, update.OriginalName)
	require.NotNil(t, update.Name)
}
