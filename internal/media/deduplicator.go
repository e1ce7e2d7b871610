package media

import (
	"strings"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
)

// Decision is the outcome of admitting an image candidate
type Decision string

const (
	// DecisionPrimary makes the candidate the product's primary image
	DecisionPrimary Decision = "primary"
	// DecisionGallery appends the candidate to the gallery
	DecisionGallery Decision = "gallery"
	// DecisionReject drops the candidate
	DecisionReject Decision = "reject"
)

// Sequence bands per tier, so specialist images sort ahead of fallback images across runs
const (
	BandSpecialist = 1000
	BandStructured = 2000
	BandFallback   = 3000
	BandOther      = 4000
)

// BandBase returns the first gallery sequence owned by a tier
func BandBase(tier domain.Tier) int {
	switch tier {
	case domain.TierSpecialist:
		return BandSpecialist
	case domain.TierStructured:
		return BandStructured
	case domain.TierFallback:
		return BandFallback
	default:
		return BandOther
	}
}

// SeenSet is the set of image URLs already known for a product in the current run
type SeenSet map[string]struct{}

// NewSeenSet creates a set preloaded with urls; blanks are ignored
func NewSeenSet(urls ...string) SeenSet {
	s := make(SeenSet, len(urls))
	for _, u := range urls {
		s.Add(u)
	}
	return s
}

// Has reports whether url is in the set
func (s SeenSet) Has(url string) bool {
	_, ok := s[normalizeURL(url)]
	return ok
}

// Add inserts url into the set
func (s SeenSet) Add(url string) {
	if key := normalizeURL(url); key != "" {
		s[key] = struct{}{}
	}
}

// Clone returns an independent copy
func (s SeenSet) Clone() SeenSet {
	c := make(SeenSet, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

func normalizeURL(url string) string {
	return strings.TrimSpace(url)
}

// Deduplicator tracks one product's images during a pass.
// It is not safe for concurrent use; each product owns its own.
type Deduplicator struct {
	seen         SeenSet
	hasPrimary   bool
	galleryCount int
}

// NewDeduplicator creates a deduplicator seeded with the product's stored images
func NewDeduplicator(seen SeenSet, hasPrimary bool, galleryCount int) *Deduplicator {
	if seen == nil {
		seen = NewSeenSet()
	}
	return &Deduplicator{seen: seen, hasPrimary: hasPrimary, galleryCount: galleryCount}
}

// Admit decides the fate of a candidate and records it as seen.
// The first admitted candidate of a product without a primary image becomes primary.
func (d *Deduplicator) Admit(url string) Decision {
	if normalizeURL(url) == "" || d.seen.Has(url) {
		return DecisionReject
	}
	d.seen.Add(url)

	if !d.hasPrimary {
		d.hasPrimary = true
		return DecisionPrimary
	}
	d.galleryCount++
	return DecisionGallery
}

// Seen reports whether url was already stored or admitted
func (d *Deduplicator) Seen(url string) bool {
	return d.seen.Has(url)
}

// MarkSeen records url without admitting it, so a failed download is not retried in the same run
func (d *Deduplicator) MarkSeen(url string) {
	d.seen.Add(url)
}

// GalleryCount is the number of gallery images stored or admitted so far
func (d *Deduplicator) GalleryCount() int {
	return d.galleryCount
}

// HasPrimary reports whether the product has, or was given, a primary image
func (d *Deduplicator) HasPrimary() bool {
	return d.hasPrimary
}

// Clone returns an independent copy for staging
func (d *Deduplicator) Clone() *Deduplicator {
	return &Deduplicator{seen: d.seen.Clone(), hasPrimary: d.hasPrimary, galleryCount: d.galleryCount}
}
