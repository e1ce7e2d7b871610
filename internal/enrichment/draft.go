package enrichment

import (
	"time"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/media"
	"github.com/francuello10/tec-ecommerce-suite/internal/store"
	"github.com/francuello10/tec-ecommerce-suite/internal/store/schema"
)

// Draft is the staged state of one product during a pass.
// Connector contributions are staged on a Clone and only replace the
// draft when staging succeeded, so a failed source leaves no trace.
type Draft struct {
	Name                 string
	OriginalName         *string
	EnrichedDescription  string
	TechnicalDescription string
	MarketingDescription string
	VideoURL             string
	DatasheetURL         string
	ExternalProductURL   string
	Primary              *media.StagedImage
	Gallery              []media.StagedImage
	Attributes           []store.AttributeAssignment

	dedup *media.Deduplicator
	base  snapshot
}

type snapshot struct {
	name                 string
	originalName         *string
	enrichedDescription  string
	technicalDescription string
	marketingDescription string
	videoURL             string
	datasheetURL         string
	externalProductURL   string
}

// NewDraft stages a product whose gallery is already stored
func NewDraft(product *schema.Product, gallery []schema.ProductImage) *Draft {
	seen := media.NewSeenSet()
	for _, img := range gallery {
		seen.Add(img.SourceURL)
	}
	if product.ImageSourceURL != nil {
		seen.Add(*product.ImageSourceURL)
	}

	d := &Draft{
		Name:                 product.Name,
		OriginalName:         product.OriginalName,
		EnrichedDescription:  product.EnrichedDescription,
		TechnicalDescription: product.TechnicalDescription,
		MarketingDescription: product.MarketingDescription,
		VideoURL:             deref(product.VideoURL),
		DatasheetURL:         deref(product.DatasheetURL),
		ExternalProductURL:   deref(product.ExternalProductURL),
		dedup:                media.NewDeduplicator(seen, product.HasPrimaryImage(), len(gallery)),
	}
	d.base = snapshot{
		name:                 d.Name,
		originalName:         d.OriginalName,
		enrichedDescription:  d.EnrichedDescription,
		technicalDescription: d.TechnicalDescription,
		marketingDescription: d.MarketingDescription,
		videoURL:             d.VideoURL,
		datasheetURL:         d.DatasheetURL,
		externalProductURL:   d.ExternalProductURL,
	}
	return d
}

// Clone returns an independent copy to stage a contribution on
func (d *Draft) Clone() *Draft {
	c := *d
	if d.OriginalName != nil {
		original := *d.OriginalName
		c.OriginalName = &original
	}
	if d.Primary != nil {
		primary := *d.Primary
		c.Primary = &primary
	}
	c.Gallery = append([]media.StagedImage(nil), d.Gallery...)
	c.Attributes = append([]store.AttributeAssignment(nil), d.Attributes...)
	c.dedup = d.dedup.Clone()
	return &c
}

// Dedup is the image admission state of the draft
func (d *Draft) Dedup() *media.Deduplicator {
	return d.dedup
}

// Stage records admitted images on the draft
func (d *Draft) Stage(images []media.StagedImage) {
	for _, img := range images {
		if img.Decision == media.DecisionPrimary {
			primary := img
			d.Primary = &primary
			continue
		}
		d.Gallery = append(d.Gallery, img)
	}
}

// ImagesAdded counts the staged primary and gallery images
func (d *Draft) ImagesAdded() int {
	n := len(d.Gallery)
	if d.Primary != nil {
		n++
	}
	return n
}

// Changes renders the draft as a store update with only the fields that differ from the product
func (d *Draft) Changes() (store.ProductUpdate, []store.CreateProductImageInput) {
	var update store.ProductUpdate

	if d.Name != d.base.name {
		update.Name = strPtr(d.Name)
	}
	if d.OriginalName != nil && d.base.originalName == nil {
		update.OriginalName = strPtr(*d.OriginalName)
	}
	if d.EnrichedDescription != d.base.enrichedDescription {
		update.EnrichedDescription = strPtr(d.EnrichedDescription)
	}
	if d.TechnicalDescription != d.base.technicalDescription {
		update.TechnicalDescription = strPtr(d.TechnicalDescription)
	}
	if d.MarketingDescription != d.base.marketingDescription {
		update.MarketingDescription = strPtr(d.MarketingDescription)
	}
	if d.VideoURL != d.base.videoURL {
		update.VideoURL = strPtr(d.VideoURL)
	}
	if d.DatasheetURL != d.base.datasheetURL {
		update.DatasheetURL = strPtr(d.DatasheetURL)
	}
	if d.ExternalProductURL != d.base.externalProductURL {
		update.ExternalProductURL = strPtr(d.ExternalProductURL)
	}
	if d.Primary != nil && d.Primary.Image != nil {
		update.PrimaryImage = &store.PrimaryImageInput{
			Payload:   d.Primary.Image.Payload,
			MimeType:  d.Primary.Image.MimeType,
			SourceURL: d.Primary.SourceURL,
		}
	}

	images := make([]store.CreateProductImageInput, 0, len(d.Gallery))
	for _, img := range d.Gallery {
		if img.Image == nil {
			continue
		}
		images = append(images, store.CreateProductImageInput{
			Name:      img.Name,
			Sequence:  img.Sequence,
			Payload:   img.Image.Payload,
			MimeType:  img.Image.MimeType,
			SourceURL: img.SourceURL,
			Source:    img.Source,
		})
	}

	return update, images
}

// markEnriched sets the lifecycle fields of a pass with at least one success
func markEnriched(update *store.ProductUpdate, state domain.LifecycleState, sources []domain.Source, at time.Time) {
	update.EnrichmentState = &state
	if source := domain.ContributingSource(sources); source != "" {
		update.EnrichmentSource = &source
	}
	update.EnrichedAt = &at
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string {
	return &s
}
