package schema

import (
	"time"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
)

// Product represents the products table - the subject of enrichment
type Product struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PartNumber is the manufacturer part number (MPN)
	PartNumber *string `gorm:"column:part_number;type:text;index"`
	// SupplierSKU is the supplier's internal reference, used when no part number is known
	SupplierSKU string `gorm:"column:supplier_sku;not null;type:text;uniqueIndex"`
	// Barcode is the EAN/UPC code
	Barcode *string `gorm:"column:barcode;type:text"`
	// Name is the display name, possibly rewritten by the AI pass
	Name string `gorm:"column:name;not null;type:text"`
	// OriginalName keeps the name as it was before the first AI rewrite
	OriginalName *string `gorm:"column:original_name;type:text"`
	// BrandID references the canonical brand
	BrandID *int64 `gorm:"column:brand_id"`
	// CategoryID references the public category
	CategoryID *int64 `gorm:"column:category_id"`
	// EnrichedDescription accumulates one attributed HTML section per source
	EnrichedDescription string `gorm:"column:enriched_description;not null;default:'';type:text"`
	// TechnicalDescription holds the technical rich text
	TechnicalDescription string `gorm:"column:technical_description;not null;default:'';type:text"`
	// MarketingDescription holds the AI-written marketing rich text
	MarketingDescription string `gorm:"column:marketing_description;not null;default:'';type:text"`
	// VideoURL is a product video found by the marketing pass
	VideoURL *string `gorm:"column:video_url;type:text"`
	// DatasheetURL is a PDF datasheet found by the technical pass
	DatasheetURL *string `gorm:"column:datasheet_url;type:text"`
	// ExternalProductURL is the manufacturer's product page found by the technical pass
	ExternalProductURL *string `gorm:"column:external_product_url;type:text"`
	// ImageData is the primary image payload
	ImageData []byte `gorm:"column:image_data;type:bytea"`
	// ImageMimeType is the content type of the primary image
	ImageMimeType *string `gorm:"column:image_mime_type;type:text"`
	// ImageSourceURL is the URL the primary image was fetched from
	ImageSourceURL *string `gorm:"column:image_source_url;type:text"`
	// EnrichmentState is the lifecycle state (draft, tech_done, marketing_done, full_enriched)
	EnrichmentState domain.LifecycleState `gorm:"column:enrichment_state;not null;default:'draft';type:text;index"`
	// EnrichmentSource is the source that last contributed, or "mixed"
	EnrichmentSource *string `gorm:"column:enrichment_source;type:text"`
	// ForceEnrichment re-runs the technical pass on an already enriched product
	ForceEnrichment bool `gorm:"column:force_enrichment;not null;default:false"`
	// EnrichedAt is the timestamp of the last successful pass
	EnrichedAt *time.Time `gorm:"column:enriched_at;type:timestamptz"`
	// CreatedAt is the timestamp when the product was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the product was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Brand    *Brand    `gorm:"foreignKey:BrandID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// Identifier returns the part number, falling back to the supplier SKU
func (p *Product) Identifier() string {
	if p.PartNumber != nil && *p.PartNumber != "" {
		return *p.PartNumber
	}
	return p.SupplierSKU
}

// HasPrimaryImage reports whether a primary image is stored
func (p *Product) HasPrimaryImage() bool {
	return len(p.ImageData) > 0
}
