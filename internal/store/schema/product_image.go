package schema

import (
	"time"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
)

// ProductImage represents the product_images table - secondary gallery images.
// Rows are never updated; a full resync deletes and recreates them.
type ProductImage struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProductID references the owning product
	ProductID int64 `gorm:"column:product_id;not null;uniqueIndex:idx_product_images_product_source_url,priority:1"`
	// Name is the display name, tagged with the originating source
	Name string `gorm:"column:name;not null;type:text"`
	// Sequence orders the gallery; each source tier owns a band
	Sequence int `gorm:"column:sequence;not null"`
	// Payload is the image binary
	Payload []byte `gorm:"column:payload;not null;type:bytea"`
	// MimeType is the sniffed content type
	MimeType string `gorm:"column:mime_type;not null;type:text"`
	// SourceURL is the dedup key
	SourceURL string `gorm:"column:source_url;not null;type:text;uniqueIndex:idx_product_images_product_source_url,priority:2"`
	// Source is the connector that contributed the image
	Source domain.Source `gorm:"column:source;not null;type:text"`
	// CreatedAt is the timestamp when the image was stored
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ProductImage model
func (ProductImage) TableName() string {
	return "product_images"
}
