package schema

import "time"

// Brand represents the brands table
type Brand struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the canonical brand name, unique case-insensitively
	Name string `gorm:"column:name;not null;type:text"`
	// IsCanonical is true when the brand comes from the authoritative reference catalog
	IsCanonical bool `gorm:"column:is_canonical;not null;default:false"`
	// WebsiteURL is the manufacturer website
	WebsiteURL *string `gorm:"column:website_url;type:text"`
	// CreatedAt is the timestamp when the brand was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Brand model
func (Brand) TableName() string {
	return "brands"
}

// BrandAlias represents the brand_aliases table - raw supplier labels known to resolve to a brand
type BrandAlias struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the raw label, unique case-insensitively
	Name string `gorm:"column:name;not null;type:text"`
	// BrandID references the resolved brand
	BrandID int64 `gorm:"column:brand_id;not null;index"`
	// CreatedAt is the timestamp when the alias was learned
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Brand Brand `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the BrandAlias model
func (BrandAlias) TableName() string {
	return "brand_aliases"
}
