package schema

import "time"

// VariantMode controls whether an attribute generates product variants
type VariantMode string

const (
	// VariantModeNone never generates variants; the only mode the enrichment engine creates
	VariantModeNone VariantMode = "no_variant"
	// VariantModeAlways generates variants for every value
	VariantModeAlways VariantMode = "always"
	// VariantModeDynamic generates variants on demand
	VariantModeDynamic VariantMode = "dynamic"
)

// Attribute represents the attributes table - an open-vocabulary specification dimension
type Attribute struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is unique case-insensitively
	Name string `gorm:"column:name;not null;type:text"`
	// VariantMode is no_variant for attributes created by enrichment
	VariantMode VariantMode `gorm:"column:variant_mode;not null;default:'no_variant';type:text"`
	// CreatedAt is the timestamp when the attribute was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Attribute model
func (Attribute) TableName() string {
	return "attributes"
}

// AttributeValue represents the attribute_values table
type AttributeValue struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AttributeID references the attribute
	AttributeID int64 `gorm:"column:attribute_id;not null;index"`
	// Name is the value, unique per attribute case-insensitively
	Name string `gorm:"column:name;not null;type:text"`
	// CreatedAt is the timestamp when the value was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Attribute Attribute `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the AttributeValue model
func (AttributeValue) TableName() string {
	return "attribute_values"
}

// ProductAttributeLine represents the product_attribute_lines table - one entry per attribute per product
type ProductAttributeLine struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProductID references the product
	ProductID int64 `gorm:"column:product_id;not null;uniqueIndex:idx_product_attribute_lines_product_attribute,priority:1"`
	// AttributeID references the attribute
	AttributeID int64 `gorm:"column:attribute_id;not null;uniqueIndex:idx_product_attribute_lines_product_attribute,priority:2"`
	// CreatedAt is the timestamp when the line was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Attribute Attribute `gorm:"foreignKey:AttributeID"`
}

// TableName specifies the table name for the ProductAttributeLine model
func (ProductAttributeLine) TableName() string {
	return "product_attribute_lines"
}

// ProductAttributeLineValue represents the product_attribute_line_values join table
type ProductAttributeLineValue struct {
	LineID  int64 `gorm:"column:line_id;primaryKey"`
	ValueID int64 `gorm:"column:value_id;primaryKey"`
}

// TableName specifies the table name for the ProductAttributeLineValue model
func (ProductAttributeLineValue) TableName() string {
	return "product_attribute_line_values"
}
