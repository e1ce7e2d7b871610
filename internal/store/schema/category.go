package schema

import "time"

// Category represents the categories table - public storefront categories
type Category struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;not null;type:text"`
	IsCanonical bool      `gorm:"column:is_canonical;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// CategoryAlias represents the category_aliases table - supplier category labels mapped to a public category
type CategoryAlias struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name       string    `gorm:"column:name;not null;type:text"`
	CategoryID int64     `gorm:"column:category_id;not null;index"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the CategoryAlias model
func (CategoryAlias) TableName() string {
	return "category_aliases"
}
