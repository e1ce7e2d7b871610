package schema

import (
	"time"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
)

// EnrichmentSource represents the enrichment_sources table - tracks the last fetch of each source per product
type EnrichmentSource struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProductID references the product being enriched
	ProductID int64 `gorm:"column:product_id;not null;uniqueIndex:idx_enrichment_sources_product_source,priority:1"`
	// Source identifies the connector
	Source domain.Source `gorm:"column:source;not null;type:text;uniqueIndex:idx_enrichment_sources_product_source,priority:2"`
	// LastOutcome is success, miss or error
	LastOutcome domain.Outcome `gorm:"column:last_outcome;not null;type:text"`
	// LastError contains the error message if the last call failed
	LastError *string `gorm:"column:last_error;type:text"`
	// LastHash is the canonical JSON hash of the last successful payload
	LastHash *string `gorm:"column:last_hash;type:text"`
	// LastFetchedAt is the timestamp of the last call
	LastFetchedAt time.Time `gorm:"column:last_fetched_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the EnrichmentSource model
func (EnrichmentSource) TableName() string {
	return "enrichment_sources"
}
