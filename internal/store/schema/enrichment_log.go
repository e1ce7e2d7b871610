package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
)

// EnrichmentLog represents the enrichment_logs table - one immutable audit entry per product per pass
type EnrichmentLog struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// RunID groups the entries written by one pass over a batch
	RunID string `gorm:"column:run_id;not null;type:text;index"`
	// ProductID references the enriched product
	ProductID int64 `gorm:"column:product_id;not null;index"`
	// Pass is technical or marketing
	Pass domain.Pass `gorm:"column:pass;not null;type:text"`
	// Source names the contributing sources, or "mixed"
	Source string `gorm:"column:source;not null;type:text"`
	// Status is success, partial, error or skipped
	Status domain.AuditStatus `gorm:"column:status;not null;type:text"`
	// Summary is the one-line human readable summary
	Summary string `gorm:"column:summary;not null;type:text"`
	// Details lists every source outcome as JSON
	Details datatypes.JSON `gorm:"column:details;type:jsonb"`
	// CreatedAt is the timestamp of the entry
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the EnrichmentLog model
func (EnrichmentLog) TableName() string {
	return "enrichment_logs"
}

// EnrichmentLogDetails is the JSON shape stored in EnrichmentLog.Details
type EnrichmentLogDetails struct {
	Successes       []string          `json:"successes"`
	Misses          []string          `json:"misses"`
	Errors          map[string]string `json:"errors,omitempty"`
	AttributesError string            `json:"attributes_error,omitempty"`
	StateBefore     string            `json:"state_before"`
	StateAfter      string            `json:"state_after"`
	ImagesAdded     int               `json:"images_added"`
}
