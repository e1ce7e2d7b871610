package domain

import (
	"fmt"
	"time"
)

const (
	// SUBJECT_ENRICHMENT_PREFIX prefixes the subjects enrichment outcomes are published on
	SUBJECT_ENRICHMENT_PREFIX = "catalog.enrichment"
	// SUBJECT_PRODUCTS_IMPORTED is the subject catalog ingestion publishes imported product IDs on
	SUBJECT_PRODUCTS_IMPORTED = "catalog.products.imported"
)

// EnrichmentEvent is published after a product pass has been committed
type EnrichmentEvent struct {
	RunID      string         `json:"run_id"`
	ProductID  int64          `json:"product_id"`
	Pass       Pass           `json:"pass"`
	Status     AuditStatus    `json:"status"`
	Sources    []Source       `json:"sources"`
	State      LifecycleState `json:"state"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Subject returns the subject the event is published on, e.g. "catalog.enrichment.technical.success"
func (e *EnrichmentEvent) Subject() string {
	return fmt.Sprintf("%s.%s.%s", SUBJECT_ENRICHMENT_PREFIX, e.Pass, e.Status)
}

// ProductsImportedEvent announces products created or updated by catalog ingestion
type ProductsImportedEvent struct {
	ProductIDs []int64 `json:"product_ids"`
	// Pass defaults to the technical pass when empty
	Pass Pass `json:"pass,omitempty"`
}
