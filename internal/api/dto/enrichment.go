package dto

import (
	"encoding/json"
	"time"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/store/schema"
)

const (
	// MAX_TRIGGER_PRODUCTS caps the product ids of one trigger request
	MAX_TRIGGER_PRODUCTS = 500
	// MAX_PENDING_LIMIT caps the selection of one mass enrichment request
	MAX_PENDING_LIMIT = 1000
	// DEFAULT_LOGS_LIMIT is the page size of audit listings
	DEFAULT_LOGS_LIMIT = 20
	// MAX_LOGS_LIMIT caps the page size of audit listings
	MAX_LOGS_LIMIT = 100
)

// TriggerEnrichmentRequest is the body of POST /api/v1/enrichments
type TriggerEnrichmentRequest struct {
	ProductIDs []int64     `json:"product_ids" binding:"required,min=1,dive,gt=0"`
	Pass       domain.Pass `json:"pass"`
}

// TriggerPendingRequest is the body of POST /api/v1/enrichments/pending
type TriggerPendingRequest struct {
	// Limit caps the selection; zero uses the server default
	Limit int         `json:"limit" binding:"gte=0"`
	Pass  domain.Pass `json:"pass"`
}

// TriggerEnrichmentResponse identifies the started workflow
type TriggerEnrichmentResponse struct {
	WorkflowID string      `json:"workflow_id"`
	RunID      string      `json:"run_id"`
	Pass       domain.Pass `json:"pass"`
	Products   int         `json:"products,omitempty"`
}

// EnrichmentLogsQuery holds query parameters for GET /api/v1/products/:id/enrichment-logs
type EnrichmentLogsQuery struct {
	Pass   domain.Pass `form:"pass"`
	Limit  int         `form:"limit,default=20" binding:"gte=1,lte=100"`
	Offset uint64      `form:"offset,default=0"`
}

// EnrichmentLogResponse is one audit entry
type EnrichmentLogResponse struct {
	ID        int64              `json:"id"`
	RunID     string             `json:"run_id"`
	ProductID int64              `json:"product_id"`
	Pass      domain.Pass        `json:"pass"`
	Source    string             `json:"source"`
	Status    domain.AuditStatus `json:"status"`
	Summary   string             `json:"summary"`
	Details   json.RawMessage    `json:"details,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// EnrichmentLogListResponse is a page of audit entries, newest first
type EnrichmentLogListResponse struct {
	Logs []EnrichmentLogResponse `json:"logs"`
	// Offset is the offset of the next page, nil on the last page
	Offset *uint64 `json:"offset,omitempty"`
	Total  uint64  `json:"total"`
}

// EnrichmentSourceResponse is the last outcome of one source for a product
type EnrichmentSourceResponse struct {
	Source        domain.Source  `json:"source"`
	LastOutcome   domain.Outcome `json:"last_outcome"`
	LastError     *string        `json:"last_error,omitempty"`
	LastFetchedAt time.Time      `json:"last_fetched_at"`
}

// MapEnrichmentLogToDTO maps an audit row to its response
func MapEnrichmentLogToDTO(log schema.EnrichmentLog) EnrichmentLogResponse {
	resp := EnrichmentLogResponse{
		ID:        log.ID,
		RunID:     log.RunID,
		ProductID: log.ProductID,
		Pass:      log.Pass,
		Source:    log.Source,
		Status:    log.Status,
		Summary:   log.Summary,
		CreatedAt: log.CreatedAt,
	}
	if len(log.Details) > 0 {
		resp.Details = json.RawMessage(log.Details)
	}
	return resp
}

// MapEnrichmentSourceToDTO maps a source tracking row to its response
func MapEnrichmentSourceToDTO(source schema.EnrichmentSource) EnrichmentSourceResponse {
	return EnrichmentSourceResponse{
		Source:        source.Source,
		LastOutcome:   source.LastOutcome,
		LastError:     source.LastError,
		LastFetchedAt: source.LastFetchedAt,
	}
}
