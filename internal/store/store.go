package store

import (
	"context"
	"time"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetProductByID retrieves a product with its brand and category, or nil if it does not exist
	GetProductByID(ctx context.Context, id int64) (*schema.Product, error)
	// GetProductsByIDs retrieves products with their brand and category, ordered by ID
	GetProductsByIDs(ctx context.Context, ids []int64) ([]*schema.Product, error)
	// GetPendingProductIDs selects products waiting for enrichment, priority categories first
	GetPendingProductIDs(ctx context.Context, filter PendingProductsFilter) ([]int64, error)
	// GetProductGallery returns the product's gallery ordered by sequence, without payloads
	GetProductGallery(ctx context.Context, productID int64) ([]schema.ProductImage, error)

	// SaveEnrichmentResult commits one product's pass in a single transaction
	SaveEnrichmentResult(ctx context.Context, input SaveEnrichmentResultInput) (*SaveEnrichmentResultOutput, error)
	// CreateEnrichmentLog records an audit entry without touching the product
	CreateEnrichmentLog(ctx context.Context, input CreateEnrichmentLogInput) error
	// GetEnrichmentLogs retrieves audit entries, newest first, and the total count
	GetEnrichmentLogs(ctx context.Context, filter EnrichmentLogFilter) ([]schema.EnrichmentLog, uint64, error)
	// GetEnrichmentSourcesByProductID retrieves per-source tracking rows for a product
	GetEnrichmentSourcesByProductID(ctx context.Context, productID int64) ([]schema.EnrichmentSource, error)

	// AssignProductAttributes find-or-creates attributes and values and links them to a product
	AssignProductAttributes(ctx context.Context, productID int64, assignments []AttributeAssignment) (*AttributeAssignmentResult, error)
	// GetProductAttributes lists the product's attribute lines as name/value pairs
	GetProductAttributes(ctx context.Context, productID int64) ([]AttributeAssignment, error)

	// FindLabelByName matches a canonical brand or category name case-insensitively
	FindLabelByName(ctx context.Context, kind LabelKind, name string) (*Label, error)
	// FindLabelByAlias matches a learned alias case-insensitively and returns its label
	FindLabelByAlias(ctx context.Context, kind LabelKind, alias string) (*Label, error)
	// CreateLabelAlias links a raw label to a brand or category; existing aliases are left untouched
	CreateLabelAlias(ctx context.Context, kind LabelKind, alias string, labelID int64) error
	// CreateLabel creates a brand or category, returning the existing row on a name conflict
	CreateLabel(ctx context.Context, kind LabelKind, name string, canonical bool) (*Label, error)
}

// LabelKind selects between the brand and category label tables
type LabelKind string

const (
	LabelKindBrand    LabelKind = "brand"
	LabelKindCategory LabelKind = "category"
)

// Label is a canonical brand or category
type Label struct {
	ID          int64
	Kind        LabelKind
	Name        string
	IsCanonical bool
}

// PendingProductsFilter selects products for mass enrichment
type PendingProductsFilter struct {
	Limit              int
	PriorityCategories []string
}

// EnrichmentLogFilter filters audit entries
type EnrichmentLogFilter struct {
	ProductID *int64
	RunID     *string
	Pass      *domain.Pass
	Limit     int
	Offset    uint64
}

// PrimaryImageInput sets the product's primary image
type PrimaryImageInput struct {
	Payload   []byte
	MimeType  string
	SourceURL string
}

// ProductUpdate lists product fields to write; nil fields are left untouched
type ProductUpdate struct {
	Name                 *string
	OriginalName         *string
	EnrichedDescription  *string
	TechnicalDescription *string
	MarketingDescription *string
	VideoURL             *string
	DatasheetURL         *string
	ExternalProductURL   *string
	PrimaryImage         *PrimaryImageInput
	EnrichmentState      *domain.LifecycleState
	EnrichmentSource     *string
	ForceEnrichment      *bool
	EnrichedAt           *time.Time
}

// CreateProductImageInput is a gallery image to insert
type CreateProductImageInput struct {
	Name      string
	Sequence  int
	Payload   []byte
	MimeType  string
	SourceURL string
	Source    domain.Source
}

// EnrichmentSourceInput is the outcome of one source for one product
type EnrichmentSourceInput struct {
	Source    domain.Source
	Outcome   domain.Outcome
	Error     *string
	Hash      *string
	FetchedAt time.Time
}

// CreateEnrichmentLogInput is an audit entry to record
type CreateEnrichmentLogInput struct {
	RunID     string
	ProductID int64
	Pass      domain.Pass
	Source    string
	Status    domain.AuditStatus
	Summary   string
	Details   schema.EnrichmentLogDetails
}

// SaveEnrichmentResultInput is everything a product pass commits
type SaveEnrichmentResultInput struct {
	ProductID  int64
	Product    ProductUpdate
	NewImages  []CreateProductImageInput
	Sources    []EnrichmentSourceInput
	Attributes []AttributeAssignment
	Log        CreateEnrichmentLogInput
}

// SaveEnrichmentResultOutput reports what the commit applied
type SaveEnrichmentResultOutput struct {
	ImagesInserted int
	Attributes     *AttributeAssignmentResult
	// AttributesError is set when attribute ingestion failed and was rolled back on its own
	AttributesError error
}

// AttributeAssignment is one dynamic attribute name/value pair
type AttributeAssignment struct {
	Name  string
	Value string
}

// AttributeAssignmentResult reports the outcome of attribute ingestion
type AttributeAssignmentResult struct {
	// Linked lists attribute names whose value was newly linked to the product
	Linked []string
	// Unchanged lists attribute names whose value was already linked
	Unchanged []string
	// SkippedVariant lists attribute names skipped because they generate variants
	SkippedVariant []string
}
