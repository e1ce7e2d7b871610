package executor

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/francuello10/tec-ecommerce-suite/internal/api/dto"
	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/enrichment"
	"github.com/francuello10/tec-ecommerce-suite/internal/logger"
	"github.com/francuello10/tec-ecommerce-suite/internal/normalizer"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/temporal"
	"github.com/francuello10/tec-ecommerce-suite/internal/store"
	"github.com/francuello10/tec-ecommerce-suite/internal/workflows"
)

// WORKFLOW_PREFIX names workflows started from the API
const WORKFLOW_PREFIX = "api"

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// TriggerEnrichment starts one pass over the given products
	TriggerEnrichment(ctx context.Context, productIDs []int64, pass domain.Pass) (*dto.TriggerEnrichmentResponse, error)

	// TriggerPendingEnrichment starts mass enrichment of the pending catalog
	TriggerPendingEnrichment(ctx context.Context, limit int, pass domain.Pass) (*dto.TriggerEnrichmentResponse, error)

	// GetEnrichmentLogs retrieves the audit entries of a product, newest first
	GetEnrichmentLogs(ctx context.Context, productID int64, query dto.EnrichmentLogsQuery) (*dto.EnrichmentLogListResponse, error)

	// GetEnrichmentSources retrieves the last outcome of every source for a product
	GetEnrichmentSources(ctx context.Context, productID int64) ([]dto.EnrichmentSourceResponse, error)

	// GetSettings retrieves the enrichment settings with credentials masked
	GetSettings(ctx context.Context) (*dto.SettingsResponse, error)

	// UpdateSettings writes known settings keys; masked credentials are left untouched
	UpdateSettings(ctx context.Context, values map[string]string) (*dto.SettingsResponse, error)

	// NormalizeBrand resolves a raw supplier brand label to its canonical brand
	NormalizeBrand(ctx context.Context, req dto.NormalizeLabelRequest) (*dto.NormalizeLabelResponse, error)

	// NormalizeCategory resolves a raw supplier category label to its canonical category
	NormalizeCategory(ctx context.Context, req dto.NormalizeLabelRequest) (*dto.NormalizeLabelResponse, error)
}

type executor struct {
	store         store.Store
	settingsStore store.SettingsStore
	starter       temporal.EnrichmentStarter
	normalizer    normalizer.Normalizer
}

func NewExecutor(st store.Store, settingsStore store.SettingsStore, starter temporal.EnrichmentStarter, norm normalizer.Normalizer) Executor {
	return &executor{store: st, settingsStore: settingsStore, starter: starter, normalizer: norm}
}

func (e *executor) TriggerEnrichment(ctx context.Context, productIDs []int64, pass domain.Pass) (*dto.TriggerEnrichmentResponse, error) {
	pass, err := resolvePass(pass)
	if err != nil {
		return nil, err
	}
	if len(productIDs) == 0 {
		return nil, dto.NewValidationError("product_ids is required")
	}
	if len(productIDs) > dto.MAX_TRIGGER_PRODUCTS {
		return nil, dto.NewValidationError(fmt.Sprintf("at most %d product ids per request", dto.MAX_TRIGGER_PRODUCTS))
	}

	started, err := e.starter.StartEnrichProducts(ctx, WORKFLOW_PREFIX, workflows.EnrichProductsRequest{
		ProductIDs: productIDs,
		Pass:       pass,
	})
	if err != nil {
		return nil, dto.NewServiceError("Failed to start enrichment", err.Error())
	}

	logger.InfoCtx(ctx, "Enrichment triggered",
		zap.String("workflowID", started.WorkflowID),
		zap.String("pass", string(pass)),
		zap.Int("products", len(productIDs)),
	)

	return &dto.TriggerEnrichmentResponse{
		WorkflowID: started.WorkflowID,
		RunID:      started.RunID,
		Pass:       pass,
		Products:   len(productIDs),
	}, nil
}

func (e *executor) TriggerPendingEnrichment(ctx context.Context, limit int, pass domain.Pass) (*dto.TriggerEnrichmentResponse, error) {
	// an empty pass runs both passes in sequence
	if pass != "" && !pass.Valid() {
		return nil, dto.NewValidationError(fmt.Sprintf("unknown pass %q", pass))
	}
	if limit < 0 || limit > dto.MAX_PENDING_LIMIT {
		return nil, dto.NewValidationError(fmt.Sprintf("limit must be between 0 and %d", dto.MAX_PENDING_LIMIT))
	}

	started, err := e.starter.StartEnrichPending(ctx, WORKFLOW_PREFIX, workflows.EnrichPendingRequest{
		Limit: limit,
		Pass:  pass,
	})
	if err != nil {
		return nil, dto.NewServiceError("Failed to start mass enrichment", err.Error())
	}

	logger.InfoCtx(ctx, "Mass enrichment triggered",
		zap.String("workflowID", started.WorkflowID),
		zap.String("pass", string(pass)),
		zap.Int("limit", limit),
	)

	return &dto.TriggerEnrichmentResponse{
		WorkflowID: started.WorkflowID,
		RunID:      started.RunID,
		Pass:       pass,
	}, nil
}

func (e *executor) GetEnrichmentLogs(ctx context.Context, productID int64, query dto.EnrichmentLogsQuery) (*dto.EnrichmentLogListResponse, error) {
	if err := e.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	filter := store.EnrichmentLogFilter{
		ProductID: &productID,
		Limit:     query.Limit,
		Offset:    query.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = dto.DEFAULT_LOGS_LIMIT
	}
	if query.Pass != "" {
		if !query.Pass.Valid() {
			return nil, dto.NewValidationError(fmt.Sprintf("unknown pass %q", query.Pass))
		}
		filter.Pass = &query.Pass
	}

	logs, total, err := e.store.GetEnrichmentLogs(ctx, filter)
	if err != nil {
		return nil, dto.NewDatabaseError("Failed to get enrichment logs", err.Error())
	}

	resp := &dto.EnrichmentLogListResponse{
		Logs:  make([]dto.EnrichmentLogResponse, len(logs)),
		Total: total,
	}
	for i, l := range logs {
		resp.Logs[i] = dto.MapEnrichmentLogToDTO(l)
	}

	if next := filter.Offset + uint64(len(logs)); next < total {
		resp.Offset = &next
	}

	return resp, nil
}

func (e *executor) GetEnrichmentSources(ctx context.Context, productID int64) ([]dto.EnrichmentSourceResponse, error) {
	if err := e.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	sources, err := e.store.GetEnrichmentSourcesByProductID(ctx, productID)
	if err != nil {
		return nil, dto.NewDatabaseError("Failed to get enrichment sources", err.Error())
	}

	resp := make([]dto.EnrichmentSourceResponse, len(sources))
	for i, s := range sources {
		resp[i] = dto.MapEnrichmentSourceToDTO(s)
	}
	return resp, nil
}

func (e *executor) GetSettings(ctx context.Context) (*dto.SettingsResponse, error) {
	kv, err := e.settingsStore.GetSettingsByPrefix(ctx, domain.SETTINGS_PREFIX)
	if err != nil {
		return nil, dto.NewDatabaseError("Failed to get settings", err.Error())
	}

	values := make(map[string]string, len(kv))
	for k, v := range kv {
		key := strings.TrimPrefix(k, domain.SETTINGS_PREFIX)
		if enrichment.IsSecretKey(key) && v != "" {
			v = dto.SECRET_MASK
		}
		values[key] = v
	}

	return &dto.SettingsResponse{Values: values}, nil
}

func (e *executor) UpdateSettings(ctx context.Context, values map[string]string) (*dto.SettingsResponse, error) {
	var unknown []string
	updates := make(map[string]string, len(values))
	for k, v := range values {
		if !enrichment.IsSettingKey(k) {
			unknown = append(unknown, k)
			continue
		}
		// a masked credential is the value GetSettings returned, not a new one
		if enrichment.IsSecretKey(k) && v == dto.SECRET_MASK {
			continue
		}
		updates[domain.SETTINGS_PREFIX+strings.TrimPrefix(k, domain.SETTINGS_PREFIX)] = strings.TrimSpace(v)
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, dto.NewValidationError("unknown settings keys: " + strings.Join(unknown, ", "))
	}

	if len(updates) > 0 {
		if err := e.settingsStore.SetSettings(ctx, updates); err != nil {
			return nil, dto.NewDatabaseError("Failed to update settings", err.Error())
		}
		logger.InfoCtx(ctx, "Enrichment settings updated", zap.Int("keys", len(updates)))
	}

	return e.GetSettings(ctx)
}

// ensureProduct returns a not found error when the product does not exist
func (e *executor) ensureProduct(ctx context.Context, productID int64) error {
	product, err := e.store.GetProductByID(ctx, productID)
	if err != nil {
		return dto.NewDatabaseError("Failed to get product", err.Error())
	}
	if product == nil {
		return dto.NewNotFoundError("Product not found")
	}
	return nil
}

func (e *executor) NormalizeBrand(ctx context.Context, req dto.NormalizeLabelRequest) (*dto.NormalizeLabelResponse, error) {
	label, err := e.normalizer.ResolveBrand(ctx, req.Label, req.AutoCreate)
	if err != nil {
		return nil, dto.NewDatabaseError("Failed to resolve brand", err.Error())
	}
	return labelResponse(req.Label, label), nil
}

func (e *executor) NormalizeCategory(ctx context.Context, req dto.NormalizeLabelRequest) (*dto.NormalizeLabelResponse, error) {
	label, err := e.normalizer.ResolveCategory(ctx, req.Label, req.AutoCreate)
	if err != nil {
		return nil, dto.NewDatabaseError("Failed to resolve category", err.Error())
	}
	return labelResponse(req.Label, label), nil
}

func labelResponse(input string, label *store.Label) *dto.NormalizeLabelResponse {
	resp := &dto.NormalizeLabelResponse{Input: input}
	if label == nil {
		return resp
	}
	resp.Resolved = true
	resp.ID = label.ID
	resp.Name = label.Name
	resp.Canonical = label.IsCanonical
	return resp
}

func resolvePass(pass domain.Pass) (domain.Pass, error) {
	if pass == "" {
		return domain.PassTechnical, nil
	}
	if !pass.Valid() {
		return "", dto.NewValidationError(fmt.Sprintf("unknown pass %q", pass))
	}
	return pass, nil
}
