package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/enrichment"
	"github.com/francuello10/tec-ecommerce-suite/internal/logger"
	"github.com/francuello10/tec-ecommerce-suite/internal/store"
)

const (
	// ErrTypeCheckpointFailed marks an aborted batch; it is never retried
	ErrTypeCheckpointFailed = "CheckpointFailed"
	// ErrTypeInvalidPass marks a request for an unknown pass
	ErrTypeInvalidPass = "InvalidPass"

	// HEARTBEAT_INTERVAL is how often a running batch reports liveness
	HEARTBEAT_INTERVAL = 20 * time.Second
)

// BatchRequest is the input of the EnrichBatch activity
type BatchRequest struct {
	Pass       domain.Pass `json:"pass"`
	ProductIDs []int64     `json:"product_ids"`
}

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// GetPendingProductIDs selects the products mass enrichment should process, priority categories first
	GetPendingProductIDs(ctx context.Context, limit int) ([]int64, error)

	// EnrichBatch resolves the pass settings and runs one pass over a batch of products
	EnrichBatch(ctx context.Context, req BatchRequest) (*enrichment.Report, error)
}

// ExecutorConfig holds the engine defaults the settings surface overlays
type ExecutorConfig struct {
	Defaults           enrichment.Settings
	PendingLimit       int
	PriorityCategories []string
}

type executor struct {
	store         store.Store
	settingsStore store.SettingsStore
	orchestrator  enrichment.Orchestrator
	activity      adapter.Activity
	config        ExecutorConfig
}

// NewExecutor creates a new executor instance
func NewExecutor(st store.Store, settingsStore store.SettingsStore, orchestrator enrichment.Orchestrator, activity adapter.Activity, config ExecutorConfig) Executor {
	return &executor{
		store:         st,
		settingsStore: settingsStore,
		orchestrator:  orchestrator,
		activity:      activity,
		config:        config,
	}
}

// GetPendingProductIDs selects the products mass enrichment should process
func (e *executor) GetPendingProductIDs(ctx context.Context, limit int) ([]int64, error) {
	if limit <= 0 {
		limit = e.config.PendingLimit
	}

	ids, err := e.store.GetPendingProductIDs(ctx, store.PendingProductsFilter{
		Limit:              limit,
		PriorityCategories: e.config.PriorityCategories,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get pending products: %w", err)
	}

	return ids, nil
}

// EnrichBatch resolves the pass settings and runs one pass over a batch of products.
// A checkpoint failure is returned as a non-retryable error carrying the partial report.
func (e *executor) EnrichBatch(ctx context.Context, req BatchRequest) (*enrichment.Report, error) {
	if !req.Pass.Valid() {
		return nil, temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("unknown enrichment pass %q", req.Pass), ErrTypeInvalidPass, nil)
	}

	kv, err := e.settingsStore.GetSettingsByPrefix(ctx, domain.SETTINGS_PREFIX)
	if err != nil {
		return nil, fmt.Errorf("failed to load enrichment settings: %w", err)
	}
	settings := enrichment.ParseSettings(e.config.Defaults, kv)

	stop := e.heartbeat(ctx, req)
	defer stop()

	var report *enrichment.Report
	switch req.Pass {
	case domain.PassTechnical:
		report, err = e.orchestrator.RunTechnicalPass(ctx, req.ProductIDs, settings)
	case domain.PassMarketing:
		report, err = e.orchestrator.RunMarketingPass(ctx, req.ProductIDs, settings)
	}

	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("pass", string(req.Pass)),
			zap.Int("products", len(req.ProductIDs)),
		)
		if errors.Is(err, domain.ErrCheckpointFailed) {
			return report, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeCheckpointFailed, err, report)
		}
		return report, err
	}

	logger.InfoCtx(ctx, "Enrichment batch finished",
		zap.String("pass", string(req.Pass)),
		zap.String("runID", report.RunID),
		zap.String("summary", report.Message),
	)

	return report, nil
}

// heartbeat reports liveness until the returned func is called
func (e *executor) heartbeat(ctx context.Context, req BatchRequest) func() {
	if !e.activity.IsActivity(ctx) {
		return func() {}
	}

	e.activity.RecordHeartbeat(ctx, req.Pass, len(req.ProductIDs))

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(HEARTBEAT_INTERVAL)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.activity.RecordHeartbeat(ctx, req.Pass, len(req.ProductIDs))
			}
		}
	}()

	return func() { close(done) }
}
