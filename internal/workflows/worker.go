package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/enrichment"
	"github.com/francuello10/tec-ecommerce-suite/internal/logger"
)

const (
	// DEFAULT_BATCH_SIZE is the number of products one EnrichBatch activity processes
	DEFAULT_BATCH_SIZE = 25
	// DEFAULT_BATCH_TIMEOUT bounds one EnrichBatch activity
	DEFAULT_BATCH_TIMEOUT = 30 * time.Minute
)

// EnrichProductsRequest is the input of the EnrichProducts workflow
type EnrichProductsRequest struct {
	ProductIDs []int64     `json:"product_ids"`
	Pass       domain.Pass `json:"pass"`
}

// EnrichPendingRequest is the input of the EnrichPendingCatalog workflow
type EnrichPendingRequest struct {
	// Limit caps the selection; zero uses the configured default
	Limit int `json:"limit"`
	// Pass restricts the run to one pass; empty runs technical then marketing
	Pass domain.Pass `json:"pass"`
}

// WorkerCore defines the enrichment workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockWorkerCore
type WorkerCore interface {
	// EnrichProducts runs one pass over the given products in batches and returns the combined report
	EnrichProducts(ctx workflow.Context, req EnrichProductsRequest) (*enrichment.Report, error)

	// EnrichPendingCatalog selects pending products and enriches them with one or both passes
	EnrichPendingCatalog(ctx workflow.Context, req EnrichPendingRequest) (*enrichment.Report, error)
}

// WorkerCoreConfig holds the workflow tuning knobs
type WorkerCoreConfig struct {
	BatchSize    int
	BatchTimeout time.Duration
}

type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	if config.BatchSize <= 0 {
		config.BatchSize = DEFAULT_BATCH_SIZE
	}
	if config.BatchTimeout <= 0 {
		config.BatchTimeout = DEFAULT_BATCH_TIMEOUT
	}
	return &workerCore{
		executor: executor,
		config:   config,
	}
}

// EnrichProducts runs one pass over the given products in batches.
// Batches run in order; a failed batch stops the workflow and the products already committed stay committed.
func (w *workerCore) EnrichProducts(ctx workflow.Context, req EnrichProductsRequest) (*enrichment.Report, error) {
	pass := req.Pass
	if pass == "" {
		pass = domain.PassTechnical
	}
	if !pass.Valid() {
		return nil, temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("unknown enrichment pass %q", pass), ErrTypeInvalidPass, nil)
	}

	runID := workflow.GetInfo(ctx).WorkflowExecution.ID
	ids := uniqueIDs(req.ProductIDs)

	logger.InfoWf(ctx, "Starting product enrichment",
		zap.String("pass", string(pass)),
		zap.Int("products", len(ids)),
	)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: w.config.BatchTimeout,
		HeartbeatTimeout:    3 * HEARTBEAT_INTERVAL,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        10 * time.Second,
			MaximumAttempts:        3,
			NonRetryableErrorTypes: []string{ErrTypeCheckpointFailed, ErrTypeInvalidPass},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var reports []*enrichment.Report
	for start := 0; start < len(ids); start += w.config.BatchSize {
		end := min(start+w.config.BatchSize, len(ids))

		var report enrichment.Report
		err := workflow.ExecuteActivity(ctx, w.executor.EnrichBatch, BatchRequest{
			Pass:       pass,
			ProductIDs: ids[start:end],
		}).Get(ctx, &report)
		if err != nil {
			logger.ErrorWf(ctx, fmt.Errorf("failed to enrich batch: %w", err),
				zap.String("pass", string(pass)),
				zap.Int("batchStart", start),
			)
			return enrichment.MergeReports(runID, pass, reports...), err
		}
		reports = append(reports, &report)
	}

	merged := enrichment.MergeReports(runID, pass, reports...)
	logger.InfoWf(ctx, merged.Title,
		zap.String("pass", string(pass)),
		zap.String("summary", merged.Message),
		zap.String("kind", string(merged.Kind)),
	)

	return merged, nil
}

// EnrichPendingCatalog selects pending products and enriches them in child EnrichProducts workflows.
// An empty pass runs the technical pass and then the marketing pass over the same selection.
func (w *workerCore) EnrichPendingCatalog(ctx workflow.Context, req EnrichPendingRequest) (*enrichment.Report, error) {
	passes := []domain.Pass{req.Pass}
	reportPass := req.Pass
	if req.Pass == "" {
		passes = []domain.Pass{domain.PassTechnical, domain.PassMarketing}
		reportPass = domain.PassMarketing
	}

	activityCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	})

	runID := workflow.GetInfo(ctx).WorkflowExecution.ID

	var ids []int64
	if err := workflow.ExecuteActivity(activityCtx, w.executor.GetPendingProductIDs, req.Limit).Get(activityCtx, &ids); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to select pending products: %w", err))
		return nil, err
	}

	if len(ids) == 0 {
		logger.InfoWf(ctx, "No pending products to enrich")
		return enrichment.MergeReports(runID, reportPass), nil
	}

	reports := make([]*enrichment.Report, 0, len(passes))
	for _, pass := range passes {
		childCtx := workflow.WithChildOptions(ctx, workflow.ChildWorkflowOptions{
			WorkflowID:            fmt.Sprintf("enrich-products-%s-%s", pass, runID),
			WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
			ParentClosePolicy:     enums.PARENT_CLOSE_POLICY_TERMINATE,
		})

		var report enrichment.Report
		err := workflow.ExecuteChildWorkflow(childCtx, w.EnrichProducts, EnrichProductsRequest{
			ProductIDs: ids,
			Pass:       pass,
		}).Get(childCtx, &report)
		if err != nil {
			logger.ErrorWf(ctx, fmt.Errorf("%s pass failed: %w", pass, err))
			return nil, err
		}
		reports = append(reports, &report)
	}

	if len(reports) == 1 {
		return reports[0], nil
	}
	return enrichment.MergeReports(runID, reportPass, reports...), nil
}

// uniqueIDs drops repeated and non-positive product ids, keeping the first occurrence order
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
