package temporal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"

	"github.com/francuello10/tec-ecommerce-suite/internal/workflows"
)

const (
	// ENRICH_PRODUCTS_RUN_TIMEOUT bounds one EnrichProducts run
	ENRICH_PRODUCTS_RUN_TIMEOUT = 6 * time.Hour
	// ENRICH_PENDING_RUN_TIMEOUT bounds one EnrichPendingCatalog run including its child
	ENRICH_PENDING_RUN_TIMEOUT = 12 * time.Hour
)

// TemporalOrchestrator is the subset of client.Client used to start workflows
//
//go:generate mockgen -source=orchestrator.go -destination=../../mocks/temporal_orchestrator.go -package=mocks -mock_names=TemporalOrchestrator=MockTemporalOrchestrator,EnrichmentStarter=MockEnrichmentStarter
type TemporalOrchestrator interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// StartedWorkflow identifies a started workflow run
type StartedWorkflow struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}

// EnrichmentStarter starts the enrichment workflows on the enrichment task queue
type EnrichmentStarter interface {
	// StartEnrichProducts starts an EnrichProducts run; prefix names the trigger, e.g. "api" or "import"
	StartEnrichProducts(ctx context.Context, prefix string, req workflows.EnrichProductsRequest) (*StartedWorkflow, error)
	// StartEnrichPending starts an EnrichPendingCatalog run
	StartEnrichPending(ctx context.Context, prefix string, req workflows.EnrichPendingRequest) (*StartedWorkflow, error)
}

type enrichmentStarter struct {
	orchestrator TemporalOrchestrator
	taskQueue    string
	// workflow definitions only; the starter never runs them
	definitions workflows.WorkerCore
}

// NewEnrichmentStarter creates a starter for the given task queue
func NewEnrichmentStarter(orchestrator TemporalOrchestrator, taskQueue string) EnrichmentStarter {
	return &enrichmentStarter{
		orchestrator: orchestrator,
		taskQueue:    taskQueue,
		definitions:  workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{}),
	}
}

func (s *enrichmentStarter) StartEnrichProducts(ctx context.Context, prefix string, req workflows.EnrichProductsRequest) (*StartedWorkflow, error) {
	opts := s.options(fmt.Sprintf("enrich-%s-%s", prefix, uuid.New().String()), ENRICH_PRODUCTS_RUN_TIMEOUT)
	return s.start(ctx, opts, s.definitions.EnrichProducts, req)
}

func (s *enrichmentStarter) StartEnrichPending(ctx context.Context, prefix string, req workflows.EnrichPendingRequest) (*StartedWorkflow, error) {
	opts := s.options(fmt.Sprintf("enrich-pending-%s-%s", prefix, uuid.New().String()), ENRICH_PENDING_RUN_TIMEOUT)
	return s.start(ctx, opts, s.definitions.EnrichPendingCatalog, req)
}

func (s *enrichmentStarter) options(id string, timeout time.Duration) client.StartWorkflowOptions {
	return client.StartWorkflowOptions{
		ID:                    id,
		TaskQueue:             s.taskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
		WorkflowRunTimeout:    timeout,
	}
}

func (s *enrichmentStarter) start(ctx context.Context, opts client.StartWorkflowOptions, workflowFunc interface{}, arg interface{}) (*StartedWorkflow, error) {
	run, err := s.orchestrator.ExecuteWorkflow(ctx, opts, workflowFunc, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to execute workflow: %w", err)
	}

	return &StartedWorkflow{
		WorkflowID: run.GetID(),
		RunID:      run.GetRunID(),
	}, nil
}
