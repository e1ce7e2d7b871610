package temporal_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	temporalmocks "go.temporal.io/sdk/mocks"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/mocks"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/temporal"
	"github.com/francuello10/tec-ecommerce-suite/internal/workflows"
)

func TestEnrichmentStarter_StartEnrichProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	starter := temporal.NewEnrichmentStarter(orchestrator, "enrichment")

	run := &temporalmocks.WorkflowRun{}
	run.On("GetID").Return("enrich-api-1")
	run.On("GetRunID").Return("run-1")

	req := workflows.EnrichProductsRequest{ProductIDs: []int64{1, 2}, Pass: domain.PassMarketing}
	orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), req).
		DoAndReturn(func(ctx context.Context, opts client.StartWorkflowOptions, fn interface{}, args ...interface{}) (client.WorkflowRun, error) {
			assert.True(t, strings.HasPrefix(opts.ID, "enrich-api-"))
			assert.Equal(t, "enrichment", opts.TaskQueue)
			assert.Equal(t, enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY, opts.WorkflowIDReusePolicy)
			assert.Equal(t, temporal.ENRICH_PRODUCTS_RUN_TIMEOUT, opts.WorkflowRunTimeout)
			assert.NotNil(t, fn)
			return run, nil
		})

	started, err := starter.StartEnrichProducts(context.Background(), "api", req)
	require.NoError(t, err)
	assert.Equal(t, &temporal.StartedWorkflow{WorkflowID: "enrich-api-1", RunID: "run-1"}, started)
	run.AssertExpectations(t)
}

func TestEnrichmentStarter_StartEnrichPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	starter := temporal.NewEnrichmentStarter(orchestrator, "enrichment")

	run := &temporalmocks.WorkflowRun{}
	run.On("GetID").Return("enrich-pending-api-1")
	run.On("GetRunID").Return("run-2")

	req := workflows.EnrichPendingRequest{Limit: 100}
	orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), req).
		DoAndReturn(func(ctx context.Context, opts client.StartWorkflowOptions, fn interface{}, args ...interface{}) (client.WorkflowRun, error) {
			assert.True(t, strings.HasPrefix(opts.ID, "enrich-pending-api-"))
			assert.Equal(t, temporal.ENRICH_PENDING_RUN_TIMEOUT, opts.WorkflowRunTimeout)
			return run, nil
		})

	started, err := starter.StartEnrichPending(context.Background(), "api", req)
	require.NoError(t, err)
	assert.Equal(t, "run-2", started.RunID)
}

func TestEnrichmentStarter_StartFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	starter := temporal.NewEnrichmentStarter(orchestrator, "enrichment")

	orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("temporal unavailable"))

	started, err := starter.StartEnrichProducts(context.Background(), "import", workflows.EnrichProductsRequest{ProductIDs: []int64{1}})
	assert.Nil(t, started)
	assert.ErrorContains(t, err, "temporal unavailable")
}
