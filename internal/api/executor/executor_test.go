package executor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/francuello10/tec-ecommerce-suite/internal/api/dto"
	"github.com/francuello10/tec-ecommerce-suite/internal/api/executor"
	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/logger"
	"github.com/francuello10/tec-ecommerce-suite/internal/mocks"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/temporal"
	"github.com/francuello10/tec-ecommerce-suite/internal/store"
	"github.com/francuello10/tec-ecommerce-suite/internal/store/schema"
	"github.com/francuello10/tec-ecommerce-suite/internal/workflows"
)

type testExecutorMocks struct {
	ctrl          *gomock.Controller
	store         *mocks.MockStore
	settingsStore *mocks.MockSettingsStore
	starter       *mocks.MockEnrichmentStarter
	normalizer    *mocks.MockNormalizer
	executor      executor.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))

	ctrl := gomock.NewController(t)
	tm := &testExecutorMocks{
		ctrl:          ctrl,
		store:         mocks.NewMockStore(ctrl),
		settingsStore: mocks.NewMockSettingsStore(ctrl),
		starter:       mocks.NewMockEnrichmentStarter(ctrl),
		normalizer:    mocks.NewMockNormalizer(ctrl),
	}
	tm.executor = executor.NewExecutor(tm.store, tm.settingsStore, tm.starter, tm.normalizer)
	return tm
}

func apiErrorCode(t *testing.T, err error) dto.ErrorCode {
	var apiErr *dto.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	return apiErr.Code
}

func TestTriggerEnrichment_DefaultsToTechnical(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.starter.EXPECT().
		StartEnrichProducts(ctx, executor.WORKFLOW_PREFIX, workflows.EnrichProductsRequest{
			ProductIDs: []int64{1, 2},
			Pass:       domain.PassTechnical,
		}).
		Return(&temporal.StartedWorkflow{WorkflowID: "enrich-api-1", RunID: "run"}, nil)

	resp, err := m.executor.TriggerEnrichment(ctx, []int64{1, 2}, "")
	require.NoError(t, err)
	assert.Equal(t, &dto.TriggerEnrichmentResponse{
		WorkflowID: "enrich-api-1",
		RunID:      "run",
		Pass:       domain.PassTechnical,
		Products:   2,
	}, resp)
}

func TestTriggerEnrichment_Validation(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	_, err := m.executor.TriggerEnrichment(context.Background(), []int64{1}, "full")
	assert.Equal(t, dto.ErrCodeValidationFailed, apiErrorCode(t, err))

	_, err = m.executor.TriggerEnrichment(context.Background(), nil, domain.PassMarketing)
	assert.Equal(t, dto.ErrCodeValidationFailed, apiErrorCode(t, err))

	tooMany := make([]int64, dto.MAX_TRIGGER_PRODUCTS+1)
	_, err = m.executor.TriggerEnrichment(context.Background(), tooMany, domain.PassMarketing)
	assert.Equal(t, dto.ErrCodeValidationFailed, apiErrorCode(t, err))
}

func TestTriggerEnrichment_StartFails(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.starter.EXPECT().StartEnrichProducts(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("unavailable"))

	_, err := m.executor.TriggerEnrichment(context.Background(), []int64{1}, domain.PassMarketing)
	assert.Equal(t, dto.ErrCodeServiceError, apiErrorCode(t, err))
}

func TestTriggerPendingEnrichment(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.starter.EXPECT().
		StartEnrichPending(ctx, executor.WORKFLOW_PREFIX, workflows.EnrichPendingRequest{Limit: 200, Pass: domain.PassMarketing}).
		Return(&temporal.StartedWorkflow{WorkflowID: "enrich-pending-api-1", RunID: "run"}, nil)

	resp, err := m.executor.TriggerPendingEnrichment(ctx, 200, domain.PassMarketing)
	require.NoError(t, err)
	assert.Equal(t, "enrich-pending-api-1", resp.WorkflowID)
	assert.Equal(t, domain.PassMarketing, resp.Pass)

	_, err = m.executor.TriggerPendingEnrichment(ctx, dto.MAX_PENDING_LIMIT+1, "")
	assert.Equal(t, dto.ErrCodeValidationFailed, apiErrorCode(t, err))

	_, err = m.executor.TriggerPendingEnrichment(ctx, 10, "full")
	assert.Equal(t, dto.ErrCodeValidationFailed, apiErrorCode(t, err))
}

func TestTriggerPendingEnrichment_EmptyPassRunsBoth(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.starter.EXPECT().
		StartEnrichPending(ctx, executor.WORKFLOW_PREFIX, workflows.EnrichPendingRequest{Limit: 50}).
		Return(&temporal.StartedWorkflow{WorkflowID: "enrich-pending-api-2", RunID: "run"}, nil)

	resp, err := m.executor.TriggerPendingEnrichment(ctx, 50, "")
	require.NoError(t, err)
	assert.Equal(t, "enrich-pending-api-2", resp.WorkflowID)
	assert.Empty(t, resp.Pass)
}

func TestGetEnrichmentLogs(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	productID := int64(7)
	pass := domain.PassTechnical
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	m.store.EXPECT().GetProductByID(ctx, productID).Return(&schema.Product{ID: productID}, nil)
	m.store.EXPECT().
		GetEnrichmentLogs(ctx, store.EnrichmentLogFilter{ProductID: &productID, Pass: &pass, Limit: 1, Offset: 0}).
		Return([]schema.EnrichmentLog{{
			ID:        3,
			RunID:     "01RUN",
			ProductID: productID,
			Pass:      pass,
			Source:    "icecat",
			Status:    domain.AuditStatusSuccess,
			Summary:   "[icecat] X (PN): ok",
			Details:   datatypes.JSON(`{"successes":["icecat"]}`),
			CreatedAt: createdAt,
		}}, uint64(2), nil)

	resp, err := m.executor.GetEnrichmentLogs(ctx, productID, dto.EnrichmentLogsQuery{Pass: pass, Limit: 1})
	require.NoError(t, err)
	require.Len(t, resp.Logs, 1)
	assert.Equal(t, "01RUN", resp.Logs[0].RunID)
	assert.JSONEq(t, `{"successes":["icecat"]}`, string(resp.Logs[0].Details))
	assert.Equal(t, uint64(2), resp.Total)
	require.NotNil(t, resp.Offset)
	assert.Equal(t, uint64(1), *resp.Offset)
}

func TestGetEnrichmentLogs_ProductNotFound(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.store.EXPECT().GetProductByID(gomock.Any(), int64(9)).Return(nil, nil)

	_, err := m.executor.GetEnrichmentLogs(context.Background(), 9, dto.EnrichmentLogsQuery{})
	assert.Equal(t, dto.ErrCodeNotFound, apiErrorCode(t, err))
}

func TestGetEnrichmentSources(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	msg := "timeout"
	m.store.EXPECT().GetProductByID(ctx, int64(4)).Return(&schema.Product{ID: 4}, nil)
	m.store.EXPECT().GetEnrichmentSourcesByProductID(ctx, int64(4)).Return([]schema.EnrichmentSource{
		{Source: domain.SourceGoogle, LastOutcome: domain.OutcomeError, LastError: &msg},
	}, nil)

	resp, err := m.executor.GetEnrichmentSources(ctx, 4)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, domain.SourceGoogle, resp[0].Source)
	assert.Equal(t, &msg, resp[0].LastError)
}

func TestGetSettings_MasksCredentials(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.settingsStore.EXPECT().GetSettingsByPrefix(gomock.Any(), domain.SETTINGS_PREFIX).Return(map[string]string{
		"catalog_enricher.use_icecat":      "1",
		"catalog_enricher.icecat_password": "secret",
		"catalog_enricher.gemini_api_key":  "",
	}, nil)

	resp, err := m.executor.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"use_icecat":      "1",
		"icecat_password": dto.SECRET_MASK,
		"gemini_api_key":  "",
	}, resp.Values)
}

func TestUpdateSettings(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	gomock.InOrder(
		m.settingsStore.EXPECT().SetSettings(ctx, map[string]string{
			"catalog_enricher.use_google":    "true",
			"catalog_enricher.google_cse_cx": "cx-1",
		}).Return(nil),
		m.settingsStore.EXPECT().GetSettingsByPrefix(ctx, domain.SETTINGS_PREFIX).Return(map[string]string{
			"catalog_enricher.use_google":    "true",
			"catalog_enricher.google_cse_cx": "cx-1",
		}, nil),
	)

	resp, err := m.executor.UpdateSettings(ctx, map[string]string{
		"use_google":                      " true ",
		"catalog_enricher.google_cse_cx":  "cx-1",
		"catalog_enricher.google_cse_key": dto.SECRET_MASK,
	})
	require.NoError(t, err)
	assert.Equal(t, "cx-1", resp.Values["google_cse_cx"])
}

func TestUpdateSettings_UnknownKeys(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	_, err := m.executor.UpdateSettings(context.Background(), map[string]string{
		"use_icecat": "1",
		"zeta":       "x",
		"alpha":      "y",
	})
	var apiErr *dto.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, dto.ErrCodeValidationFailed, apiErr.Code)
	assert.Equal(t, "unknown settings keys: alpha, zeta", apiErr.Details)
}

func TestNormalizeBrand(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.normalizer.EXPECT().
		ResolveBrand(ctx, "  hewlett packard ", false).
		Return(&store.Label{ID: 3, Kind: store.LabelKindBrand, Name: "HP", IsCanonical: true}, nil)

	resp, err := m.executor.NormalizeBrand(ctx, dto.NormalizeLabelRequest{Label: "  hewlett packard "})
	require.NoError(t, err)
	assert.Equal(t, &dto.NormalizeLabelResponse{
		Input:     "  hewlett packard ",
		Resolved:  true,
		ID:        3,
		Name:      "HP",
		Canonical: true,
	}, resp)
}

func TestNormalizeCategory_Unresolved(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.normalizer.EXPECT().ResolveCategory(ctx, "N/A", true).Return(nil, nil)

	resp, err := m.executor.NormalizeCategory(ctx, dto.NormalizeLabelRequest{Label: "N/A", AutoCreate: true})
	require.NoError(t, err)
	assert.False(t, resp.Resolved)
	assert.Zero(t, resp.ID)
}

func TestNormalizeCategory_StoreError(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.normalizer.EXPECT().ResolveCategory(gomock.Any(), "Notebooks", false).Return(nil, errors.New("connection reset"))

	_, err := m.executor.NormalizeCategory(context.Background(), dto.NormalizeLabelRequest{Label: "Notebooks"})
	assert.Equal(t, dto.ErrCodeDatabaseError, apiErrorCode(t, err))
}
