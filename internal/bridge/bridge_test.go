package bridge_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
	"github.com/francuello10/tec-ecommerce-suite/internal/bridge"
	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/logger"
	mockspkg "github.com/francuello10/tec-ecommerce-suite/internal/mocks"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/temporal"
	"github.com/francuello10/tec-ecommerce-suite/internal/workflows"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var testConfig = bridge.Config{
	URL:            "nats://localhost:4222",
	StreamName:     "CATALOG",
	ConsumerName:   "enrichment-bridge",
	MaxReconnects:  10,
	ReconnectWait:  1 * time.Second,
	ConnectionName: "test-bridge",
	AckWaitTimeout: 30 * time.Second,
	MaxDeliver:     5,
}

// testBridgeMocks contains all the mocks needed for testing the bridge
type testBridgeMocks struct {
	ctrl      *gomock.Controller
	natsJS    *mockspkg.MockNatsJetStream
	natsConn  *mockspkg.MockNatsConn
	jetStream *mockspkg.MockJetStream
	starter   *mockspkg.MockEnrichmentStarter
	bridge    bridge.Bridge
}

// setupTestBridge creates all the mocks and a connected bridge
func setupTestBridge(t *testing.T) *testBridgeMocks {
	ctrl := gomock.NewController(t)

	tm := &testBridgeMocks{
		ctrl:      ctrl,
		natsJS:    mockspkg.NewMockNatsJetStream(ctrl),
		natsConn:  mockspkg.NewMockNatsConn(ctrl),
		jetStream: mockspkg.NewMockJetStream(ctrl),
		starter:   mockspkg.NewMockEnrichmentStarter(ctrl),
	}

	tm.natsJS.
		EXPECT().
		Connect(testConfig.URL, gomock.Any()).
		Return(tm.natsConn, tm.jetStream, nil)

	b, err := bridge.NewBridge(testConfig, tm.natsJS, tm.starter, adapter.NewJSON())
	require.NoError(t, err)
	tm.bridge = b

	return tm
}

// runWithMessage runs the bridge, delivers one message and waits until the message is settled
func runWithMessage(t *testing.T, tm *testBridgeMocks, msg *mockspkg.MockJetStreamMessage, settled <-chan string) string {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := mockspkg.NewMockNatsConsumer(tm.ctrl)
	consumeContext := mockspkg.NewMockConsumeContext(tm.ctrl)
	consumeContext.EXPECT().Stop().AnyTimes()

	tm.jetStream.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(nil)
	tm.jetStream.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "CATALOG", jetstream.ConsumerConfig{
			Durable:       "enrichment-bridge",
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       30 * time.Second,
			MaxDeliver:    5,
			FilterSubject: domain.SUBJECT_PRODUCTS_IMPORTED,
		}).
		Return(consumer, nil)
	consumer.EXPECT().Info(gomock.Any()).Return(&jetstream.ConsumerInfo{Name: "enrichment-bridge"}, nil)
	consumer.EXPECT().
		Consume(gomock.Any()).
		DoAndReturn(func(handler adapter.MessageHandler, opts ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			go handler(msg)
			return consumeContext, nil
		})

	errChan := make(chan error, 1)
	go func() {
		errChan <- tm.bridge.Run(ctx)
	}()

	var outcome string
	select {
	case outcome = <-settled:
	case <-time.After(5 * time.Second):
		t.Fatal("message was never settled")
	}

	cancel()
	select {
	case err := <-errChan:
		assert.Equal(t, context.Canceled, err)
	case <-time.After(5 * time.Second):
		t.Fatal("bridge did not stop")
	}

	return outcome
}

func newMessage(ctrl *gomock.Controller, data string, settled chan<- string) *mockspkg.MockJetStreamMessage {
	msg := mockspkg.NewMockJetStreamMessage(ctrl)
	msg.EXPECT().Data().Return([]byte(data)).AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).AnyTimes()
	msg.EXPECT().Ack().DoAndReturn(func() error { settled <- "ack"; return nil }).AnyTimes()
	msg.EXPECT().Nak().DoAndReturn(func() error { settled <- "nak"; return nil }).AnyTimes()
	msg.EXPECT().Term().DoAndReturn(func() error { settled <- "term"; return nil }).AnyTimes()
	return msg
}

func TestBridge_NewBridge_ConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mockspkg.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, assert.AnError)

	b, err := bridge.NewBridge(testConfig, natsJS, mockspkg.NewMockEnrichmentStarter(ctrl), adapter.NewJSON())

	assert.Error(t, err)
	assert.Nil(t, b)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestBridge_Run_EnsureStreamError(t *testing.T) {
	tm := setupTestBridge(t)
	defer tm.ctrl.Finish()

	tm.jetStream.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(assert.AnError)

	err := tm.bridge.Run(context.Background())
	assert.ErrorContains(t, err, "failed to ensure stream CATALOG")
}

func TestBridge_Run_CreateConsumerError(t *testing.T) {
	tm := setupTestBridge(t)
	defer tm.ctrl.Finish()

	tm.jetStream.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(nil)
	tm.jetStream.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	err := tm.bridge.Run(context.Background())
	assert.ErrorContains(t, err, "failed to create/update consumer")
}

func TestBridge_Run_ConsumeError(t *testing.T) {
	tm := setupTestBridge(t)
	defer tm.ctrl.Finish()

	consumer := mockspkg.NewMockNatsConsumer(tm.ctrl)
	consumer.EXPECT().Info(gomock.Any()).Return(&jetstream.ConsumerInfo{Name: "enrichment-bridge"}, nil)
	consumer.EXPECT().Consume(gomock.Any()).Return(nil, assert.AnError)

	tm.jetStream.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(nil)
	tm.jetStream.EXPECT().CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).Return(consumer, nil)

	err := tm.bridge.Run(context.Background())
	assert.ErrorContains(t, err, "failed to create subscription")
}

func TestBridge_ForwardsImportEvent(t *testing.T) {
	tm := setupTestBridge(t)
	defer tm.ctrl.Finish()

	settled := make(chan string, 1)
	msg := newMessage(tm.ctrl, `{"product_ids":[4,5]}`, settled)

	tm.starter.EXPECT().
		StartEnrichProducts(gomock.Any(), bridge.WORKFLOW_PREFIX, workflows.EnrichProductsRequest{
			ProductIDs: []int64{4, 5},
			Pass:       domain.PassTechnical,
		}).
		Return(&temporal.StartedWorkflow{WorkflowID: "enrich-import-1"}, nil)

	assert.Equal(t, "ack", runWithMessage(t, tm, msg, settled))
}

func TestBridge_MarketingPass(t *testing.T) {
	tm := setupTestBridge(t)
	defer tm.ctrl.Finish()

	settled := make(chan string, 1)
	msg := newMessage(tm.ctrl, `{"product_ids":[4],"pass":"marketing"}`, settled)

	tm.starter.EXPECT().
		StartEnrichProducts(gomock.Any(), bridge.WORKFLOW_PREFIX, workflows.EnrichProductsRequest{
			ProductIDs: []int64{4},
			Pass:       domain.PassMarketing,
		}).
		Return(&temporal.StartedWorkflow{WorkflowID: "enrich-import-2"}, nil)

	assert.Equal(t, "ack", runWithMessage(t, tm, msg, settled))
}

func TestBridge_TerminatesMalformedEvents(t *testing.T) {
	cases := map[string]string{
		"not json":      `{"product_ids":`,
		"no products":   `{"product_ids":[]}`,
		"unknown pass":  `{"product_ids":[1],"pass":"full"}`,
		"wrong id type": `{"product_ids":["a"]}`,
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			tm := setupTestBridge(t)
			defer tm.ctrl.Finish()

			settled := make(chan string, 1)
			msg := newMessage(tm.ctrl, data, settled)

			assert.Equal(t, "term", runWithMessage(t, tm, msg, settled))
		})
	}
}

func TestBridge_NaksWhenStartFails(t *testing.T) {
	tm := setupTestBridge(t)
	defer tm.ctrl.Finish()

	settled := make(chan string, 1)
	msg := newMessage(tm.ctrl, `{"product_ids":[7]}`, settled)

	tm.starter.EXPECT().
		StartEnrichProducts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("temporal unavailable"))

	assert.Equal(t, "nak", runWithMessage(t, tm, msg, settled))
}

func TestBridge_Close(t *testing.T) {
	tm := setupTestBridge(t)
	defer tm.ctrl.Finish()

	tm.natsConn.EXPECT().Close()
	tm.bridge.Close()
}
