package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/logger"
	jsprovider "github.com/francuello10/tec-ecommerce-suite/internal/providers/jetstream"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/temporal"
	"github.com/francuello10/tec-ecommerce-suite/internal/workflows"
)

// WORKFLOW_PREFIX names workflows started from catalog import events
const WORKFLOW_PREFIX = "import"

// Config holds the configuration for the event bridge
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
}

// Bridge forwards catalog import events to the enrichment workflows
type Bridge interface {
	// Run consumes import events until ctx is done
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc      adapter.NatsConn
	js      adapter.JetStream
	starter temporal.EnrichmentStarter
	json    adapter.JSON
	config  Config
}

// NewBridge connects to NATS and creates a new event bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	starter temporal.EnrichmentStarter,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &bridge{
		nc:      nc,
		js:      js,
		starter: starter,
		json:    jsonAdapter,
		config:  cfg,
	}, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting event bridge", zap.String("stream", b.config.StreamName), zap.String("consumer", b.config.ConsumerName))

	if err := b.js.EnsureStream(ctx, jsprovider.StreamConfig(b.config.StreamName)); err != nil {
		return fmt.Errorf("failed to ensure stream %s: %w", b.config.StreamName, err)
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: domain.SUBJECT_PRODUCTS_IMPORTED,
	})
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down event bridge")
			return ctx.Err()
		case msg := <-msgChan:
			go b.handleMessage(ctx, msg)
		}
	}
}

// handleMessage starts one EnrichProducts workflow per import event.
// Malformed events are terminated; start failures are redelivered.
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	var deliveries uint64
	if metadata, err := msg.Metadata(); err == nil && metadata != nil {
		deliveries = metadata.NumDelivered
	}

	var event domain.ProductsImportedEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal import event"))
		terminate(msg)
		return
	}

	pass := event.Pass
	if pass == "" {
		pass = domain.PassTechnical
	}
	if len(event.ProductIDs) == 0 || !pass.Valid() {
		logger.Warn("Dropping import event",
			zap.Int("products", len(event.ProductIDs)),
			zap.String("pass", string(event.Pass)),
		)
		terminate(msg)
		return
	}

	started, err := b.starter.StartEnrichProducts(ctx, WORKFLOW_PREFIX, workflows.EnrichProductsRequest{
		ProductIDs: event.ProductIDs,
		Pass:       pass,
	})
	if err != nil {
		logger.Error(err, zap.String("message", "Failed to start enrichment workflow"), zap.Uint64("deliveryCount", deliveries))
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	logger.Info("Import event forwarded to worker",
		zap.String("workflowID", started.WorkflowID),
		zap.String("pass", string(pass)),
		zap.Int("products", len(event.ProductIDs)),
	)

	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

func terminate(msg adapter.Message) {
	if err := msg.Term(); err != nil {
		logger.Error(err, zap.String("message", "Failed to terminate message"))
	}
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
