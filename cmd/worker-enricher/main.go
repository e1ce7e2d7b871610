package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
	"github.com/francuello10/tec-ecommerce-suite/internal/aimapper"
	"github.com/francuello10/tec-ecommerce-suite/internal/config"
	"github.com/francuello10/tec-ecommerce-suite/internal/connectors"
	"github.com/francuello10/tec-ecommerce-suite/internal/enrichment"
	"github.com/francuello10/tec-ecommerce-suite/internal/logger"
	"github.com/francuello10/tec-ecommerce-suite/internal/media"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/jetstream"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/temporal"
	"github.com/francuello10/tec-ecommerce-suite/internal/providers/vendors/lenovo"
	"github.com/francuello10/tec-ecommerce-suite/internal/ratelimit"
	"github.com/francuello10/tec-ecommerce-suite/internal/richtext"
	"github.com/francuello10/tec-ecommerce-suite/internal/store"
	"github.com/francuello10/tec-ecommerce-suite/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerEnricherConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "worker-enricher",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Catalog Enricher worker")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	dataStore := store.NewPGStore(db)
	settingsStore := store.NewSettingsStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clockAdapter := adapter.NewClock()
	jcsAdapter := adapter.NewJCS()
	natsJS := adapter.NewNatsJetStream()
	httpClient := adapter.NewHTTPClient(cfg.Enrichment.ConnectorTimeout)

	// PSREF throttles aggressively, every call goes through the proxy
	rateLimitProxy, err := ratelimit.NewProxy(ratelimit.Config{
		MaxWorkers:   4,
		MaxQueueSize: 256,
		Providers: map[string]ratelimit.ProviderLimit{
			lenovo.PROVIDER_NAME: {RequestsPerSecond: cfg.Vendors.LenovoRequestsPerSecond},
		},
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer func() {
		if err := rateLimitProxy.Close(); err != nil {
			logger.Warn("Failed to close rate limit proxy", zap.Error(err))
		}
	}()

	registry := connectors.NewRegistry(httpClient, rateLimitProxy, cfg.Vendors, jsonAdapter)

	// Enrichment events are best effort, the worker runs without them
	publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, natsJS, jsonAdapter)
	if err != nil {
		logger.WarnCtx(ctx, "Enrichment events disabled", zap.Error(err), zap.String("url", cfg.NATS.URL))
		publisher = nil
	} else {
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	}

	composer := richtext.NewComposer()
	orchestrator := enrichment.NewOrchestrator(enrichment.Deps{
		Store:     dataStore,
		Factory:   registry,
		Planner:   media.NewPlanner(media.NewFetcher(httpClient, cfg.Enrichment.ImageTimeout)),
		Composer:  composer,
		Mapper:    aimapper.NewMapper(composer),
		Publisher: publisher,
		JCS:       jcsAdapter,
		Clock:     clockAdapter,
	})

	executor := workflows.NewExecutor(dataStore, settingsStore, orchestrator, adapter.NewActivity(),
		workflows.ExecutorConfig{
			Defaults: enrichment.DefaultSettings(
				cfg.Enrichment.ConnectorTimeout,
				cfg.Enrichment.MaxImagesPerInvocation,
				cfg.Enrichment.Concurrency,
			),
			PendingLimit:       cfg.Enrichment.PendingLimit,
			PriorityCategories: cfg.Enrichment.PriorityCategories,
		})

	// Connect to Temporal
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.EnrichmentTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors:                       []interceptor.WorkerInterceptor{temporal.NewSentryActivityInterceptor()},
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("task_queue", cfg.Temporal.EnrichmentTaskQueue))

	workerCore := workflows.NewWorkerCore(executor, workflows.WorkerCoreConfig{})

	temporalWorker.RegisterWorkflow(workerCore.EnrichProducts)
	temporalWorker.RegisterWorkflow(workerCore.EnrichPendingCatalog)

	temporalWorker.RegisterActivity(executor.GetPendingProductIDs)
	temporalWorker.RegisterActivity(executor.EnrichBatch)

	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))

	cancel()
	temporalWorker.Stop()
	logger.Info("Worker stopped")
}
