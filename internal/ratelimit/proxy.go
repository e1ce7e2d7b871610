package ratelimit

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/francuello10/tec-ecommerce-suite/internal/logger"
)

// RequestFunc is a function that performs the actual vendor request
type RequestFunc func(ctx context.Context) (interface{}, error)

type requestResult struct {
	value interface{}
	err   error
}

// ProviderLimit is the request budget of one vendor
type ProviderLimit struct {
	RequestsPerSecond float64
	Burst             int
	// MaxQueueTime bounds how long a request may wait for a token
	MaxQueueTime time.Duration
}

// Config holds the proxy configuration
type Config struct {
	MaxWorkers   int
	MaxQueueSize int
	Providers    map[string]ProviderLimit
}

// Proxy serializes vendor calls through per-provider token buckets
//
//go:generate mockgen -source=proxy.go -destination=../mocks/ratelimit_proxy.go -package=mocks -mock_names=Proxy=MockRateLimitProxy
type Proxy interface {
	// Request submits a rate-limited request for execution
	Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error)

	// Close gracefully shuts down the proxy
	Close() error
}

type proxy struct {
	pool      pond.ResultPool[*requestResult]
	limiters  map[string]*providerLimiter
	closed    atomic.Bool
	closeOnce sync.Once
}

type providerLimiter struct {
	name    string
	config  ProviderLimit
	limiter *rate.Limiter
}

// NewProxy creates a new rate-limiting proxy
func NewProxy(cfg Config) (Proxy, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	limiters := make(map[string]*providerLimiter, len(cfg.Providers))
	for name, limit := range cfg.Providers {
		limiters[name] = &providerLimiter{
			name:    name,
			config:  limit,
			limiter: rate.NewLimiter(rate.Limit(limit.RequestsPerSecond), limit.Burst),
		}
	}

	pool := pond.NewResultPool[*requestResult](
		cfg.MaxWorkers,
		pond.WithQueueSize(cfg.MaxQueueSize),
	)

	logger.Info("Rate limit proxy initialized",
		zap.Int("max_workers", cfg.MaxWorkers),
		zap.Int("max_queue_size", cfg.MaxQueueSize),
		zap.Int("providers", len(cfg.Providers)),
	)

	return &proxy{
		pool:     pool,
		limiters: limiters,
	}, nil
}

// Request submits a rate-limited request and returns the typed result.
// A nil proxy executes fn directly.
func Request[T any](ctx context.Context, p Proxy, providerName string, fn func(ctx context.Context) (T, error)) (T, error) {
	if p == nil {
		return fn(ctx)
	}

	var zero T
	result, err := p.Request(ctx, providerName, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	return result.(T), nil
}

// Request blocks until a token is acquired and fn completes, the context
// is canceled, or the provider's maximum queue time is exceeded.
func (p *proxy) Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error) {
	if p.closed.Load() {
		return nil, fmt.Errorf("proxy is closed")
	}

	limiter, ok := p.limiters[providerName]
	if !ok {
		return nil, fmt.Errorf("provider '%s' not configured", providerName)
	}

	task := p.pool.Submit(func() *requestResult {
		value, err := p.executeWithRateLimit(ctx, limiter, fn)
		return &requestResult{value: value, err: err}
	})

	result, err := task.Wait()
	if err != nil {
		return nil, err
	}
	if result.err != nil {
		return nil, result.err
	}
	return result.value, nil
}

func (p *proxy) executeWithRateLimit(ctx context.Context, limiter *providerLimiter, fn RequestFunc) (interface{}, error) {
	queueCtx, cancel := context.WithTimeout(ctx, limiter.config.MaxQueueTime)
	err := limiter.limiter.Wait(queueCtx)
	cancel()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Debug("Rate limit queue time exceeded",
			zap.String("provider", limiter.name),
			zap.Duration("max_queue_time", limiter.config.MaxQueueTime),
		)
		return nil, fmt.Errorf("rate limit queue time exceeded for provider '%s': %w", limiter.name, err)
	}

	return fn(ctx)
}

// Close waits for in-flight requests and rejects new ones
func (p *proxy) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.closed.Store(true)

		logger.Info("Shutting down rate limit proxy")

		if errTasks := p.pool.Stop().Wait(); errTasks != nil {
			logger.Warn("Error waiting for pool tasks to complete", zap.Error(errTasks))
			err = errTasks
		}

		logger.Info("Rate limit proxy shutdown complete")
	})
	return err
}

func validateConfig(cfg *Config) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}

	providers := make(map[string]ProviderLimit, len(cfg.Providers))
	for name, limit := range cfg.Providers {
		if limit.RequestsPerSecond <= 0 {
			return fmt.Errorf("provider %s: requests_per_second must be positive", name)
		}
		if limit.Burst <= 0 {
			limit.Burst = max(int(limit.RequestsPerSecond), 1)
		}
		if limit.MaxQueueTime <= 0 {
			limit.MaxQueueTime = 5 * time.Minute
		}
		providers[name] = limit
	}
	cfg.Providers = providers

	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = runtime.NumCPU() * 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 1000
	}

	return nil
}
