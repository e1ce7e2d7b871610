package messaging

import (
	"context"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
)

// Publisher defines the interface for publishing enrichment events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes the outcome of a committed product pass
	PublishEvent(ctx context.Context, event *domain.EnrichmentEvent) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event, used when no broker is configured
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishEvent(context.Context, *domain.EnrichmentEvent) error { return nil }

func (noopPublisher) Close() {}
