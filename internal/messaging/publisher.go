package messaging

import (
	"context"

	"github.com/perebo-sp/nft-marketplace/internal/domain"
)

// Publisher delivers committed ledger events to the message broker.
// Publishing happens after commit and never affects engine state.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent hands a ledger event to the broker
	PublishEvent(ctx context.Context, event *domain.LedgerEvent) error
	// Close flushes pending events and closes the connection
	Close()
}

// Noop is a Publisher that drops every event. Used when no broker is configured.
type Noop struct{}

// PublishEvent discards the event
func (Noop) PublishEvent(_ context.Context, _ *domain.LedgerEvent) error {
	return nil
}

// Close does nothing
func (Noop) Close() {}
