// Package jetstream publishes ledger events to NATS JetStream. Events are
// published asynchronously through a bounded worker pool with exponential
// backoff, using the event ULID as the JetStream deduplication id.
package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/perebo-sp/nft-marketplace/internal/domain"
	"github.com/perebo-sp/nft-marketplace/internal/logger"
	"github.com/perebo-sp/nft-marketplace/internal/messaging"
)

// Config holds the configuration for the NATS JetStream publisher
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	PublishRetries int
	PoolSize       int
}

type publisher struct {
	nc         *nats.Conn
	js         nats.JetStreamContext
	streamName string
	retries    uint64
	pool       pond.Pool
}

// NewPublisher connects to NATS and ensures the ledger event stream exists
func NewPublisher(cfg Config) (messaging.Publisher, error) {
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

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	// idempotent stream provisioning
	_, err = js.AddStream(&nats.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{"ledger.events.>"},
	})
	if err != nil && err != nats.ErrStreamNameAlreadyInUse {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		retries:    uint64(cfg.PublishRetries),
		pool:       pond.NewPool(cfg.PoolSize),
	}, nil
}

// PublishEvent enqueues the event for delivery. Delivery is asynchronous and
// best-effort: broker failures are retried with backoff and then logged, they
// never fail the ledger operation that produced the event.
func (p *publisher) PublishEvent(ctx context.Context, event *domain.LedgerEvent) error {
	data, err := event.CanonicalJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize event %s: %w", event.ID, err)
	}

	subject := fmt.Sprintf("ledger.events.%s", event.Type)
	msgID := event.ID

	p.pool.Submit(func() {
		operation := func() error {
			_, err := p.js.Publish(subject, data, nats.MsgId(msgID), nats.Context(ctx))
			return err
		}
		if err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), p.retries)); err != nil {
			logger.Error(err,
				zap.String("event_id", msgID),
				zap.String("subject", subject),
			)
		}
	})

	return nil
}

// Close drains pending publishes and closes the NATS connection
func (p *publisher) Close() {
	p.pool.StopAndWait()
	if p.nc != nil {
		p.nc.Close()
	}
}
