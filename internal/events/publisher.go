// Package events publishes entity lifecycle notifications over NATS.
// Publishing is best-effort: a failed or absent broker never fails the
// request that triggered the event.
package events

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

type Publisher struct {
	nc     *nats.Conn
	logger *slog.Logger
}

func NewPublisher(nc *nats.Conn, logger *slog.Logger) *Publisher {
	return &Publisher{nc: nc, logger: logger}
}

type envelope struct {
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// Publish sends data wrapped in an event envelope on the given subject.
// A nil publisher or nil connection is a no-op.
func (p *Publisher) Publish(subject string, data any) {
	if p == nil || p.nc == nil {
		return
	}
	payload, err := json.Marshal(envelope{
		ID:         uuid.NewString(),
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		p.logger.Error("failed to marshal event", "subject", subject, "error", err)
		return
	}
	if err := p.nc.Publish(subject, payload); err != nil {
		p.logger.Error("failed to publish event", "subject", subject, "error", err)
	}
}
