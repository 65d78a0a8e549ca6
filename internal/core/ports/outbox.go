package ports

import (
	"context"
	"time"

	"orderdelivery/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event stored alongside the aggregate that raised it,
// waiting to be published.
type OutboxMessage struct {
	ID          kernel.UUID
	EventName   string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository gives the relay access to pending messages.
type OutboxRepository interface {
	// GetUnpublished locks up to limit pending messages, oldest first. Rows
	// locked by another relay are skipped.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID) error
}

// EventPublisher delivers outbox messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
