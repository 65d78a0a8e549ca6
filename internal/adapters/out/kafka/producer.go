// Package kafka publishes outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"time"

	"orderdelivery/internal/core/ports"

	skafka "github.com/segmentio/kafka-go"
)

const (
	HeaderEventID    = "event-id"
	HeaderEventName  = "event-name"
	HeaderOccurredAt = "occurred-at"
)

// Writer is the subset of kafka.Writer the producer uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Producer implements ports.EventPublisher. Messages are keyed by aggregate id so
// that events of one aggregate keep their order within a partition.
type Producer struct {
	writer Writer
}

var _ ports.EventPublisher = (*Producer)(nil)

func NewProducer(brokerURL, topic string) *Producer {
	w := &skafka.Writer{
		Addr:                   skafka.TCP(brokerURL),
		Topic:                  topic,
		Balancer:               &skafka.Hash{},
		RequiredAcks:           skafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: w}
}

// NewProducerWithWriter allows injecting a test writer.
func NewProducerWithWriter(w Writer) *Producer {
	return &Producer{writer: w}
}

// Publish writes all messages in one batch. The batch either succeeds as a whole
// or the error is returned and the caller retries every message.
func (p *Producer) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]skafka.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, skafka.Message{
			Key:   []byte(m.AggregateID.String()),
			Value: m.Payload,
			Time:  m.OccurredAt,
			Headers: []skafka.Header{
				{Key: HeaderEventID, Value: []byte(m.ID.String())},
				{Key: HeaderEventName, Value: []byte(m.EventName)},
				{Key: HeaderOccurredAt, Value: []byte(m.OccurredAt.UTC().Format(time.RFC3339Nano))},
			},
		})
	}

	return p.writer.WriteMessages(ctx, batch...)
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
