package commands

import (
	"context"

	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/core/ports"
	"orderdelivery/internal/pkg/errs"
)

// PublishOutboxCommandHandler moves pending outbox messages to the broker.
// Messages are marked published only after the broker accepted them, and both
// happen while the rows are locked, so a crash in between re-sends the batch.
// Consumers must tolerate duplicates.
type PublishOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

func NewPublishOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.EventPublisher) PublishOutboxCommandHandler {
	return PublishOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the number of messages published.
func (h *PublishOutboxCommandHandler) Handle(ctx context.Context, cmd PublishOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, errs.WrapPersistence("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	messages, err := repo.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, errs.WrapPersistence("read outbox", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, messages...); err != nil {
		return 0, err
	}

	ids := make([]kernel.UUID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}

	if err = repo.MarkPublished(ctx, ids); err != nil {
		return 0, errs.WrapPersistence("mark outbox published", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, errs.WrapPersistence("commit", err)
	}

	return len(messages), nil
}
