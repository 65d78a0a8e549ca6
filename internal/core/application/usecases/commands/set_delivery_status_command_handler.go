package commands

import (
	"context"

	"orderdelivery/internal/core/domain/model/delivery"
	"orderdelivery/internal/pkg/errs"
)

// SetDeliveryStatusCommandHandler updates the status of an existing delivery.
// The row is locked for the duration of the transaction, so concurrent updates
// of the same delivery are applied one after the other.
type SetDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewSetDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) SetDeliveryStatusCommandHandler {
	return SetDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the updated delivery. An unknown delivery yields
// errs.ObjectNotFoundError and nothing is written.
func (h *SetDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd SetDeliveryStatusCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, errs.WrapPersistence("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	d, err := repo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, errs.WrapPersistence("read delivery", err)
	}

	if err = d.SetStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.UpdateStatus(ctx, d); err != nil {
		return nil, errs.WrapPersistence("update delivery status", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.WrapPersistence("commit", err)
	}

	return d, nil
}
