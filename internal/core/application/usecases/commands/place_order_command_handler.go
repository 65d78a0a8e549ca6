package commands

import (
	"context"

	"orderdelivery/internal/core/domain/model/delivery"
	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/core/domain/services"
	"orderdelivery/internal/pkg/errs"
)

// PlaceOrderResult is what the workflow hands back: the stored order, its
// delivery and the price breakdown.
type PlaceOrderResult struct {
	Order     *order.Order
	Delivery  *delivery.Delivery
	Breakdown delivery.PriceBreakdown
}

// PlaceOrderCommandHandler creates an order, prices it and registers its delivery
// in a single transaction. Either both rows exist after Handle returns or neither
// does.
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	pricing    services.PricingEngine
}

func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory, pricing services.PricingEngine) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle runs the workflow:
//  1. check the client exists (errs.ObjectNotFoundError otherwise)
//  2. insert the order and read it back
//  3. price the stored order
//  4. insert the delivery with status calculated
//  5. commit
//
// Store failures are returned as errs.PersistenceError unless the store already
// classified them.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, errs.WrapPersistence("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.ClientDirectory().Exists(ctx, cmd.ClientID())
	if err != nil {
		return PlaceOrderResult{}, errs.WrapPersistence("check client", err)
	}
	if !exists {
		return PlaceOrderResult{}, errs.NewObjectNotFoundError("client", cmd.ClientID().String())
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.OrderDetails())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return PlaceOrderResult{}, errs.WrapPersistence("insert order", err)
	}

	stored, err := orderRepo.Get(ctx, newOrder.ID())
	if err != nil {
		return PlaceOrderResult{}, errs.WrapPersistence("read order", err)
	}

	breakdown := h.pricing.Compute(stored.PricingInputs())

	newDelivery, err := delivery.NewDelivery(kernel.NewUUID(), stored.ID(), breakdown)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return PlaceOrderResult{}, errs.WrapPersistence("insert delivery", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, errs.WrapPersistence("commit", err)
	}

	return PlaceOrderResult{
		Order:     stored,
		Delivery:  newDelivery,
		Breakdown: breakdown,
	}, nil
}
