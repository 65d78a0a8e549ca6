package commands

import (
	"errors"
	"fmt"
	"time"

	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand is a client's request to ship goods. All seven attributes
// are required and every quantity must be positive.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(
//	    clientID, time.Now(), "urgent",
//	    decimal.NewFromInt(300), decimal.NewFromInt(10),
//	    decimal.NewFromInt(2), decimal.NewFromInt(1),
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, services.NewPricingEngine())
//	result, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	clientID     kernel.UUID
	date         time.Time
	deliveryType order.DeliveryType
	distanceKm   decimal.Decimal
	weightKg     decimal.Decimal
	ratePerKm    decimal.Decimal
	ratePerKg    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates every field before anything is written and
// returns all failures joined.
func NewPlaceOrderCommand(
	clientID kernel.UUID,
	date time.Time,
	deliveryType string,
	distanceKm, weightKg, ratePerKm, ratePerKg decimal.Decimal,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setDate(date),
		cmd.setDeliveryType(deliveryType),
		positive(&cmd.distanceKm, "distanceKm", distanceKm),
		positive(&cmd.weightKg, "weightKg", weightKg),
		positive(&cmd.ratePerKm, "ratePerKm", ratePerKm),
		positive(&cmd.ratePerKg, "ratePerKg", ratePerKg),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c PlaceOrderCommand) Date() time.Time {
	return c.date
}

func (c PlaceOrderCommand) DeliveryType() order.DeliveryType {
	return c.deliveryType
}

func (c PlaceOrderCommand) DistanceKm() decimal.Decimal {
	return c.distanceKm
}

func (c PlaceOrderCommand) WeightKg() decimal.Decimal {
	return c.weightKg
}

func (c PlaceOrderCommand) RatePerKm() decimal.Decimal {
	return c.ratePerKm
}

func (c PlaceOrderCommand) RatePerKg() decimal.Decimal {
	return c.ratePerKg
}

// OrderDetails maps the command onto the order aggregate's input.
func (c PlaceOrderCommand) OrderDetails() order.Details {
	return order.Details{
		ClientID:     c.clientID,
		Date:         c.date,
		DeliveryType: c.deliveryType,
		DistanceKm:   c.distanceKm,
		WeightKg:     c.weightKg,
		RatePerKm:    c.ratePerKm,
		RatePerKg:    c.ratePerKg,
	}
}

func (c *PlaceOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientID", err)
	}

	c.clientID = clientID
	return nil
}

func (c *PlaceOrderCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	c.date = order.CivilDate(date)
	return nil
}

func (c *PlaceOrderCommand) setDeliveryType(deliveryType string) error {
	t, err := order.ParseDeliveryType(deliveryType)
	if err != nil {
		return err
	}

	c.deliveryType = t
	return nil
}

func positive(dst *decimal.Decimal, name string, value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is not greater than 0", value.String()))
	}

	*dst = value
	return nil
}
