package queries

import (
	"errors"
	"time"

	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves an order together with a summary of its delivery.
type GetOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderView is the read model of an order. Delivery is nil only if the order
// was written outside the order workflow.
type OrderView struct {
	ID           kernel.UUID
	ClientID     kernel.UUID
	Date         time.Time
	DeliveryType string
	DistanceKm   decimal.Decimal
	WeightKg     decimal.Decimal
	RatePerKm    decimal.Decimal
	RatePerKg    decimal.Decimal
	Delivery     *OrderDeliverySummary
}

type OrderDeliverySummary struct {
	ID         kernel.UUID
	Status     string
	FinalTotal decimal.Decimal
}
