package order

import (
	"errors"
	"fmt"
	"time"

	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// EventOrderPlaced is the name of the event raised by NewOrder.
const EventOrderPlaced = "order.placed"

// Details groups the attributes a client supplies when placing an order.
type Details struct {
	ClientID     kernel.UUID
	Date         time.Time
	DeliveryType DeliveryType
	DistanceKm   decimal.Decimal
	WeightKg     decimal.Decimal
	RatePerKm    decimal.Decimal
	RatePerKg    decimal.Decimal
}

// PricingInputs is everything the pricing engine needs from an order.
type PricingInputs struct {
	DistanceKm   decimal.Decimal
	WeightKg     decimal.Decimal
	RatePerKm    decimal.Decimal
	RatePerKg    decimal.Decimal
	DeliveryType DeliveryType
}

// Placed is raised when a new order is accepted.
type Placed struct {
	kernel.BaseEvent
	ClientID     string `json:"clientId"`
	Date         string `json:"date"`
	DeliveryType string `json:"deliveryType"`
}

// Order is the aggregate root for a client's request to ship goods. It is
// immutable after creation: there are no setters beyond construction.
//
// Invariants:
//   - id and clientID are valid UUIDs
//   - date is a calendar date (time of day dropped, UTC)
//   - deliveryType is Standard or Urgent
//   - distanceKm, weightKg, ratePerKm and ratePerKg are greater than zero
type Order struct {
	kernel.EventRecorder

	id           kernel.UUID
	clientID     kernel.UUID
	date         time.Time
	deliveryType DeliveryType
	distanceKm   decimal.Decimal
	weightKg     decimal.Decimal
	ratePerKm    decimal.Decimal
	ratePerKg    decimal.Decimal

	isConstructed bool
}

// NewOrder validates details and creates an order, recording an order.placed event.
// All validation failures are joined into a single error.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
//	    ClientID:     clientID,
//	    Date:         time.Now(),
//	    DeliveryType: order.Urgent,
//	    DistanceKm:   decimal.NewFromInt(300),
//	    WeightKg:     decimal.NewFromInt(10),
//	    RatePerKm:    decimal.NewFromInt(2),
//	    RatePerKg:    decimal.NewFromInt(1),
//	})
func NewOrder(id kernel.UUID, details Details) (*Order, error) {
	o, err := build(id, details)
	if err != nil {
		return nil, err
	}

	o.RaiseDomainEvent(Placed{
		BaseEvent:    kernel.NewBaseEvent(EventOrderPlaced, o.id),
		ClientID:     o.clientID.String(),
		Date:         o.date.Format(time.DateOnly),
		DeliveryType: o.deliveryType.String(),
	})
	return o, nil
}

// RestoreOrder rebuilds an order read from storage. The same invariants apply
// but no event is raised.
func RestoreOrder(id kernel.UUID, details Details) (*Order, error) {
	return build(id, details)
}

func build(id kernel.UUID, details Details) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(details.ClientID),
		o.setDate(details.Date),
		o.setDeliveryType(details.DeliveryType),
		setPositive(&o.distanceKm, "distanceKm", details.DistanceKm),
		setPositive(&o.weightKg, "weightKg", details.WeightKg),
		setPositive(&o.ratePerKm, "ratePerKm", details.RatePerKm),
		setPositive(&o.ratePerKg, "ratePerKg", details.RatePerKg),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

func (o *Order) Date() time.Time {
	return o.date
}

func (o *Order) DeliveryType() DeliveryType {
	return o.deliveryType
}

func (o *Order) DistanceKm() decimal.Decimal {
	return o.distanceKm
}

func (o *Order) WeightKg() decimal.Decimal {
	return o.weightKg
}

func (o *Order) RatePerKm() decimal.Decimal {
	return o.ratePerKm
}

func (o *Order) RatePerKg() decimal.Decimal {
	return o.ratePerKg
}

// PricingInputs returns the values the pricing engine works from.
func (o *Order) PricingInputs() PricingInputs {
	return PricingInputs{
		DistanceKm:   o.distanceKm,
		WeightKg:     o.weightKg,
		RatePerKm:    o.ratePerKm,
		RatePerKg:    o.ratePerKg,
		DeliveryType: o.deliveryType,
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientID", err)
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	o.date = CivilDate(date)
	return nil
}

func (o *Order) setDeliveryType(deliveryType DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	o.deliveryType = deliveryType
	return nil
}

func setPositive(dst *decimal.Decimal, name string, value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is not greater than 0", value.String()))
	}
	*dst = value
	return nil
}

// CivilDate drops the time of day, keeping the calendar date as seen in t's location.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
