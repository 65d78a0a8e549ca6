package delivery

import (
	"errors"

	"orderdelivery/internal/core/domain/model/kernel"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created through
	// NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

const (
	EventDeliveryRegistered    = "delivery.registered"
	EventDeliveryStatusChanged = "delivery.status_changed"
)

// Registered is raised when a priced delivery is created for an order.
type Registered struct {
	kernel.BaseEvent
	OrderID    string `json:"orderId"`
	FinalTotal string `json:"finalTotal"`
	Status     string `json:"status"`
}

// StatusChanged is raised when SetStatus actually changes the status.
type StatusChanged struct {
	kernel.BaseEvent
	OrderID string `json:"orderId"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// Delivery is the aggregate root tying an order to its price and status.
// Exactly one delivery exists per order. Only the status changes after creation.
type Delivery struct {
	kernel.EventRecorder

	id        kernel.UUID
	orderID   kernel.UUID
	breakdown PriceBreakdown
	status    Status

	isConstructed bool
}

// NewDelivery registers a freshly priced delivery with status Calculated.
func NewDelivery(id, orderID kernel.UUID, breakdown PriceBreakdown) (*Delivery, error) {
	d, err := build(id, orderID, breakdown, Calculated)
	if err != nil {
		return nil, err
	}

	d.RaiseDomainEvent(Registered{
		BaseEvent:  kernel.NewBaseEvent(EventDeliveryRegistered, d.id),
		OrderID:    d.orderID.String(),
		FinalTotal: d.breakdown.FinalTotal.String(),
		Status:     d.status.String(),
	})
	return d, nil
}

// RestoreDelivery rebuilds a delivery read from storage without raising events.
func RestoreDelivery(id, orderID kernel.UUID, breakdown PriceBreakdown, status Status) (*Delivery, error) {
	return build(id, orderID, breakdown, status)
}

func build(id, orderID kernel.UUID, breakdown PriceBreakdown, status Status) (*Delivery, error) {
	d := &Delivery{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setBreakdown(breakdown),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

func (d *Delivery) Breakdown() PriceBreakdown {
	return d.breakdown
}

func (d *Delivery) Status() Status {
	return d.status
}

// SetStatus replaces the status with any non-empty label. Setting the current
// value again is a no-op and records no event.
func (d *Delivery) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == d.status {
		return nil
	}

	d.RaiseDomainEvent(StatusChanged{
		BaseEvent: kernel.NewBaseEvent(EventDeliveryStatusChanged, d.id),
		OrderID:   d.orderID.String(),
		From:      d.status.String(),
		To:        status.String(),
	})
	d.status = status
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setBreakdown(breakdown PriceBreakdown) error {
	if err := breakdown.Validate(); err != nil {
		return err
	}
	d.breakdown = breakdown
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
