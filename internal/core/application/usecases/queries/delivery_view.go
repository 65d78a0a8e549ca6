// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers read with plain SQL and return read models, never aggregates.
package queries

import (
	"time"

	"orderdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryView is the read model of a delivery joined with the order it prices.
type DeliveryView struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	ClientID     kernel.UUID
	OrderDate    time.Time
	DeliveryType string
	DistanceCost decimal.Decimal
	WeightCost   decimal.Decimal
	Surcharge    decimal.Decimal
	Discount     decimal.Decimal
	ExtraFee     decimal.Decimal
	FinalTotal   decimal.Decimal
	Status       string
}

const selectDeliveryViews = `
	SELECT
		d.id,
		d.order_id,
		o.client_id,
		o.order_date,
		o.delivery_type,
		d.distance_cost,
		d.weight_cost,
		d.surcharge,
		d.discount,
		d.extra_fee,
		d.final_total,
		d.status
	FROM deliveries d
	JOIN orders o ON o.id = d.order_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeliveryView(row rowScanner) (DeliveryView, error) {
	var (
		view               DeliveryView
		id, orderID, cliID uuid.UUID
		err                error
	)

	if err = row.Scan(
		&id,
		&orderID,
		&cliID,
		&view.OrderDate,
		&view.DeliveryType,
		&view.DistanceCost,
		&view.WeightCost,
		&view.Surcharge,
		&view.Discount,
		&view.ExtraFee,
		&view.FinalTotal,
		&view.Status,
	); err != nil {
		return DeliveryView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DeliveryView{}, err
	}
	if view.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return DeliveryView{}, err
	}
	if view.ClientID, err = kernel.UUIDFromBytes(cliID[:]); err != nil {
		return DeliveryView{}, err
	}
	view.OrderDate = view.OrderDate.UTC()

	return view, nil
}
