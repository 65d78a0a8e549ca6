// Package deliveryrepo persists delivery aggregates. The price breakdown is
// written once; afterwards only the status column changes.
package deliveryrepo

import (
	"orderdelivery/internal/adapters/out/postgres/orderrepo"
	"orderdelivery/internal/core/domain/model/delivery"
	"orderdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderIDIndex enforces one delivery per order.
const OrderIDIndex = "idx_deliveries_order_id"

type DeliveryDTO struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_deliveries_order_id"`
	Order        orderrepo.OrderDTO `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	DistanceCost decimal.Decimal    `gorm:"type:numeric;not null"`
	WeightCost   decimal.Decimal    `gorm:"type:numeric;not null"`
	Surcharge    decimal.Decimal    `gorm:"type:numeric;not null"`
	Discount     decimal.Decimal    `gorm:"type:numeric;not null"`
	ExtraFee     decimal.Decimal    `gorm:"type:numeric;not null"`
	FinalTotal   decimal.Decimal    `gorm:"type:numeric;not null"`
	Status       string             `gorm:"type:text;not null;index"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	b := d.Breakdown()
	return DeliveryDTO{
		ID:           d.ID().Bytes(),
		OrderID:      d.OrderID().Bytes(),
		DistanceCost: b.DistanceCost,
		WeightCost:   b.WeightCost,
		Surcharge:    b.Surcharge,
		Discount:     b.Discount,
		ExtraFee:     b.ExtraFee,
		FinalTotal:   b.FinalTotal,
		Status:       d.Status().String(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, delivery.PriceBreakdown{
		DistanceCost: dto.DistanceCost,
		WeightCost:   dto.WeightCost,
		Surcharge:    dto.Surcharge,
		Discount:     dto.Discount,
		ExtraFee:     dto.ExtraFee,
		FinalTotal:   dto.FinalTotal,
	}, delivery.Status(dto.Status))
}
