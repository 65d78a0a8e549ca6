// Package orderrepo persists order aggregates. Orders are written once and never
// updated or deleted.
package orderrepo

import (
	"time"

	"orderdelivery/internal/adapters/out/postgres/clientrepo"
	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the orders table. Quantities and rates are
// stored as numeric so that they round-trip exactly.
type OrderDTO struct {
	ID           uuid.UUID            `gorm:"type:uuid;primaryKey"`
	ClientID     uuid.UUID            `gorm:"type:uuid;not null;index"`
	Client       clientrepo.ClientDTO `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	OrderDate    time.Time            `gorm:"type:date;not null"`
	DeliveryType string               `gorm:"type:varchar(16);not null"`
	DistanceKm   decimal.Decimal      `gorm:"type:numeric;not null"`
	WeightKg     decimal.Decimal      `gorm:"type:numeric;not null"`
	RatePerKm    decimal.Decimal      `gorm:"type:numeric;not null"`
	RatePerKg    decimal.Decimal      `gorm:"type:numeric;not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID().Bytes(),
		ClientID:     o.ClientID().Bytes(),
		OrderDate:    o.Date(),
		DeliveryType: o.DeliveryType().String(),
		DistanceKm:   o.DistanceKm(),
		WeightKg:     o.WeightKg(),
		RatePerKm:    o.RatePerKm(),
		RatePerKg:    o.RatePerKg(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, order.Details{
		ClientID:     clientID,
		Date:         dto.OrderDate,
		DeliveryType: order.DeliveryType(dto.DeliveryType),
		DistanceKm:   dto.DistanceKm,
		WeightKg:     dto.WeightKg,
		RatePerKm:    dto.RatePerKm,
		RatePerKg:    dto.RatePerKg,
	})
}
