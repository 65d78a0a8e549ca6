package http

import (
	"time"

	"orderdelivery/internal/core/application/usecases/queries"
	"orderdelivery/internal/core/domain/model/client"
	"orderdelivery/internal/core/domain/model/delivery"
	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toDate(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toBreakdown(b delivery.PriceBreakdown) servers.PriceBreakdown {
	return servers.PriceBreakdown{
		DistanceCost: b.DistanceCost,
		WeightCost:   b.WeightCost,
		Surcharge:    b.Surcharge,
		Discount:     b.Discount,
		ExtraFee:     b.ExtraFee,
		FinalTotal:   b.FinalTotal,
	}
}

func toOrder(o *order.Order) servers.Order {
	return servers.Order{
		Id:           o.ID().Bytes(),
		ClientId:     o.ClientID().Bytes(),
		Date:         toDate(o.Date()),
		DeliveryType: o.DeliveryType().String(),
		DistanceKm:   o.DistanceKm(),
		WeightKg:     o.WeightKg(),
		RatePerKm:    o.RatePerKm(),
		RatePerKg:    o.RatePerKg(),
	}
}

func toDelivery(d *delivery.Delivery) servers.Delivery {
	return servers.Delivery{
		Id:        d.ID().Bytes(),
		OrderId:   d.OrderID().Bytes(),
		Status:    d.Status().String(),
		Breakdown: toBreakdown(d.Breakdown()),
	}
}

func toPlacedOrder(o *order.Order, d *delivery.Delivery, b delivery.PriceBreakdown) servers.PlacedOrder {
	placed := servers.PlacedOrder{
		Order:     toOrder(o),
		Delivery:  toDelivery(d),
		Breakdown: toBreakdown(b),
	}

	clientID := o.ClientID().Bytes()
	date := toDate(o.Date())
	deliveryType := o.DeliveryType().String()
	placed.Delivery.ClientId = &clientID
	placed.Delivery.OrderDate = &date
	placed.Delivery.DeliveryType = &deliveryType
	placed.Order.Delivery = &servers.DeliverySummary{
		Id:         d.ID().Bytes(),
		Status:     d.Status().String(),
		FinalTotal: b.FinalTotal,
	}
	return placed
}

func toDeliveryView(v queries.DeliveryView) servers.Delivery {
	clientID := v.ClientID.Bytes()
	date := toDate(v.OrderDate)
	deliveryType := v.DeliveryType

	return servers.Delivery{
		Id:           v.ID.Bytes(),
		OrderId:      v.OrderID.Bytes(),
		ClientId:     &clientID,
		OrderDate:    &date,
		DeliveryType: &deliveryType,
		Status:       v.Status,
		Breakdown: servers.PriceBreakdown{
			DistanceCost: v.DistanceCost,
			WeightCost:   v.WeightCost,
			Surcharge:    v.Surcharge,
			Discount:     v.Discount,
			ExtraFee:     v.ExtraFee,
			FinalTotal:   v.FinalTotal,
		},
	}
}

func toOrderView(v queries.OrderView) servers.Order {
	o := servers.Order{
		Id:           v.ID.Bytes(),
		ClientId:     v.ClientID.Bytes(),
		Date:         toDate(v.Date),
		DeliveryType: v.DeliveryType,
		DistanceKm:   v.DistanceKm,
		WeightKg:     v.WeightKg,
		RatePerKm:    v.RatePerKm,
		RatePerKg:    v.RatePerKg,
	}
	if v.Delivery != nil {
		o.Delivery = &servers.DeliverySummary{
			Id:         v.Delivery.ID.Bytes(),
			Status:     v.Delivery.Status,
			FinalTotal: v.Delivery.FinalTotal,
		}
	}
	return o
}

func toClient(c *client.Client) servers.Client {
	return servers.Client{
		Id:       c.ID().Bytes(),
		FullName: c.FullName(),
		TaxId:    c.TaxID(),
		Phone:    optional(c.Phone()),
		Email:    optional(c.Email()),
		Address:  c.Address(),
	}
}

func toClientView(v queries.ClientView) servers.Client {
	return servers.Client{
		Id:       v.ID.Bytes(),
		FullName: v.FullName,
		TaxId:    v.TaxID,
		Phone:    optional(v.Phone),
		Email:    optional(v.Email),
		Address:  v.Address,
	}
}
