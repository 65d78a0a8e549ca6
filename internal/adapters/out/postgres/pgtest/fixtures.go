package pgtest

import (
	"fmt"
	"math/rand"
	"time"

	"orderdelivery/internal/core/domain/model/client"
	"orderdelivery/internal/core/domain/model/delivery"
	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockAggregateTracker records TrackAggregate calls made by repositories.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// NewClient returns a valid client with a random tax ID.
func NewClient() *client.Client {
	c, err := client.NewClient(kernel.NewUUID(), client.Profile{
		FullName: "Test Client",
		TaxID:    fmt.Sprintf("%011d", rand.Int63n(1e11)),
		Phone:    "+55 11 90000-0000",
		Email:    "client@example.com",
		Address:  "Rua Teste, 1",
	})
	if err != nil {
		panic(err)
	}
	return c
}

// NewOrder returns a valid standard order for clientID: 10 km at 2 and 5 kg at 1.
func NewOrder(clientID kernel.UUID) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
		ClientID:     clientID,
		Date:         time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		DeliveryType: order.Standard,
		DistanceKm:   decimal.NewFromInt(10),
		WeightKg:     decimal.NewFromInt(5),
		RatePerKm:    decimal.NewFromInt(2),
		RatePerKg:    decimal.NewFromInt(1),
	})
	if err != nil {
		panic(err)
	}
	return o
}

// NewDelivery returns a calculated delivery for orderID priced at 25.
func NewDelivery(orderID kernel.UUID) *delivery.Delivery {
	d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, delivery.PriceBreakdown{
		DistanceCost: decimal.NewFromInt(20),
		WeightCost:   decimal.NewFromInt(5),
		Surcharge:    decimal.Zero,
		Discount:     decimal.Zero,
		ExtraFee:     decimal.Zero,
		FinalTotal:   decimal.NewFromInt(25),
	})
	if err != nil {
		panic(err)
	}
	return d
}
