package order_test

import (
	"testing"
	"time"

	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() order.Details {
	return order.Details{
		ClientID:     kernel.NewUUID(),
		Date:         time.Date(2024, time.March, 14, 16, 30, 0, 0, time.UTC),
		DeliveryType: order.Standard,
		DistanceKm:   decimal.NewFromInt(10),
		WeightKg:     decimal.NewFromInt(5),
		RatePerKm:    decimal.NewFromInt(2),
		RatePerKg:    decimal.NewFromInt(1),
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		details := validDetails()

		o, err := order.NewOrder(id, details)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.ClientID().IsEqual(details.ClientID))
		assert.Equal(t, time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC), o.Date())
		assert.Equal(t, order.Standard, o.DeliveryType())
		assert.True(t, o.DistanceKm().Equal(decimal.NewFromInt(10)))
		assert.True(t, o.WeightKg().Equal(decimal.NewFromInt(5)))
		assert.True(t, o.RatePerKm().Equal(decimal.NewFromInt(2)))
		assert.True(t, o.RatePerKg().Equal(decimal.NewFromInt(1)))
	})

	t.Run("should record order placed event", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), validDetails())
		require.NoError(t, err)

		events := o.DomainEvents()

		require.Len(t, events, 1)
		assert.Equal(t, order.EventOrderPlaced, events[0].EventName())
		assert.True(t, events[0].AggregateID().IsEqual(o.ID()))
		placed, ok := events[0].(order.Placed)
		require.True(t, ok)
		assert.Equal(t, "2024-03-14", placed.Date)
		assert.Equal(t, "standard", placed.DeliveryType)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validDetails())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail with missing client", func(t *testing.T) {
		details := validDetails()
		details.ClientID = kernel.UUID{}

		_, err := order.NewOrder(kernel.NewUUID(), details)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "clientID")
	})

	t.Run("should fail with missing date", func(t *testing.T) {
		details := validDetails()
		details.Date = time.Time{}

		_, err := order.NewOrder(kernel.NewUUID(), details)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "date")
	})

	t.Run("should fail with zero distance", func(t *testing.T) {
		details := validDetails()
		details.DistanceKm = decimal.Zero

		_, err := order.NewOrder(kernel.NewUUID(), details)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "distanceKm")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative rate", func(t *testing.T) {
		details := validDetails()
		details.RatePerKg = decimal.NewFromInt(-3)

		_, err := order.NewOrder(kernel.NewUUID(), details)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "ratePerKg")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, order.Details{})

		require.Error(t, err)
		assert.Nil(t, o)
		for _, field := range []string{"clientID", "date", "deliveryType", "distanceKm", "weightKg", "ratePerKm", "ratePerKg"} {
			assert.Contains(t, err.Error(), field)
		}
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should not record events", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), validDetails())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should apply the same invariants", func(t *testing.T) {
		details := validDetails()
		details.WeightKg = decimal.Zero

		_, err := order.RestoreOrder(kernel.NewUUID(), details)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	o1, _ := order.NewOrder(id, validDetails())
	o2, _ := order.RestoreOrder(id, validDetails())
	o3, _ := order.NewOrder(kernel.NewUUID(), validDetails())

	assert.True(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(o3))
	assert.False(t, o1.IsEqual(nil))
}

func TestOrder_PricingInputs(t *testing.T) {
	details := validDetails()
	details.DeliveryType = order.Urgent
	o, err := order.NewOrder(kernel.NewUUID(), details)
	require.NoError(t, err)

	inputs := o.PricingInputs()

	assert.True(t, inputs.DistanceKm.Equal(details.DistanceKm))
	assert.True(t, inputs.WeightKg.Equal(details.WeightKg))
	assert.True(t, inputs.RatePerKm.Equal(details.RatePerKm))
	assert.True(t, inputs.RatePerKg.Equal(details.RatePerKg))
	assert.Equal(t, order.Urgent, inputs.DeliveryType)
}

func TestCivilDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	in := time.Date(2024, time.December, 31, 23, 15, 0, 0, loc)

	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), order.CivilDate(in))
}
