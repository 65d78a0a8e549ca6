package services_test

import (
	"testing"

	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inputs(distanceKm, ratePerKm, weightKg, ratePerKg string, deliveryType order.DeliveryType) order.PricingInputs {
	return order.PricingInputs{
		DistanceKm:   decimal.RequireFromString(distanceKm),
		RatePerKm:    decimal.RequireFromString(ratePerKm),
		WeightKg:     decimal.RequireFromString(weightKg),
		RatePerKg:    decimal.RequireFromString(ratePerKg),
		DeliveryType: deliveryType,
	}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(expected).Equal(actual), "%s: expected %s, got %s", field, expected, actual.String())
}

func TestPricingEngine_Compute(t *testing.T) {
	engine := services.NewPricingEngine()

	testCases := []struct {
		name      string
		in        order.PricingInputs
		distance  string
		weight    string
		surcharge string
		discount  string
		extraFee  string
		total     string
	}{
		{
			name:     "small standard order",
			in:       inputs("10", "2", "5", "1", order.Standard),
			distance: "20", weight: "5", surcharge: "0", discount: "0", extraFee: "0", total: "25",
		},
		{
			name:     "urgent order crossing discount threshold",
			in:       inputs("300", "2", "10", "1", order.Urgent),
			distance: "600", weight: "10", surcharge: "122", discount: "73.2", extraFee: "0", total: "658.8",
		},
		{
			name:     "heavy standard order",
			in:       inputs("40", "1", "60", "1", order.Standard),
			distance: "40", weight: "60", surcharge: "0", discount: "0", extraFee: "15", total: "115",
		},
		{
			name:     "exactly at discount threshold",
			in:       inputs("240", "2", "20", "1", order.Standard),
			distance: "480", weight: "20", surcharge: "0", discount: "0", extraFee: "0", total: "500",
		},
		{
			name:     "surcharge makes order eligible for discount",
			in:       inputs("200", "2", "20", "1", order.Urgent),
			distance: "400", weight: "20", surcharge: "84", discount: "50.4", extraFee: "0", total: "453.6",
		},
		{
			name:     "exactly at heavy weight threshold",
			in:       inputs("10", "1", "50", "1", order.Standard),
			distance: "10", weight: "50", surcharge: "0", discount: "0", extraFee: "0", total: "60",
		},
		{
			name:     "all adjustments",
			in:       inputs("500", "1", "100", "1", order.Urgent),
			distance: "500", weight: "100", surcharge: "120", discount: "72", extraFee: "15", total: "663",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := engine.Compute(tc.in)

			assertDecimal(t, tc.distance, b.DistanceCost, "distanceCost")
			assertDecimal(t, tc.weight, b.WeightCost, "weightCost")
			assertDecimal(t, tc.surcharge, b.Surcharge, "surcharge")
			assertDecimal(t, tc.discount, b.Discount, "discount")
			assertDecimal(t, tc.extraFee, b.ExtraFee, "extraFee")
			assertDecimal(t, tc.total, b.FinalTotal, "finalTotal")
			require.NoError(t, b.Validate())
		})
	}
}

func TestPricingEngine_Properties(t *testing.T) {
	engine := services.NewPricingEngine()

	t.Run("should be deterministic", func(t *testing.T) {
		in := inputs("123.45", "1.7", "51", "0.9", order.Urgent)

		first := engine.Compute(in)
		second := engine.Compute(in)

		assert.Equal(t, first, second)
	})

	t.Run("should satisfy the sum identity", func(t *testing.T) {
		for _, in := range []order.PricingInputs{
			inputs("1", "0.01", "0.5", "0.33", order.Standard),
			inputs("987.6", "3.21", "75", "2.5", order.Urgent),
			inputs("0", "0", "0", "0", order.Urgent),
		} {
			b := engine.Compute(in)

			expected := b.DistanceCost.Add(b.WeightCost).Add(b.Surcharge).Sub(b.Discount).Add(b.ExtraFee)
			assert.True(t, expected.Equal(b.FinalTotal))
		}
	})

	t.Run("should charge urgent orders exactly 20 percent of subtotal", func(t *testing.T) {
		b := engine.Compute(inputs("55.5", "1.1", "7", "2", order.Urgent))

		assert.True(t, b.Surcharge.Equal(b.Subtotal().Mul(decimal.RequireFromString("0.2"))))
	})

	t.Run("should charge standard orders no surcharge", func(t *testing.T) {
		b := engine.Compute(inputs("55.5", "1.1", "7", "2", order.Standard))

		assert.True(t, b.Surcharge.IsZero())
	})

	t.Run("should apply discount just above the threshold", func(t *testing.T) {
		b := engine.Compute(inputs("240.01", "2", "20", "1", order.Standard))

		assertDecimal(t, "50.002", b.Discount, "discount")
	})

	t.Run("should add extra fee just above the weight threshold", func(t *testing.T) {
		b := engine.Compute(inputs("1", "1", "50.001", "0", order.Standard))

		assertDecimal(t, "15", b.ExtraFee, "extraFee")
	})
}
