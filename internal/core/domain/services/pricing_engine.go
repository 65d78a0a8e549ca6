package services

import (
	"orderdelivery/internal/core/domain/model/delivery"
	"orderdelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

var (
	// urgentSurchargeRate is applied to the subtotal of urgent orders.
	urgentSurchargeRate = decimal.RequireFromString("0.20")

	// discountThreshold is the running total above which discountRate applies.
	discountThreshold = decimal.NewFromInt(500)
	discountRate      = decimal.RequireFromString("0.10")

	// heavyWeightThresholdKg is the weight above which heavyWeightFee is added.
	heavyWeightThresholdKg = decimal.NewFromInt(50)
	heavyWeightFee         = decimal.NewFromInt(15)
)

// PricingEngine computes delivery prices. It is a pure function of its inputs
// and safe for concurrent use.
//
// The calculation runs in a fixed order:
//
//	distanceCost = distanceKm * ratePerKm
//	weightCost   = weightKg * ratePerKg
//	surcharge    = 20% of the subtotal for urgent orders
//	discount     = 10% of subtotal+surcharge when that exceeds 500
//	extraFee     = 15 when weightKg exceeds 50
//
// Both thresholds are strict. The discount is evaluated after the surcharge, so an
// urgent surcharge can make an order eligible for it.
//
// Example:
//
//	engine := services.NewPricingEngine()
//	breakdown := engine.Compute(o.PricingInputs())
//	fmt.Println(breakdown.FinalTotal) // 658.8 for 300 km x 2 + 10 kg x 1, urgent
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Compute returns the price breakdown for in. It is total for non-negative inputs.
func (PricingEngine) Compute(in order.PricingInputs) delivery.PriceBreakdown {
	distanceCost := in.DistanceKm.Mul(in.RatePerKm)
	weightCost := in.WeightKg.Mul(in.RatePerKg)
	running := distanceCost.Add(weightCost)

	surcharge := decimal.Zero
	if in.DeliveryType.IsUrgent() {
		surcharge = running.Mul(urgentSurchargeRate)
	}
	running = running.Add(surcharge)

	discount := decimal.Zero
	if running.GreaterThan(discountThreshold) {
		discount = running.Mul(discountRate)
	}
	running = running.Sub(discount)

	extraFee := decimal.Zero
	if in.WeightKg.GreaterThan(heavyWeightThresholdKg) {
		extraFee = heavyWeightFee
	}
	running = running.Add(extraFee)

	return delivery.PriceBreakdown{
		DistanceCost: distanceCost,
		WeightCost:   weightCost,
		Surcharge:    surcharge,
		Discount:     discount,
		ExtraFee:     extraFee,
		FinalTotal:   running,
	}
}
