package delivery

import (
	"fmt"

	"orderdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PriceBreakdown is the itemised cost of a delivery. FinalTotal always equals
// DistanceCost + WeightCost + Surcharge - Discount + ExtraFee.
type PriceBreakdown struct {
	DistanceCost decimal.Decimal
	WeightCost   decimal.Decimal
	Surcharge    decimal.Decimal
	Discount     decimal.Decimal
	ExtraFee     decimal.Decimal
	FinalTotal   decimal.Decimal
}

// Subtotal is the distance cost plus the weight cost.
func (b PriceBreakdown) Subtotal() decimal.Decimal {
	return b.DistanceCost.Add(b.WeightCost)
}

// Validate checks that no component is negative and that the components add up
// to FinalTotal.
func (b PriceBreakdown) Validate() error {
	components := map[string]decimal.Decimal{
		"distanceCost": b.DistanceCost,
		"weightCost":   b.WeightCost,
		"surcharge":    b.Surcharge,
		"discount":     b.Discount,
		"extraFee":     b.ExtraFee,
		"finalTotal":   b.FinalTotal,
	}
	for name, v := range components {
		if v.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", v.String()))
		}
	}

	expected := b.Subtotal().Add(b.Surcharge).Sub(b.Discount).Add(b.ExtraFee)
	if !expected.Equal(b.FinalTotal) {
		return errs.NewValueIsInvalidErrorWithCause(
			"finalTotal",
			fmt.Errorf("%s does not match components sum %s", b.FinalTotal.String(), expected.String()),
		)
	}
	return nil
}
