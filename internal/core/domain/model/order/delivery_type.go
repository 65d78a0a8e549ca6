package order

import (
	"fmt"
	"strings"

	"orderdelivery/internal/pkg/errs"
)

// DeliveryType selects the service level of an order. Urgent orders carry a surcharge.
type DeliveryType string

const (
	Standard DeliveryType = "standard"
	Urgent   DeliveryType = "urgent"
)

// ParseDeliveryType accepts "standard" or "urgent", ignoring case and surrounding spaces.
func ParseDeliveryType(s string) (DeliveryType, error) {
	t := DeliveryType(strings.ToLower(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t DeliveryType) Validate() error {
	switch t {
	case Standard, Urgent:
		return nil
	case "":
		return errs.NewValueIsRequiredError("deliveryType")
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryType",
			fmt.Errorf("%q is not one of %q, %q", string(t), Standard, Urgent),
		)
	}
}

func (t DeliveryType) IsUrgent() bool {
	return t == Urgent
}

func (t DeliveryType) String() string {
	return string(t)
}
