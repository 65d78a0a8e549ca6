package delivery

import (
	"strings"

	"orderdelivery/internal/pkg/errs"
)

// Status is the free-form lifecycle label of a delivery.
type Status string

const (
	// Calculated is assigned when the delivery is priced and registered.
	Calculated Status = "calculated"
	Shipped    Status = "shipped"
	Delivered  Status = "delivered"
)

// NewStatus rejects blank labels. The label is kept exactly as given.
func NewStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	if strings.TrimSpace(string(s)) == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}
