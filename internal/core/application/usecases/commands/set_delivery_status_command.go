package commands

import (
	"errors"

	"orderdelivery/internal/core/domain/model/delivery"
	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/pkg/guard"
)

var (
	ErrSetDeliveryStatusCommandIsNotConstructed = errors.New(
		"SetDeliveryStatusCommand must be created via NewSetDeliveryStatusCommand constructor",
	)
)

// SetDeliveryStatusCommand replaces the status label of a delivery. Any non-empty
// label is accepted.
type SetDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	status     delivery.Status

	guard guard.ConstructorGuard
}

func NewSetDeliveryStatusCommand(deliveryID kernel.UUID, status string) (SetDeliveryStatusCommand, error) {
	cmd := SetDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setStatus(status),
	); err != nil {
		return SetDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

func (c SetDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetDeliveryStatusCommandIsNotConstructed)
}

func (c SetDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c SetDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

func (c *SetDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *SetDeliveryStatusCommand) setStatus(status string) error {
	s, err := delivery.NewStatus(status)
	if err != nil {
		return err
	}

	c.status = s
	return nil
}
