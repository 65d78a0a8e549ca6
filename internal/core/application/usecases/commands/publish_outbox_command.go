package commands

import (
	"errors"
	"fmt"

	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"
)

var (
	ErrPublishOutboxCommandIsNotConstructed = errors.New(
		"PublishOutboxCommand must be created via NewPublishOutboxCommand constructor",
	)
)

const maxOutboxBatchSize = 1000

// PublishOutboxCommand relays one batch of pending domain events to the broker.
type PublishOutboxCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewPublishOutboxCommand(batchSize int) (PublishOutboxCommand, error) {
	if batchSize <= 0 || batchSize > maxOutboxBatchSize {
		return PublishOutboxCommand{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"batchSize", batchSize, 1, maxOutboxBatchSize,
			fmt.Errorf("batch size must be within [1, %d]", maxOutboxBatchSize),
		)
	}

	return PublishOutboxCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PublishOutboxCommand) Validate() error {
	return c.guard.Validate(ErrPublishOutboxCommandIsNotConstructed)
}

func (c PublishOutboxCommand) BatchSize() int {
	return c.batchSize
}
