package ports

import (
	"context"

	"orderdelivery/internal/core/domain/model/delivery"
	"orderdelivery/internal/core/domain/model/kernel"
)

// DeliveryRepository is the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery. A second delivery for the same order is a
	// conflict.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Get returns the stored delivery or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate is Get plus a row lock held until the transaction ends.
	// Concurrent status updates of one delivery serialise on it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// UpdateStatus writes the status column only. The price breakdown is never
	// rewritten.
	UpdateStatus(ctx context.Context, aggregate *delivery.Delivery) error
}
