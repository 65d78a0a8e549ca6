// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work and the event publisher.
package ports

import (
	"context"

	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates. Orders are
// append-only, so there is no Update or Delete.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the stored order. A missing order yields errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
