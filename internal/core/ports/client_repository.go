package ports

import (
	"context"

	"orderdelivery/internal/core/domain/model/client"
	"orderdelivery/internal/core/domain/model/kernel"
)

// ClientDirectory answers whether a client may place orders.
type ClientDirectory interface {
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}

// ClientRepository is the persistence contract for client aggregates.
type ClientRepository interface {
	ClientDirectory

	Add(ctx context.Context, aggregate *client.Client) error
	Update(ctx context.Context, aggregate *client.Client) error

	// Delete removes the client. Clients referenced by orders cannot be deleted
	// and yield errs.ConflictError.
	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// ExistsByTaxID reports whether another client already holds taxID.
	// The client identified by excludeID, if any, is ignored.
	ExistsByTaxID(ctx context.Context, taxID string, excludeID *kernel.UUID) (bool, error)
}
