package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it
// after Begin share the transaction. Domain events of aggregates written through
// those repositories are stored in the outbox on Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if there is no active transaction.
	Commit(ctx context.Context) error

	// Rollback returns an error if there is no active transaction.
	Rollback(ctx context.Context) error

	ClientDirectory() ClientDirectory
	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository
	ClientRepository() ClientRepository
	OutboxRepository() OutboxRepository
}
