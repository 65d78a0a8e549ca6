// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every handler validates its command, opens its own unit of work, and rolls back
// on any failure before returning.
package commands

import (
	"context"

	"orderdelivery/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	ClientDirectoryFactory interface {
		ClientDirectory() ports.ClientDirectory
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// PlaceOrderUoW spans the whole order-to-delivery write path. The order and
	// its delivery become visible together at Commit or not at all.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   exists, err := uow.ClientDirectory().Exists(ctx, clientID)
	//   err = uow.OrderRepository().Add(ctx, o)
	//   err = uow.DeliveryRepository().Add(ctx, d)
	//
	//   err = uow.Commit(ctx)
	PlaceOrderUoW interface {
		TxManager
		ClientDirectoryFactory
		OrderRepoFactory
		DeliveryRepoFactory
	}

	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// DeliveryUoW manages transactions for delivery-only operations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ClientUoW manages transactions for client registry operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// OutboxUoW manages transactions for the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
