// Package http exposes the order, delivery and client use cases over REST.
// Routes, request and response types come from internal/generated/servers.
package http

import (
	"context"
	"log/slog"

	"orderdelivery/internal/core/application/usecases/commands"
	"orderdelivery/internal/core/application/usecases/queries"
	"orderdelivery/internal/core/domain/model/client"
	"orderdelivery/internal/core/domain/model/delivery"
	"orderdelivery/internal/generated/servers"
)

// Use case handlers the server depends on. Command handlers are passed by
// pointer; query handlers by value.
type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (commands.PlaceOrderResult, error)
	}

	SetDeliveryStatusHandler interface {
		Handle(ctx context.Context, cmd commands.SetDeliveryStatusCommand) (*delivery.Delivery, error)
	}

	RegisterClientHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterClientCommand) (*client.Client, error)
	}

	UpdateClientHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateClientCommand) (*client.Client, error)
	}

	DeleteClientHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteClientCommand) error
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}

	GetDeliveryHandler interface {
		Handle(ctx context.Context, query queries.GetDeliveryQuery) (queries.DeliveryView, error)
	}

	ListDeliveriesHandler interface {
		Handle(ctx context.Context, query queries.ListDeliveriesQuery) ([]queries.DeliveryView, error)
	}

	GetClientHandler interface {
		Handle(ctx context.Context, query queries.GetClientQuery) (queries.ClientView, error)
	}

	ListClientsHandler interface {
		Handle(ctx context.Context, query queries.ListClientsQuery) ([]queries.ClientView, error)
	}
)

// Handlers groups every use case the server routes to.
type Handlers struct {
	PlaceOrder        PlaceOrderHandler
	SetDeliveryStatus SetDeliveryStatusHandler
	RegisterClient    RegisterClientHandler
	UpdateClient      UpdateClientHandler
	DeleteClient      DeleteClientHandler

	GetOrder       GetOrderHandler
	GetDelivery    GetDeliveryHandler
	ListDeliveries ListDeliveriesHandler
	GetClient      GetClientHandler
	ListClients    ListClientsHandler
}

// Server implements servers.ServerInterface. It translates HTTP payloads into
// commands and queries and maps error kinds to status codes.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}
