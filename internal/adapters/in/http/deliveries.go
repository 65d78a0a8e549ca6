package http

import (
	"net/http"

	"orderdelivery/internal/core/application/usecases/commands"
	"orderdelivery/internal/core/application/usecases/queries"
	"orderdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListDeliveries handles GET /api/v1/deliveries.
func (s *Server) ListDeliveries(ctx echo.Context) error {
	views, err := s.handlers.ListDeliveries.Handle(ctx.Request().Context(), queries.NewListDeliveriesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Delivery, len(views))
	for i, v := range views {
		response[i] = toDeliveryView(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDelivery handles GET /api/v1/deliveries/{deliveryId}.
func (s *Server) GetDelivery(ctx echo.Context, deliveryId servers.DeliveryId) error {
	id, err := toKernelUUID(deliveryId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryView(view))
}

// SetDeliveryStatus handles PUT /api/v1/deliveries/{deliveryId}/status.
func (s *Server) SetDeliveryStatus(ctx echo.Context, deliveryId servers.DeliveryId) error {
	var body servers.SetDeliveryStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	id, err := toKernelUUID(deliveryId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetDeliveryStatusCommand(id, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.SetDeliveryStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDelivery(updated))
}
