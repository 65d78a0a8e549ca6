package http

import (
	"net/http"

	"orderdelivery/internal/core/application/usecases/commands"
	"orderdelivery/internal/core/application/usecases/queries"
	"orderdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ListClients handles GET /api/v1/clients.
func (s *Server) ListClients(ctx echo.Context) error {
	views, err := s.handlers.ListClients.Handle(ctx.Request().Context(), queries.NewListClientsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Client, len(views))
	for i, v := range views {
		response[i] = toClientView(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterClient handles POST /api/v1/clients.
func (s *Server) RegisterClient(ctx echo.Context) error {
	var body servers.RegisterClientJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterClientCommand(body.FullName, body.TaxId, deref(body.Phone), deref(body.Email), body.Address)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.handlers.RegisterClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toClient(c))
}

// GetClient handles GET /api/v1/clients/{clientId}.
func (s *Server) GetClient(ctx echo.Context, clientId servers.ClientId) error {
	id, err := toKernelUUID(clientId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetClientQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetClient.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toClientView(view))
}

// UpdateClient handles PUT /api/v1/clients/{clientId}.
func (s *Server) UpdateClient(ctx echo.Context, clientId servers.ClientId) error {
	var body servers.UpdateClientJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	id, err := toKernelUUID(clientId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateClientCommand(id, body.FullName, body.TaxId, deref(body.Phone), deref(body.Email), body.Address)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.handlers.UpdateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toClient(c))
}

// DeleteClient handles DELETE /api/v1/clients/{clientId}.
func (s *Server) DeleteClient(ctx echo.Context, clientId servers.ClientId) error {
	id, err := toKernelUUID(clientId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteClientCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
