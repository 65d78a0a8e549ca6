package commands

import (
	"context"

	"orderdelivery/internal/core/domain/model/client"
	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/pkg/errs"
)

// RegisterClientCommandHandler stores a new client. A tax ID already held by
// another client yields errs.ConflictError.
type RegisterClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

func NewRegisterClientCommandHandler(uowFactory ClientUoWFactory) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RegisterClientCommandHandler) Handle(ctx context.Context, cmd RegisterClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := client.NewClient(kernel.NewUUID(), cmd.Profile())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, errs.WrapPersistence("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ClientRepository()
	taken, err := repo.ExistsByTaxID(ctx, c.TaxID(), nil)
	if err != nil {
		return nil, errs.WrapPersistence("check tax id", err)
	}
	if taken {
		return nil, errs.NewConflictError("taxID", c.TaxID())
	}

	// The unique index still guards against a concurrent registration.
	if err = repo.Add(ctx, c); err != nil {
		return nil, errs.WrapPersistence("insert client", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.WrapPersistence("commit", err)
	}

	return c, nil
}

// UpdateClientCommandHandler replaces a client's profile.
type UpdateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

func NewUpdateClientCommandHandler(uowFactory ClientUoWFactory) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateClientCommandHandler) Handle(ctx context.Context, cmd UpdateClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, errs.WrapPersistence("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ClientRepository()
	c, err := repo.Get(ctx, cmd.ClientID())
	if err != nil {
		return nil, errs.WrapPersistence("read client", err)
	}

	if err = c.Update(cmd.Profile()); err != nil {
		return nil, err
	}

	id := c.ID()
	taken, err := repo.ExistsByTaxID(ctx, c.TaxID(), &id)
	if err != nil {
		return nil, errs.WrapPersistence("check tax id", err)
	}
	if taken {
		return nil, errs.NewConflictError("taxID", c.TaxID())
	}

	if err = repo.Update(ctx, c); err != nil {
		return nil, errs.WrapPersistence("update client", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.WrapPersistence("commit", err)
	}

	return c, nil
}

// DeleteClientCommandHandler removes a client. Clients with orders cannot be
// removed.
type DeleteClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

func NewDeleteClientCommandHandler(uowFactory ClientUoWFactory) DeleteClientCommandHandler {
	return DeleteClientCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteClientCommandHandler) Handle(ctx context.Context, cmd DeleteClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.WrapPersistence("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ClientRepository().Delete(ctx, cmd.ClientID()); err != nil {
		return errs.WrapPersistence("delete client", err)
	}

	return errs.WrapPersistence("commit", uow.Commit(ctx))
}
