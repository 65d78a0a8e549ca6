package commands

import (
	"errors"
	"strings"

	"orderdelivery/internal/core/domain/model/client"
	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"
)

var (
	ErrRegisterClientCommandIsNotConstructed = errors.New(
		"RegisterClientCommand must be created via NewRegisterClientCommand constructor",
	)
	ErrUpdateClientCommandIsNotConstructed = errors.New(
		"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
	)
	ErrDeleteClientCommandIsNotConstructed = errors.New(
		"DeleteClientCommand must be created via NewDeleteClientCommand constructor",
	)
)

// RegisterClientCommand adds a client to the registry.
type RegisterClientCommand struct {
	profile client.Profile

	guard guard.ConstructorGuard
}

// NewRegisterClientCommand requires full name, tax ID and address. Phone and
// email may be empty.
func NewRegisterClientCommand(fullName, taxID, phone, email, address string) (RegisterClientCommand, error) {
	profile := client.Profile{
		FullName: fullName,
		TaxID:    taxID,
		Phone:    phone,
		Email:    email,
		Address:  address,
	}
	if err := validateProfile(profile); err != nil {
		return RegisterClientCommand{}, err
	}

	return RegisterClientCommand{
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

func (c RegisterClientCommand) Profile() client.Profile {
	return c.profile
}

// UpdateClientCommand replaces every profile field of an existing client.
type UpdateClientCommand struct {
	clientID kernel.UUID
	profile  client.Profile

	guard guard.ConstructorGuard
}

func NewUpdateClientCommand(clientID kernel.UUID, fullName, taxID, phone, email, address string) (UpdateClientCommand, error) {
	profile := client.Profile{
		FullName: fullName,
		TaxID:    taxID,
		Phone:    phone,
		Email:    email,
		Address:  address,
	}
	if err := errors.Join(clientID.Validate(), validateProfile(profile)); err != nil {
		return UpdateClientCommand{}, err
	}

	return UpdateClientCommand{
		clientID: clientID,
		profile:  profile,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

func (c UpdateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c UpdateClientCommand) Profile() client.Profile {
	return c.profile
}

// DeleteClientCommand removes a client that has no orders.
type DeleteClientCommand struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteClientCommand(clientID kernel.UUID) (DeleteClientCommand, error) {
	if err := clientID.Validate(); err != nil {
		return DeleteClientCommand{}, err
	}

	return DeleteClientCommand{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteClientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClientCommandIsNotConstructed)
}

func (c DeleteClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

func validateProfile(p client.Profile) error {
	required := func(name, value string) error {
		if strings.TrimSpace(value) == "" {
			return errs.NewValueIsRequiredError(name)
		}
		return nil
	}

	return errors.Join(
		required("fullName", p.FullName),
		required("taxID", p.TaxID),
		required("address", p.Address),
	)
}
