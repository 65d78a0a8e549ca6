package queries

import (
	"errors"

	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"
)

var (
	ErrGetClientQueryIsNotConstructed = errors.New(
		"GetClientQuery must be created via NewGetClientQuery constructor",
	)
	ErrListClientsQueryIsNotConstructed = errors.New(
		"ListClientsQuery must be created via NewListClientsQuery constructor",
	)
)

// ClientView is the read model of a registered client.
type ClientView struct {
	ID       kernel.UUID
	FullName string
	TaxID    string
	Phone    string
	Email    string
	Address  string
}

type GetClientQuery struct {
	clientID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetClientQuery(clientID kernel.UUID) (GetClientQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientQuery{}, errs.NewValueIsRequiredErrorWithCause("clientID", err)
	}

	return GetClientQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetClientQuery) ClientID() kernel.UUID {
	return q.clientID
}

func (q GetClientQuery) Validate() error {
	return q.guard.Validate(ErrGetClientQueryIsNotConstructed)
}

// ListClientsQuery retrieves all clients ordered by name.
type ListClientsQuery struct {
	guard guard.ConstructorGuard
}

func NewListClientsQuery() ListClientsQuery {
	return ListClientsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListClientsQuery) Validate() error {
	return q.guard.Validate(ErrListClientsQueryIsNotConstructed)
}
