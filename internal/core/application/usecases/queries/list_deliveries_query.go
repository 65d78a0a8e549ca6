package queries

import (
	"errors"

	"orderdelivery/internal/pkg/guard"
)

var (
	ErrListDeliveriesQueryIsNotConstructed = errors.New(
		"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
	)
)

// ListDeliveriesQuery retrieves every delivery, newest order date first.
//
// Example:
//
//	handler := NewListDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, NewListDeliveriesQuery())
//	if err != nil {
//	    return err
//	}
//
//	for _, d := range deliveries {
//	    fmt.Printf("%s %s %s\n", d.ID, d.Status, d.FinalTotal)
//	}
type ListDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListDeliveriesQuery() ListDeliveriesQuery {
	return ListDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}
