package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const selectClientViews = `
	SELECT id, full_name, tax_id, phone, email, address
	FROM clients`

func scanClientView(row rowScanner) (ClientView, error) {
	var (
		view ClientView
		id   uuid.UUID
	)

	if err := row.Scan(&id, &view.FullName, &view.TaxID, &view.Phone, &view.Email, &view.Address); err != nil {
		return ClientView{}, err
	}

	clientID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ClientView{}, err
	}
	view.ID = clientID

	return view, nil
}

type GetClientQueryHandler struct {
	db *gorm.DB
}

func NewGetClientQueryHandler(db *gorm.DB) GetClientQueryHandler {
	return GetClientQueryHandler{db: db}
}

func (h GetClientQueryHandler) Handle(ctx context.Context, query GetClientQuery) (ClientView, error) {
	if err := query.Validate(); err != nil {
		return ClientView{}, err
	}

	row := h.db.WithContext(ctx).Raw(selectClientViews+`
		WHERE id = ?`, query.ClientID().Bytes()).Row()

	view, err := scanClientView(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ClientView{}, errs.NewObjectNotFoundError("client", query.ClientID().String())
	}
	if err != nil {
		return ClientView{}, errs.WrapPersistence("read client", err)
	}

	return view, nil
}

type ListClientsQueryHandler struct {
	db *gorm.DB
}

func NewListClientsQueryHandler(db *gorm.DB) ListClientsQueryHandler {
	return ListClientsQueryHandler{db: db}
}

func (h ListClientsQueryHandler) Handle(ctx context.Context, query ListClientsQuery) ([]ClientView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectClientViews + `
		ORDER BY full_name, id`).Rows()
	if err != nil {
		return nil, errs.WrapPersistence("list clients", err)
	}
	defer rows.Close()

	clients := make([]ClientView, 0)
	for rows.Next() {
		view, scanErr := scanClientView(rows)
		if scanErr != nil {
			return nil, errs.WrapPersistence("list clients", scanErr)
		}
		clients = append(clients, view)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.WrapPersistence("list clients", err)
	}

	return clients, nil
}
