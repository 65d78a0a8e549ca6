package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryQueryHandler reads a single delivery view.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no delivery has the requested id.
func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryView{}, err
	}

	row := h.db.WithContext(ctx).Raw(selectDeliveryViews+`
		WHERE d.id = ?`, query.DeliveryID().Bytes()).Row()

	view, err := scanDeliveryView(row)
	if errors.Is(err, sql.ErrNoRows) {
		return DeliveryView{}, errs.NewObjectNotFoundError("delivery", query.DeliveryID().String())
	}
	if err != nil {
		return DeliveryView{}, errs.WrapPersistence("read delivery", err)
	}

	return view, nil
}
