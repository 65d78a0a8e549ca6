package queries

import (
	"context"

	"orderdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListDeliveriesQueryHandler reads all delivery views.
type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

// Handle never returns a nil slice on success.
func (h ListDeliveriesQueryHandler) Handle(ctx context.Context, query ListDeliveriesQuery) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectDeliveryViews + `
		ORDER BY o.order_date DESC, d.id`).Rows()
	if err != nil {
		return nil, errs.WrapPersistence("list deliveries", err)
	}
	defer rows.Close()

	deliveries := make([]DeliveryView, 0)
	for rows.Next() {
		view, scanErr := scanDeliveryView(rows)
		if scanErr != nil {
			return nil, errs.WrapPersistence("list deliveries", scanErr)
		}
		deliveries = append(deliveries, view)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.WrapPersistence("list deliveries", err)
	}

	return deliveries, nil
}
