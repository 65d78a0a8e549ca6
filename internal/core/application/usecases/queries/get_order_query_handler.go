package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no order has the requested id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var (
		view         OrderView
		id, clientID uuid.UUID
		deliveryID   uuid.NullUUID
		status       sql.NullString
		finalTotal   decimal.NullDecimal
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.client_id,
			o.order_date,
			o.delivery_type,
			o.distance_km,
			o.weight_kg,
			o.rate_per_km,
			o.rate_per_kg,
			d.id,
			d.status,
			d.final_total
		FROM orders o
		LEFT JOIN deliveries d ON d.order_id = o.id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row().Scan(
		&id,
		&clientID,
		&view.Date,
		&view.DeliveryType,
		&view.DistanceKm,
		&view.WeightKg,
		&view.RatePerKm,
		&view.RatePerKg,
		&deliveryID,
		&status,
		&finalTotal,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderView{}, errs.WrapPersistence("read order", err)
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return OrderView{}, err
	}
	view.Date = view.Date.UTC()

	if deliveryID.Valid {
		summaryID, idErr := kernel.UUIDFromBytes(deliveryID.UUID[:])
		if idErr != nil {
			return OrderView{}, idErr
		}
		view.Delivery = &OrderDeliverySummary{
			ID:         summaryID,
			Status:     status.String,
			FinalTotal: finalTotal.Decimal,
		}
	}

	return view, nil
}
