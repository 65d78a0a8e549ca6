package postgres

import (
	"orderdelivery/internal/adapters/out/postgres/clientrepo"
	"orderdelivery/internal/adapters/out/postgres/deliveryrepo"
	"orderdelivery/internal/adapters/out/postgres/orderrepo"
	"orderdelivery/internal/adapters/out/postgres/outboxrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the service, parents before children.
var Tables = []string{"clients", "orders", "deliveries", "outbox_messages"}

// Migrate creates or updates the schema, including foreign keys and unique indexes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&clientrepo.ClientDTO{},
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
		&outboxrepo.MessageDTO{},
	)
}
