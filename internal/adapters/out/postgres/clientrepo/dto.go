// Package clientrepo persists client aggregates and answers the client
// directory lookups made while placing orders.
package clientrepo

import (
	"orderdelivery/internal/core/domain/model/client"
	"orderdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TaxIDIndex is the unique index guarding client tax IDs.
const TaxIDIndex = "idx_clients_tax_id"

// ClientDTO is the row layout of the clients table.
type ClientDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"not null"`
	TaxID    string    `gorm:"type:varchar(11);not null;uniqueIndex:idx_clients_tax_id"`
	Phone    string
	Email    string
	Address  string `gorm:"not null"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *client.Client) ClientDTO {
	return ClientDTO{
		ID:       c.ID().Bytes(),
		FullName: c.FullName(),
		TaxID:    c.TaxID(),
		Phone:    c.Phone(),
		Email:    c.Email(),
		Address:  c.Address(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.NewClient(id, client.Profile{
		FullName: dto.FullName,
		TaxID:    dto.TaxID,
		Phone:    dto.Phone,
		Email:    dto.Email,
		Address:  dto.Address,
	})
}
