// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// This package implements the repository pattern for the cart domain aggregate, handling
// the conversion between domain entities and database representations.
package cartrepo

import (
	"time"

	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// The version column backs optimistic concurrency: every successful write
// increments it and guards against concurrent modification.
type CartDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID `gorm:"type:uuid;index"`
	Kind       int
	CreatedAt  time.Time
	ModifiedAt time.Time
	Version    int

	Items []CartItemDTO `gorm:"foreignKey:CartID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents a single cart line. Position preserves insertion
// order across reads; lines merge on catalog item, so (cart_id,
// catalog_item_id) is unique.
type CartItemDTO struct {
	CartID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CatalogItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position      int
	Quantity      int
	UnitPrice     int64
}

// TableName specifies the database table name for cart line entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(aggregate.Items()))
	for position, line := range aggregate.Items() {
		items = append(items, CartItemDTO{
			CartID:        aggregate.ID().Bytes(),
			CatalogItemID: line.CatalogItemID().Bytes(),
			Position:      position,
			Quantity:      line.Quantity(),
			UnitPrice:     line.UnitPrice().MinorUnits(),
		})
	}

	return CartDTO{
		ID:         aggregate.ID().Bytes(),
		OwnerID:    aggregate.OwnerID().Bytes(),
		Kind:       int(aggregate.Kind()),
		CreatedAt:  aggregate.CreatedAt(),
		ModifiedAt: aggregate.ModifiedAt(),
		Version:    aggregate.Version(),
		Items:      items,
	}
}

// toDomain converts a database DTO to a cart domain aggregate.
// Items are expected sorted by position so insertion order survives the trip.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*cart.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		catalogItemID, itemErr := kernel.UUIDFromBytes(itemDTO.CatalogItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, priceErr := kernel.NewMoneyFromMinorUnits(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		line, lineErr := cart.NewLineItem(catalogItemID, itemDTO.Quantity, unitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		items = append(items, line)
	}

	return cart.RestoreCart(id, ownerID, cart.Kind(dto.Kind), items,
		dto.CreatedAt, dto.ModifiedAt, dto.Version)
}
