// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"
)

// Product represents an inventory item.
//
// Quantity is kept non-negative by the sale operation, which rejects any sale
// exceeding the available stock. MinStock is the threshold at or below which
// the product counts as low stock.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	CostPrice   decimal.Decimal
	SalePrice   decimal.Decimal
	Quantity    int
	MinStock    int
	CategoryID  uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct creates a new Product entity with matching created/updated timestamps.
func NewProduct(name, description string, costPrice, salePrice decimal.Decimal, quantity, minStock int, categoryID uuid.UUID) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CostPrice:   costPrice,
		SalePrice:   salePrice,
		Quantity:    quantity,
		MinStock:    minStock,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsLowStock reports whether the product is at or below its minimum-stock threshold.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinStock
}
