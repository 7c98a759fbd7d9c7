// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"
)

// PurchaseItem is one product line within a purchase, carrying name and unit
// cost snapshots taken at purchase time.
type PurchaseItem struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitCost    decimal.Decimal
	Total       decimal.Decimal
}

// Purchase records a stock replenishment from a supplier.
type Purchase struct {
	ID        uuid.UUID
	Items     []PurchaseItem
	Total     decimal.Decimal
	Supplier  string
	UserID    uuid.UUID
	UserName  string
	CreatedAt time.Time
}

// NewPurchase creates a new Purchase entity.
func NewPurchase(items []PurchaseItem, total decimal.Decimal, supplier string, userID uuid.UUID, userName string) *Purchase {
	return &Purchase{
		ID:        uuid.New(),
		Items:     items,
		Total:     total,
		Supplier:  supplier,
		UserID:    userID,
		UserName:  userName,
		CreatedAt: time.Now().UTC(),
	}
}
