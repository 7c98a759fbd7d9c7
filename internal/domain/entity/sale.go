// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"
)

// SaleItem is one product line within a sale. ProductName, UnitPrice and
// UnitCost are denormalized snapshots taken at sale time so the historical
// record stays stable if the product is later edited or deleted.
type SaleItem struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	UnitCost    decimal.Decimal
	Total       decimal.Decimal
}

// Sale records a completed sale with its line items and grand total.
// SaleDate is the business date of the sale and may be back-dated; CreatedAt
// is when the record was written.
type Sale struct {
	ID        uuid.UUID
	Items     []SaleItem
	Total     decimal.Decimal
	UserID    uuid.UUID
	UserName  string
	SaleDate  time.Time
	CreatedAt time.Time
}

// NewSale creates a new Sale entity. When saleDate is nil the business date
// defaults to the creation timestamp.
func NewSale(items []SaleItem, total decimal.Decimal, userID uuid.UUID, userName string, saleDate *time.Time) *Sale {
	now := time.Now().UTC()
	date := now
	if saleDate != nil {
		date = *saleDate
	}
	return &Sale{
		ID:        uuid.New(),
		Items:     items,
		Total:     total,
		UserID:    userID,
		UserName:  userName,
		SaleDate:  date,
		CreatedAt: now,
	}
}
