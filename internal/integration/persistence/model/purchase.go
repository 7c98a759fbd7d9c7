// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"

	"github.com/gestao/backend/internal/domain/entity"
)

// PurchaseModel represents the purchases table in the database.
type PurchaseModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Total     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Supplier  string          `gorm:"type:varchar(100);not null"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserName  string          `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time       `gorm:"not null;index"`

	Items []PurchaseItemModel `gorm:"foreignKey:PurchaseID;references:ID"`
}

// TableName returns the table name for the PurchaseModel.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// PurchaseItemModel represents the purchase_items table.
type PurchaseItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PurchaseID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(100);not null"`
	Quantity    int             `gorm:"not null"`
	UnitCost    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the PurchaseItemModel.
func (PurchaseItemModel) TableName() string {
	return "purchase_items"
}

// ToEntity converts a PurchaseModel with its items to a domain Purchase entity.
func (m *PurchaseModel) ToEntity() *entity.Purchase {
	items := make([]entity.PurchaseItem, len(m.Items))
	for i, im := range m.Items {
		items[i] = entity.PurchaseItem{
			ProductID:   im.ProductID,
			ProductName: im.ProductName,
			Quantity:    im.Quantity,
			UnitCost:    im.UnitCost,
			Total:       im.Total,
		}
	}

	return &entity.Purchase{
		ID:        m.ID,
		Items:     items,
		Total:     m.Total,
		Supplier:  m.Supplier,
		UserID:    m.UserID,
		UserName:  m.UserName,
		CreatedAt: m.CreatedAt,
	}
}

// PurchaseFromEntity creates a PurchaseModel with item rows from a domain Purchase entity.
func PurchaseFromEntity(purchase *entity.Purchase) *PurchaseModel {
	items := make([]PurchaseItemModel, len(purchase.Items))
	for i, item := range purchase.Items {
		items[i] = PurchaseItemModel{
			ID:          uuid.New(),
			PurchaseID:  purchase.ID,
			Position:    i,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitCost:    item.UnitCost,
			Total:       item.Total,
		}
	}

	return &PurchaseModel{
		ID:        purchase.ID,
		Total:     purchase.Total,
		Supplier:  purchase.Supplier,
		UserID:    purchase.UserID,
		UserName:  purchase.UserName,
		CreatedAt: purchase.CreatedAt,
		Items:     items,
	}
}
