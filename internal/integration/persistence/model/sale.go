// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"

	"github.com/gestao/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the database.
type SaleModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Total     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserName  string          `gorm:"type:varchar(100);not null"`
	SaleDate  time.Time       `gorm:"not null;index"`
	CreatedAt time.Time       `gorm:"not null;index"`

	Items []SaleItemModel `gorm:"foreignKey:SaleID;references:ID"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// SaleItemModel represents the sale_items table. Position preserves the
// ordering of lines within a sale.
type SaleItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(100);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	UnitCost    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the SaleItemModel.
func (SaleItemModel) TableName() string {
	return "sale_items"
}

// ToEntity converts a SaleModel with its items to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	items := make([]entity.SaleItem, len(m.Items))
	for i, im := range m.Items {
		items[i] = entity.SaleItem{
			ProductID:   im.ProductID,
			ProductName: im.ProductName,
			Quantity:    im.Quantity,
			UnitPrice:   im.UnitPrice,
			UnitCost:    im.UnitCost,
			Total:       im.Total,
		}
	}

	return &entity.Sale{
		ID:        m.ID,
		Items:     items,
		Total:     m.Total,
		UserID:    m.UserID,
		UserName:  m.UserName,
		SaleDate:  m.SaleDate,
		CreatedAt: m.CreatedAt,
	}
}

// SaleFromEntity creates a SaleModel with item rows from a domain Sale entity.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	items := make([]SaleItemModel, len(sale.Items))
	for i, item := range sale.Items {
		items[i] = SaleItemModel{
			ID:          uuid.New(),
			SaleID:      sale.ID,
			Position:    i,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			UnitCost:    item.UnitCost,
			Total:       item.Total,
		}
	}

	return &SaleModel{
		ID:        sale.ID,
		Total:     sale.Total,
		UserID:    sale.UserID,
		UserName:  sale.UserName,
		SaleDate:  sale.SaleDate,
		CreatedAt: sale.CreatedAt,
		Items:     items,
	}
}
