// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao/backend/internal/domain/entity"
)

// SaleItemRequest represents one line of a sale creation request.
type SaleItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CreateSaleRequest represents the request body for recording a sale.
// SaleDate is optional RFC 3339 and allows back-dated entry.
type CreateSaleRequest struct {
	Items    []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	SaleDate *time.Time        `json:"sale_date,omitempty"`
}

// SaleItemResponse represents one line of a sale in API responses.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Total       decimal.Decimal `json:"total"`
}

// SaleResponse represents a single sale in API responses.
type SaleResponse struct {
	ID        string             `json:"id"`
	Items     []SaleItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	UserID    string             `json:"user_id"`
	UserName  string             `json:"user_name"`
	SaleDate  time.Time          `json:"sale_date"`
	CreatedAt time.Time          `json:"created_at"`
}

// SaleListResponse represents the response for listing sales.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// ToSaleResponse converts a domain Sale entity to a SaleResponse DTO.
func ToSaleResponse(s *entity.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			UnitCost:    item.UnitCost,
			Total:       item.Total,
		}
	}
	return SaleResponse{
		ID:        s.ID.String(),
		Items:     items,
		Total:     s.Total,
		UserID:    s.UserID.String(),
		UserName:  s.UserName,
		SaleDate:  s.SaleDate,
		CreatedAt: s.CreatedAt,
	}
}

// ToSaleListResponse converts a list of sales to SaleListResponse.
func ToSaleListResponse(sales []*entity.Sale) SaleListResponse {
	out := make([]SaleResponse, len(sales))
	for i, s := range sales {
		out[i] = ToSaleResponse(s)
	}
	return SaleListResponse{
		Sales: out,
	}
}
