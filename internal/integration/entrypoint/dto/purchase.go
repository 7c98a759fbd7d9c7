// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao/backend/internal/domain/entity"
)

// PurchaseItemRequest represents one line of a purchase creation request.
// UnitCost is optional; when absent the product's current cost price is used.
type PurchaseItemRequest struct {
	ProductID string           `json:"product_id" binding:"required,uuid"`
	Quantity  int              `json:"quantity" binding:"required,min=1"`
	UnitCost  *decimal.Decimal `json:"unit_cost,omitempty"`
}

// CreatePurchaseRequest represents the request body for recording a purchase.
type CreatePurchaseRequest struct {
	Supplier string                `json:"supplier" binding:"required,min=1,max=100"`
	Items    []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PurchaseItemResponse represents one line of a purchase in API responses.
type PurchaseItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Total       decimal.Decimal `json:"total"`
}

// PurchaseResponse represents a single purchase in API responses.
type PurchaseResponse struct {
	ID        string                 `json:"id"`
	Items     []PurchaseItemResponse `json:"items"`
	Total     decimal.Decimal        `json:"total"`
	Supplier  string                 `json:"supplier"`
	UserID    string                 `json:"user_id"`
	UserName  string                 `json:"user_name"`
	CreatedAt time.Time              `json:"created_at"`
}

// PurchaseListResponse represents the response for listing purchases.
type PurchaseListResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

// ToPurchaseResponse converts a domain Purchase entity to a PurchaseResponse DTO.
func ToPurchaseResponse(p *entity.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(p.Items))
	for i, item := range p.Items {
		items[i] = PurchaseItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitCost:    item.UnitCost,
			Total:       item.Total,
		}
	}
	return PurchaseResponse{
		ID:        p.ID.String(),
		Items:     items,
		Total:     p.Total,
		Supplier:  p.Supplier,
		UserID:    p.UserID.String(),
		UserName:  p.UserName,
		CreatedAt: p.CreatedAt,
	}
}

// ToPurchaseListResponse converts a list of purchases to PurchaseListResponse.
func ToPurchaseListResponse(purchases []*entity.Purchase) PurchaseListResponse {
	out := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		out[i] = ToPurchaseResponse(p)
	}
	return PurchaseListResponse{
		Purchases: out,
	}
}
