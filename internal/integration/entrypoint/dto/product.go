// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao/backend/internal/domain/entity"
)

// CreateProductRequest represents the request body for product creation.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	Description string          `json:"description"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Quantity    int             `json:"quantity" binding:"min=0"`
	MinStock    int             `json:"min_stock" binding:"min=0"`
	CategoryID  string          `json:"category_id" binding:"required,uuid"`
}

// UpdateProductRequest represents the request body for product update.
// Absent fields leave the stored values unchanged.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string          `json:"description,omitempty"`
	CostPrice   *decimal.Decimal `json:"cost_price,omitempty"`
	SalePrice   *decimal.Decimal `json:"sale_price,omitempty"`
	Quantity    *int             `json:"quantity,omitempty" binding:"omitempty,min=0"`
	MinStock    *int             `json:"min_stock,omitempty" binding:"omitempty,min=0"`
	CategoryID  *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
}

// AdjustStockRequest represents the request body for a signed stock adjustment.
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ProductResponse represents a single product in API responses.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Quantity    int             `json:"quantity"`
	MinStock    int             `json:"min_stock"`
	LowStock    bool            `json:"low_stock"`
	CategoryID  string          `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse represents the response for listing products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain Product entity to a ProductResponse DTO.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		CostPrice:   p.CostPrice,
		SalePrice:   p.SalePrice,
		Quantity:    p.Quantity,
		MinStock:    p.MinStock,
		LowStock:    p.IsLowStock(),
		CategoryID:  p.CategoryID.String(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductListResponse converts a list of products to ProductListResponse.
func ToProductListResponse(products []*entity.Product) ProductListResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProductResponse(p)
	}
	return ProductListResponse{
		Products: out,
	}
}
