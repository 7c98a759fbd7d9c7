// Package product contains product-related use cases.
package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"

	"github.com/gestao/backend/internal/application/adapter"
	"github.com/gestao/backend/internal/domain/entity"
	domainerror "github.com/gestao/backend/internal/domain/error"
)

// UpdateProductInput represents the input for product update. Nil fields are
// left unchanged; set fields are merged over the stored record.
type UpdateProductInput struct {
	ProductID   uuid.UUID
	Name        *string
	Description *string
	CostPrice   *decimal.Decimal
	SalePrice   *decimal.Decimal
	Quantity    *int
	MinStock    *int
	CategoryID  *uuid.UUID
}

// UpdateProductOutput represents the output of product update.
type UpdateProductOutput struct {
	Product *entity.Product
}

// UpdateProductUseCase handles product update logic.
type UpdateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewUpdateProductUseCase creates a new UpdateProductUseCase instance.
func NewUpdateProductUseCase(productRepo adapter.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the partial product update and refreshes the updated
// timestamp.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, input UpdateProductInput) (*UpdateProductOutput, error) {
	product, err := uc.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProductNotFound) {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeProductNotFound,
				"product not found",
				domainerror.ErrProductNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.CostPrice != nil {
		if input.CostPrice.IsNegative() {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeNegativePrice,
				"cost price must not be negative",
				domainerror.ErrNegativePrice,
			)
		}
		product.CostPrice = *input.CostPrice
	}
	if input.SalePrice != nil {
		if input.SalePrice.IsNegative() {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeNegativePrice,
				"sale price must not be negative",
				domainerror.ErrNegativePrice,
			)
		}
		product.SalePrice = *input.SalePrice
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.MinStock != nil {
		if *input.MinStock < 0 {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeNegativeMinStock,
				"minimum stock must not be negative",
				domainerror.ErrNegativeMinStock,
			)
		}
		product.MinStock = *input.MinStock
	}
	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}

	product.UpdatedAt = time.Now().UTC()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &UpdateProductOutput{
		Product: product,
	}, nil
}
