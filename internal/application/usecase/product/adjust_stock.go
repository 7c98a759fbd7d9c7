// Package product contains product-related use cases.
package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gestao/backend/internal/application/adapter"
	"github.com/gestao/backend/internal/domain/entity"
	domainerror "github.com/gestao/backend/internal/domain/error"
)

// AdjustStockInput represents the input for a signed stock adjustment.
type AdjustStockInput struct {
	ProductID uuid.UUID
	Delta     int
}

// AdjustStockOutput represents the output of a stock adjustment.
type AdjustStockOutput struct {
	Product *entity.Product
}

// AdjustStockUseCase applies a signed delta to a product's quantity on hand.
// Adjusting by +d then -d restores the original quantity exactly.
type AdjustStockUseCase struct {
	productRepo adapter.ProductRepository
}

// NewAdjustStockUseCase creates a new AdjustStockUseCase instance.
func NewAdjustStockUseCase(productRepo adapter.ProductRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the stock adjustment.
func (uc *AdjustStockUseCase) Execute(ctx context.Context, input AdjustStockInput) (*AdjustStockOutput, error) {
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

	product.Quantity += input.Delta
	product.UpdatedAt = time.Now().UTC()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product stock: %w", err)
	}

	return &AdjustStockOutput{
		Product: product,
	}, nil
}
