// Package product contains product-related use cases.
package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestao/backend/internal/application/adapter"
	domainerror "github.com/gestao/backend/internal/domain/error"
)

// DeleteProductInput represents the input for product deletion.
type DeleteProductInput struct {
	ProductID uuid.UUID
}

// DeleteProductOutput represents the output of product deletion.
type DeleteProductOutput struct {
	Success bool
}

// DeleteProductUseCase handles product deletion logic.
type DeleteProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(productRepo adapter.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
	}
}

// Execute removes the product. Historical sale and purchase lines keep their
// own name and price snapshots, so no referential check is performed here.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, input DeleteProductInput) (*DeleteProductOutput, error) {
	if _, err := uc.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, domainerror.ErrProductNotFound) {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeProductNotFound,
				"product not found",
				domainerror.ErrProductNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	if err := uc.productRepo.Delete(ctx, input.ProductID); err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	return &DeleteProductOutput{Success: true}, nil
}
