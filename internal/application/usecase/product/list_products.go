// Package product contains product-related use cases.
package product

import (
	"context"
	"fmt"

	"github.com/gestao/backend/internal/application/adapter"
	"github.com/gestao/backend/internal/domain/entity"
)

// ListProductsOutput represents the output of listing products.
type ListProductsOutput struct {
	Products []*entity.Product
}

// ListProductsUseCase handles listing products.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute retrieves all products in insertion order.
func (uc *ListProductsUseCase) Execute(ctx context.Context) (*ListProductsOutput, error) {
	products, err := uc.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ListProductsOutput{
		Products: products,
	}, nil
}
