// Package product contains product-related use cases.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"

	"github.com/gestao/backend/internal/application/adapter"
	"github.com/gestao/backend/internal/domain/entity"
	domainerror "github.com/gestao/backend/internal/domain/error"
)

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	Name        string
	Description string
	CostPrice   decimal.Decimal
	SalePrice   decimal.Decimal
	Quantity    int
	MinStock    int
	CategoryID  uuid.UUID
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	Product *entity.Product
}

// CreateProductUseCase handles product creation logic.
type CreateProductUseCase struct {
	productRepo  adapter.ProductRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(
	productRepo adapter.ProductRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the product creation.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNameRequired,
			"product name must not be blank",
			domainerror.ErrProductNameRequired,
		)
	}

	if input.CostPrice.IsNegative() || input.SalePrice.IsNegative() {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeNegativePrice,
			"cost and sale prices must not be negative",
			domainerror.ErrNegativePrice,
		)
	}

	if input.MinStock < 0 {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeNegativeMinStock,
			"minimum stock must not be negative",
			domainerror.ErrNegativeMinStock,
		)
	}

	// The category reference must resolve; categories are never deleted, so
	// no cascade handling is needed afterwards.
	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	product := entity.NewProduct(
		input.Name,
		input.Description,
		input.CostPrice,
		input.SalePrice,
		input.Quantity,
		input.MinStock,
		input.CategoryID,
	)

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &CreateProductOutput{
		Product: product,
	}, nil
}
