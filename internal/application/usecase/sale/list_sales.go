// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"fmt"

	"github.com/gestao/backend/internal/application/adapter"
	"github.com/gestao/backend/internal/domain/entity"
)

// ListSalesOutput represents the output of listing sales.
type ListSalesOutput struct {
	Sales []*entity.Sale
}

// ListSalesUseCase handles listing sales.
type ListSalesUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(saleRepo adapter.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
	}
}

// Execute retrieves all sales with their line items, newest first.
func (uc *ListSalesUseCase) Execute(ctx context.Context) (*ListSalesOutput, error) {
	sales, err := uc.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	return &ListSalesOutput{
		Sales: sales,
	}, nil
}
