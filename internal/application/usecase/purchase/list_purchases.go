// Package purchase contains purchase-related use cases.
package purchase

import (
	"context"
	"fmt"

	"github.com/gestao/backend/internal/application/adapter"
	"github.com/gestao/backend/internal/domain/entity"
)

// ListPurchasesOutput represents the output of listing purchases.
type ListPurchasesOutput struct {
	Purchases []*entity.Purchase
}

// ListPurchasesUseCase handles listing purchases.
type ListPurchasesUseCase struct {
	purchaseRepo adapter.PurchaseRepository
}

// NewListPurchasesUseCase creates a new ListPurchasesUseCase instance.
func NewListPurchasesUseCase(purchaseRepo adapter.PurchaseRepository) *ListPurchasesUseCase {
	return &ListPurchasesUseCase{
		purchaseRepo: purchaseRepo,
	}
}

// Execute retrieves all purchases with their line items, newest first.
func (uc *ListPurchasesUseCase) Execute(ctx context.Context) (*ListPurchasesOutput, error) {
	purchases, err := uc.purchaseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	return &ListPurchasesOutput{
		Purchases: purchases,
	}, nil
}
