// Package purchase contains purchase-related use cases.
package purchase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"

	"github.com/gestao/backend/internal/application/adapter"
	"github.com/gestao/backend/internal/domain/entity"
	domainerror "github.com/gestao/backend/internal/domain/error"
)

// PurchaseItemInput is one requested line of a purchase. UnitCost is the
// price actually paid; when nil, the product's current cost price is used.
type PurchaseItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitCost  *decimal.Decimal
}

// CreatePurchaseInput represents the input for recording a purchase.
type CreatePurchaseInput struct {
	Items    []PurchaseItemInput
	Supplier string
	UserID   uuid.UUID
}

// CreatePurchaseOutput represents the output of recording a purchase.
type CreatePurchaseOutput struct {
	Purchase *entity.Purchase
}

// CreatePurchaseUseCase records a purchase: it snapshots product name and
// unit cost per line, increments stock, and appends the purchase.
type CreatePurchaseUseCase struct {
	purchaseRepo adapter.PurchaseRepository
	productRepo  adapter.ProductRepository
	userRepo     adapter.UserRepository
}

// NewCreatePurchaseUseCase creates a new CreatePurchaseUseCase instance.
func NewCreatePurchaseUseCase(
	purchaseRepo adapter.PurchaseRepository,
	productRepo adapter.ProductRepository,
	userRepo adapter.UserRepository,
) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

// Execute performs the purchase recording.
func (uc *CreatePurchaseUseCase) Execute(ctx context.Context, input CreatePurchaseInput) (*CreatePurchaseOutput, error) {
	if len(input.Items) == 0 {
		return nil, domainerror.NewPurchaseError(
			domainerror.ErrCodeEmptyPurchase,
			"purchase must contain at least one item",
			domainerror.ErrEmptyPurchase,
		)
	}

	if strings.TrimSpace(input.Supplier) == "" {
		return nil, domainerror.NewPurchaseError(
			domainerror.ErrCodeSupplierRequired,
			"supplier must not be blank",
			domainerror.ErrSupplierRequired,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find acting user: %w", err)
	}

	// Resolve each distinct product once before adjusting any stock, so lines
	// repeating a product accumulate into a single increment.
	products := make(map[uuid.UUID]*entity.Product, len(input.Items))
	received := make(map[uuid.UUID]int, len(input.Items))
	order := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerror.NewPurchaseError(
				domainerror.ErrCodePurchaseQuantity,
				"quantity must be positive",
				domainerror.ErrInvalidQuantity,
			)
		}

		if _, ok := products[item.ProductID]; !ok {
			product, err := uc.productRepo.FindByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, domainerror.ErrProductNotFound) {
					return nil, domainerror.NewPurchaseError(
						domainerror.ErrCodePurchaseProductGone,
						"product not found",
						domainerror.ErrProductNotFound,
					)
				}
				return nil, fmt.Errorf("failed to find product: %w", err)
			}
			products[item.ProductID] = product
			order = append(order, item.ProductID)
		}

		received[item.ProductID] += item.Quantity
	}

	items := make([]entity.PurchaseItem, len(input.Items))
	total := decimal.Zero
	for i, item := range input.Items {
		product := products[item.ProductID]
		unitCost := product.CostPrice
		if item.UnitCost != nil {
			unitCost = *item.UnitCost
		}
		lineTotal := unitCost.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items[i] = entity.PurchaseItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitCost:    unitCost,
			Total:       lineTotal,
		}
		total = total.Add(lineTotal)
	}

	purchase := entity.NewPurchase(items, total, strings.TrimSpace(input.Supplier), user.ID, user.Name)

	for _, id := range order {
		product := products[id]
		product.Quantity += received[id]
		product.UpdatedAt = time.Now().UTC()
		if err := uc.productRepo.Update(ctx, product); err != nil {
			return nil, fmt.Errorf("failed to increment stock: %w", err)
		}
	}

	if err := uc.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	return &CreatePurchaseOutput{
		Purchase: purchase,
	}, nil
}
