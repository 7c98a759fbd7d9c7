// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"

	"github.com/gestao/backend/internal/application/adapter"
	"github.com/gestao/backend/internal/domain/entity"
	domainerror "github.com/gestao/backend/internal/domain/error"
)

// SaleItemInput is one requested line of a sale.
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateSaleInput represents the input for recording a sale. SaleDate allows
// back-dated entry; nil means the sale is dated now.
type CreateSaleInput struct {
	Items    []SaleItemInput
	UserID   uuid.UUID
	SaleDate *time.Time
}

// CreateSaleOutput represents the output of recording a sale.
type CreateSaleOutput struct {
	Sale *entity.Sale
}

// CreateSaleUseCase records a sale: it validates stock for every line before
// touching anything, snapshots product name, unit price and unit cost,
// decrements stock, appends the sale, and queues low-stock alerts for lines
// that crossed their threshold.
type CreateSaleUseCase struct {
	saleRepo    adapter.SaleRepository
	productRepo adapter.ProductRepository
	userRepo    adapter.UserRepository
	alertQueue  adapter.AlertQueue
}

// NewCreateSaleUseCase creates a new CreateSaleUseCase instance.
func NewCreateSaleUseCase(
	saleRepo adapter.SaleRepository,
	productRepo adapter.ProductRepository,
	userRepo adapter.UserRepository,
	alertQueue adapter.AlertQueue,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		alertQueue:  alertQueue,
	}
}

// Execute performs the sale recording.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, input CreateSaleInput) (*CreateSaleOutput, error) {
	if len(input.Items) == 0 {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeEmptySale,
			"sale must contain at least one item",
			domainerror.ErrEmptySale,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find acting user: %w", err)
	}

	// Resolve each distinct product once and validate the aggregate requested
	// quantity against it, so lines repeating a product share one stock budget
	// and a rejected line cannot leave a partial adjustment behind.
	products := make(map[uuid.UUID]*entity.Product, len(input.Items))
	requested := make(map[uuid.UUID]int, len(input.Items))
	order := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeInvalidQuantity,
				"quantity must be positive",
				domainerror.ErrInvalidQuantity,
			)
		}

		product, ok := products[item.ProductID]
		if !ok {
			product, err = uc.productRepo.FindByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, domainerror.ErrProductNotFound) {
					return nil, domainerror.NewSaleError(
						domainerror.ErrCodeSaleProductGone,
						"product not found",
						domainerror.ErrProductNotFound,
					)
				}
				return nil, fmt.Errorf("failed to find product: %w", err)
			}
			products[item.ProductID] = product
			order = append(order, item.ProductID)
		}

		requested[item.ProductID] += item.Quantity
		if requested[item.ProductID] > product.Quantity {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeInsufficientStock,
				fmt.Sprintf("insufficient stock for %q: %d available", product.Name, product.Quantity),
				domainerror.ErrInsufficientStock,
			)
		}
	}

	items := make([]entity.SaleItem, len(input.Items))
	total := decimal.Zero
	for i, item := range input.Items {
		product := products[item.ProductID]
		lineTotal := product.SalePrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items[i] = entity.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.SalePrice,
			UnitCost:    product.CostPrice,
			Total:       lineTotal,
		}
		total = total.Add(lineTotal)
	}

	sale := entity.NewSale(items, total, user.ID, user.Name, input.SaleDate)

	// Decrement once per distinct product. Validation above guarantees none
	// goes negative.
	for _, id := range order {
		product := products[id]
		wasLow := product.IsLowStock()

		product.Quantity -= requested[id]
		product.UpdatedAt = time.Now().UTC()
		if err := uc.productRepo.Update(ctx, product); err != nil {
			return nil, fmt.Errorf("failed to decrement stock: %w", err)
		}

		if !wasLow && product.IsLowStock() {
			uc.enqueueLowStockAlert(ctx, product)
		}
	}

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	return &CreateSaleOutput{
		Sale: sale,
	}, nil
}

// enqueueLowStockAlert queues a notification for a product that just crossed
// its minimum-stock threshold. Queue failures are logged, never fatal: the
// sale itself must not be lost over a notification.
func (uc *CreateSaleUseCase) enqueueLowStockAlert(ctx context.Context, product *entity.Product) {
	if uc.alertQueue == nil {
		return
	}

	job := &adapter.AlertJob{
		ID:          uuid.New(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    product.Quantity,
		MinStock:    product.MinStock,
		Status:      adapter.AlertJobPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.alertQueue.Enqueue(ctx, job); err != nil {
		slog.Warn("Failed to enqueue low-stock alert",
			"product_id", product.ID,
			"error", err,
		)
	}
}
