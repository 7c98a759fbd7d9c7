// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"

	"github.com/gestao/backend/internal/application/adapter"
	domainerror "github.com/gestao/backend/internal/domain/error"
)

// TransactionType tags an entry of the merged transaction feed.
type TransactionType string

const (
	TransactionTypeSale     TransactionType = "sale"
	TransactionTypePurchase TransactionType = "purchase"
)

// GetRecentTransactionsInput represents the input for the transaction feed.
type GetRecentTransactionsInput struct {
	Limit int
}

// TransactionEntry is one row of the merged sales/purchases feed. Purchases
// carry a negated value so the feed reads as cash flow.
type TransactionEntry struct {
	ID          uuid.UUID
	Type        TransactionType
	Description string
	Value       decimal.Decimal
	Date        time.Time
}

// GetRecentTransactionsOutput represents the output of the transaction feed.
type GetRecentTransactionsOutput struct {
	Transactions []TransactionEntry
}

// GetRecentTransactionsUseCase merges sales and purchases into a single feed
// sorted by creation timestamp descending, truncated to the requested limit.
type GetRecentTransactionsUseCase struct {
	saleRepo     adapter.SaleRepository
	purchaseRepo adapter.PurchaseRepository
}

// NewGetRecentTransactionsUseCase creates a new GetRecentTransactionsUseCase instance.
func NewGetRecentTransactionsUseCase(
	saleRepo adapter.SaleRepository,
	purchaseRepo adapter.PurchaseRepository,
) *GetRecentTransactionsUseCase {
	return &GetRecentTransactionsUseCase{
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Execute builds the merged feed.
func (uc *GetRecentTransactionsUseCase) Execute(ctx context.Context, input GetRecentTransactionsInput) (*GetRecentTransactionsOutput, error) {
	if input.Limit <= 0 {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidLimit,
			"limit must be positive",
			domainerror.ErrInvalidLimit,
		)
	}

	sales, err := uc.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	purchases, err := uc.purchaseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchases: %w", err)
	}

	entries := make([]TransactionEntry, 0, len(sales)+len(purchases))
	for _, s := range sales {
		entries = append(entries, TransactionEntry{
			ID:          s.ID,
			Type:        TransactionTypeSale,
			Description: fmt.Sprintf("Venda - %d item(s)", len(s.Items)),
			Value:       s.Total,
			Date:        s.CreatedAt,
		})
	}
	for _, p := range purchases {
		entries = append(entries, TransactionEntry{
			ID:          p.ID,
			Type:        TransactionTypePurchase,
			Description: fmt.Sprintf("Compra - %s", p.Supplier),
			Value:       p.Total.Neg(),
			Date:        p.CreatedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	if len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}

	return &GetRecentTransactionsOutput{
		Transactions: entries,
	}, nil
}
