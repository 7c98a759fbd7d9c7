// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao/backend/internal/application/adapter"
)

// GetMetricsOutput represents the month-to-date dashboard metrics.
type GetMetricsOutput struct {
	TotalRevenue    decimal.Decimal
	EstimatedProfit decimal.Decimal
	TotalSales      int
	LowStockCount   int
}

// GetMetricsUseCase computes the month-to-date revenue, profit and sale count
// plus the current low-stock product count.
type GetMetricsUseCase struct {
	saleRepo    adapter.SaleRepository
	productRepo adapter.ProductRepository
}

// NewGetMetricsUseCase creates a new GetMetricsUseCase instance.
func NewGetMetricsUseCase(
	saleRepo adapter.SaleRepository,
	productRepo adapter.ProductRepository,
) *GetMetricsUseCase {
	return &GetMetricsUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// Execute computes the metrics. The month boundary is the first of the
// current month in the local calendar. Cost comes from the per-line unit-cost
// snapshot taken at sale time, so later product edits do not rewrite
// historical profit.
func (uc *GetMetricsUseCase) Execute(ctx context.Context) (*GetMetricsOutput, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	sales, err := uc.saleRepo.FindCreatedSince(ctx, startOfMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly sales: %w", err)
	}

	revenue := decimal.Zero
	cost := decimal.Zero
	for _, sale := range sales {
		revenue = revenue.Add(sale.Total)
		for _, item := range sale.Items {
			cost = cost.Add(item.UnitCost.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	lowStock, err := uc.productRepo.CountLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count low-stock products: %w", err)
	}

	return &GetMetricsOutput{
		TotalRevenue:    revenue,
		EstimatedProfit: revenue.Sub(cost),
		TotalSales:      len(sales),
		LowStockCount:   int(lowStock),
	}, nil
}
