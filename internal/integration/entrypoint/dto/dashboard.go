// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao/backend/internal/application/usecase/dashboard"
)

// MetricsResponse represents the month-to-date dashboard metrics.
type MetricsResponse struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	EstimatedProfit decimal.Decimal `json:"estimated_profit"`
	TotalSales      int             `json:"total_sales"`
	LowStockCount   int             `json:"low_stock_count"`
}

// RevenuePointResponse is one day of the revenue series.
type RevenuePointResponse struct {
	Date    string          `json:"date"`
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
}

// RevenueSeriesResponse represents the per-day revenue series.
type RevenueSeriesResponse struct {
	Points []RevenuePointResponse `json:"points"`
}

// TransactionEntryResponse is one row of the merged transaction feed.
type TransactionEntryResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	Date        time.Time       `json:"date"`
}

// RecentTransactionsResponse represents the merged transaction feed.
type RecentTransactionsResponse struct {
	Transactions []TransactionEntryResponse `json:"transactions"`
}

// ToMetricsResponse converts the metrics output to its DTO.
func ToMetricsResponse(output *dashboard.GetMetricsOutput) MetricsResponse {
	return MetricsResponse{
		TotalRevenue:    output.TotalRevenue,
		EstimatedProfit: output.EstimatedProfit,
		TotalSales:      output.TotalSales,
		LowStockCount:   output.LowStockCount,
	}
}

// ToRevenueSeriesResponse converts the revenue series output to its DTO.
func ToRevenueSeriesResponse(output *dashboard.GetRevenueSeriesOutput) RevenueSeriesResponse {
	points := make([]RevenuePointResponse, len(output.Points))
	for i, p := range output.Points {
		points[i] = RevenuePointResponse{
			Date:    p.Date.Format("2006-01-02"),
			Label:   p.Label,
			Revenue: p.Revenue,
		}
	}
	return RevenueSeriesResponse{
		Points: points,
	}
}

// ToRecentTransactionsResponse converts the transaction feed output to its DTO.
func ToRecentTransactionsResponse(output *dashboard.GetRecentTransactionsOutput) RecentTransactionsResponse {
	entries := make([]TransactionEntryResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		entries[i] = TransactionEntryResponse{
			ID:          t.ID.String(),
			Type:        string(t.Type),
			Description: t.Description,
			Value:       t.Value,
			Date:        t.Date,
		}
	}
	return RecentTransactionsResponse{
		Transactions: entries,
	}
}
