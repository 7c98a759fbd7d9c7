// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao/backend/internal/application/adapter"
	domainerror "github.com/gestao/backend/internal/domain/error"
)

// weekdayAbbreviations are the pt-BR short weekday names used in chart labels.
var weekdayAbbreviations = map[time.Weekday]string{
	time.Sunday:    "Dom",
	time.Monday:    "Seg",
	time.Tuesday:   "Ter",
	time.Wednesday: "Qua",
	time.Thursday:  "Qui",
	time.Friday:    "Sex",
	time.Saturday:  "Sáb",
}

// GetRevenueSeriesInput represents the input for the per-day revenue series.
type GetRevenueSeriesInput struct {
	Days int
}

// RevenuePoint is one day of the revenue series.
type RevenuePoint struct {
	Date    time.Time
	Label   string
	Revenue decimal.Decimal
}

// GetRevenueSeriesOutput represents the output of the per-day revenue series.
type GetRevenueSeriesOutput struct {
	Points []RevenuePoint
}

// GetRevenueSeriesUseCase buckets sale totals by calendar day for the last N
// days including today, oldest first, with empty days zero-filled.
type GetRevenueSeriesUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewGetRevenueSeriesUseCase creates a new GetRevenueSeriesUseCase instance.
func NewGetRevenueSeriesUseCase(saleRepo adapter.SaleRepository) *GetRevenueSeriesUseCase {
	return &GetRevenueSeriesUseCase{
		saleRepo: saleRepo,
	}
}

// Execute computes the series. The result always holds exactly input.Days
// entries regardless of sale activity.
func (uc *GetRevenueSeriesUseCase) Execute(ctx context.Context, input GetRevenueSeriesInput) (*GetRevenueSeriesOutput, error) {
	if input.Days <= 0 {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDayCount,
			"day count must be positive",
			domainerror.ErrInvalidDayCount,
		)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	firstDay := today.AddDate(0, 0, -(input.Days - 1))

	sales, err := uc.saleRepo.FindCreatedSince(ctx, firstDay)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	// Bucket sale totals by local calendar day of the creation timestamp.
	buckets := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		key := sale.CreatedAt.In(now.Location()).Format("2006-01-02")
		buckets[key] = buckets[key].Add(sale.Total)
	}

	points := make([]RevenuePoint, 0, input.Days)
	for i := 0; i < input.Days; i++ {
		day := firstDay.AddDate(0, 0, i)
		key := day.Format("2006-01-02")
		revenue, ok := buckets[key]
		if !ok {
			revenue = decimal.Zero
		}
		points = append(points, RevenuePoint{
			Date:    day,
			Label:   fmt.Sprintf("%s %02d", weekdayAbbreviations[day.Weekday()], day.Day()),
			Revenue: revenue,
		})
	}

	return &GetRevenueSeriesOutput{
		Points: points,
	}, nil
}
