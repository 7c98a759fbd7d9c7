// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gestao/backend/internal/application/usecase/dashboard"
	domainerror "github.com/gestao/backend/internal/domain/error"
	"github.com/gestao/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultSeriesDays is the revenue series window when none is requested.
	defaultSeriesDays = 7
	// defaultTransactionLimit caps the merged transaction feed by default.
	defaultTransactionLimit = 10
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	metricsUseCase            *dashboard.GetMetricsUseCase
	revenueSeriesUseCase      *dashboard.GetRevenueSeriesUseCase
	recentTransactionsUseCase *dashboard.GetRecentTransactionsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	metricsUseCase *dashboard.GetMetricsUseCase,
	revenueSeriesUseCase *dashboard.GetRevenueSeriesUseCase,
	recentTransactionsUseCase *dashboard.GetRecentTransactionsUseCase,
) *DashboardController {
	return &DashboardController{
		metricsUseCase:            metricsUseCase,
		revenueSeriesUseCase:      revenueSeriesUseCase,
		recentTransactionsUseCase: recentTransactionsUseCase,
	}
}

// GetMetrics handles GET /dashboard/metrics requests.
func (d *DashboardController) GetMetrics(ctx *gin.Context) {
	output, err := d.metricsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard metrics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMetricsResponse(output))
}

// GetRevenueSeries handles GET /dashboard/revenue-series requests.
// The optional "days" query parameter sets the window size.
func (d *DashboardController) GetRevenueSeries(ctx *gin.Context) {
	days := defaultSeriesDays
	if daysStr := ctx.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid days parameter",
				Code:  string(domainerror.ErrCodeInvalidDayCount),
			})
			return
		}
		days = parsed
	}

	output, err := d.revenueSeriesUseCase.Execute(ctx.Request.Context(), dashboard.GetRevenueSeriesInput{
		Days: days,
	})
	if err != nil {
		d.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRevenueSeriesResponse(output))
}

// GetRecentTransactions handles GET /dashboard/recent-transactions requests.
// The optional "limit" query parameter caps the feed length.
func (d *DashboardController) GetRecentTransactions(ctx *gin.Context) {
	limit := defaultTransactionLimit
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid limit parameter",
				Code:  string(domainerror.ErrCodeInvalidLimit),
			})
			return
		}
		limit = parsed
	}

	output, err := d.recentTransactionsUseCase.Execute(ctx.Request.Context(), dashboard.GetRecentTransactionsInput{
		Limit: limit,
	})
	if err != nil {
		d.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecentTransactionsResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (d *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
