// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gestao/backend/internal/application/usecase/sale"
	domainerror "github.com/gestao/backend/internal/domain/error"
	"github.com/gestao/backend/internal/integration/entrypoint/dto"
	"github.com/gestao/backend/internal/integration/entrypoint/middleware"
)

// SaleController handles sale endpoints.
type SaleController struct {
	listUseCase   *sale.ListSalesUseCase
	createUseCase *sale.CreateSaleUseCase
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	listUseCase *sale.ListSalesUseCase,
	createUseCase *sale.CreateSaleUseCase,
) *SaleController {
	return &SaleController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /sales requests. Sales are returned newest first.
func (s *SaleController) List(ctx *gin.Context) {
	output, err := s.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve sales",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(output.Sales))
}

// Create handles POST /sales requests. Stock is validated for every line
// before any decrement, so an oversell leaves the inventory untouched.
func (s *SaleController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptySale),
		})
		return
	}

	items := make([]sale.SaleItemInput, len(req.Items))
	for i, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid product ID format",
			})
			return
		}
		items[i] = sale.SaleItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
		}
	}

	output, err := s.createUseCase.Execute(ctx.Request.Context(), sale.CreateSaleInput{
		Items:    items,
		UserID:   userID,
		SaleDate: req.SaleDate,
	})
	if err != nil {
		s.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(output.Sale))
}

// handleSaleError handles sale errors and returns appropriate HTTP responses.
func (s *SaleController) handleSaleError(ctx *gin.Context, err error) {
	var saleErr *domainerror.SaleError
	if errors.As(err, &saleErr) {
		statusCode := s.getStatusCodeForSaleError(saleErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: saleErr.Message,
			Code:  string(saleErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSaleError maps sale error codes to HTTP status codes.
func (s *SaleController) getStatusCodeForSaleError(code domainerror.SaleErrorCode) int {
	switch code {
	case domainerror.ErrCodeSaleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmptySale,
		domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeSaleProductGone:
		return http.StatusBadRequest
	case domainerror.ErrCodeInsufficientStock:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
