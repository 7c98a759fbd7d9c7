// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gestao/backend/internal/application/usecase/purchase"
	domainerror "github.com/gestao/backend/internal/domain/error"
	"github.com/gestao/backend/internal/integration/entrypoint/dto"
	"github.com/gestao/backend/internal/integration/entrypoint/middleware"
)

// PurchaseController handles purchase endpoints.
type PurchaseController struct {
	listUseCase   *purchase.ListPurchasesUseCase
	createUseCase *purchase.CreatePurchaseUseCase
}

// NewPurchaseController creates a new purchase controller instance.
func NewPurchaseController(
	listUseCase *purchase.ListPurchasesUseCase,
	createUseCase *purchase.CreatePurchaseUseCase,
) *PurchaseController {
	return &PurchaseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /purchases requests. Purchases are returned newest first.
func (p *PurchaseController) List(ctx *gin.Context) {
	output, err := p.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve purchases",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(output.Purchases))
}

// Create handles POST /purchases requests.
func (p *PurchaseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreatePurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyPurchase),
		})
		return
	}

	items := make([]purchase.PurchaseItemInput, len(req.Items))
	for i, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid product ID format",
			})
			return
		}
		items[i] = purchase.PurchaseItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		}
	}

	output, err := p.createUseCase.Execute(ctx.Request.Context(), purchase.CreatePurchaseInput{
		Items:    items,
		Supplier: req.Supplier,
		UserID:   userID,
	})
	if err != nil {
		p.handlePurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPurchaseResponse(output.Purchase))
}

// handlePurchaseError handles purchase errors and returns appropriate HTTP responses.
func (p *PurchaseController) handlePurchaseError(ctx *gin.Context, err error) {
	var purErr *domainerror.PurchaseError
	if errors.As(err, &purErr) {
		statusCode := p.getStatusCodeForPurchaseError(purErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: purErr.Message,
			Code:  string(purErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPurchaseError maps purchase error codes to HTTP status codes.
func (p *PurchaseController) getStatusCodeForPurchaseError(code domainerror.PurchaseErrorCode) int {
	switch code {
	case domainerror.ErrCodePurchaseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmptyPurchase,
		domainerror.ErrCodeSupplierRequired,
		domainerror.ErrCodePurchaseQuantity,
		domainerror.ErrCodePurchaseProductGone:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
