// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gestao/backend/internal/application/usecase/product"
	domainerror "github.com/gestao/backend/internal/domain/error"
	"github.com/gestao/backend/internal/integration/entrypoint/dto"
)

// ProductController handles product endpoints.
type ProductController struct {
	listUseCase        *product.ListProductsUseCase
	createUseCase      *product.CreateProductUseCase
	updateUseCase      *product.UpdateProductUseCase
	deleteUseCase      *product.DeleteProductUseCase
	adjustStockUseCase *product.AdjustStockUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	listUseCase *product.ListProductsUseCase,
	createUseCase *product.CreateProductUseCase,
	updateUseCase *product.UpdateProductUseCase,
	deleteUseCase *product.DeleteProductUseCase,
	adjustStockUseCase *product.AdjustStockUseCase,
) *ProductController {
	return &ProductController{
		listUseCase:        listUseCase,
		createUseCase:      createUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		adjustStockUseCase: adjustStockUseCase,
	}
}

// List handles GET /products requests.
func (p *ProductController) List(ctx *gin.Context) {
	output, err := p.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve products",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(output.Products))
}

// Create handles POST /products requests.
func (p *ProductController) Create(ctx *gin.Context) {
	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeProductNameRequired),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	output, err := p.createUseCase.Execute(ctx.Request.Context(), product.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		CostPrice:   req.CostPrice,
		SalePrice:   req.SalePrice,
		Quantity:    req.Quantity,
		MinStock:    req.MinStock,
		CategoryID:  categoryID,
	})
	if err != nil {
		p.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(output.Product))
}

// Update handles PATCH /products/:id requests.
func (p *ProductController) Update(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := product.UpdateProductInput{
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
		CostPrice:   req.CostPrice,
		SalePrice:   req.SalePrice,
		Quantity:    req.Quantity,
		MinStock:    req.MinStock,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := p.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		p.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// Delete handles DELETE /products/:id requests.
func (p *ProductController) Delete(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	if _, err := p.deleteUseCase.Execute(ctx.Request.Context(), product.DeleteProductInput{
		ProductID: productID,
	}); err != nil {
		p.handleProductError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AdjustStock handles POST /products/:id/adjust-stock requests.
func (p *ProductController) AdjustStock(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID format",
		})
		return
	}

	var req dto.AdjustStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := p.adjustStockUseCase.Execute(ctx.Request.Context(), product.AdjustStockInput{
		ProductID: productID,
		Delta:     req.Delta,
	})
	if err != nil {
		p.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// handleProductError handles product errors and returns appropriate HTTP responses.
func (p *ProductController) handleProductError(ctx *gin.Context, err error) {
	var prodErr *domainerror.ProductError
	if errors.As(err, &prodErr) {
		statusCode := p.getStatusCodeForProductError(prodErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: prodErr.Message,
			Code:  string(prodErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := http.StatusInternalServerError
		if catErr.Code == domainerror.ErrCodeCategoryNotFound {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForProductError maps product error codes to HTTP status codes.
func (p *ProductController) getStatusCodeForProductError(code domainerror.ProductErrorCode) int {
	switch code {
	case domainerror.ErrCodeProductNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeProductNameRequired,
		domainerror.ErrCodeNegativePrice,
		domainerror.ErrCodeNegativeMinStock:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
