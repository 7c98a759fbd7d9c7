// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/gestao/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:   cat.ID.String(),
		Name: cat.Name,
	}
}

// ToCategoryListResponse converts a list of categories to CategoryListResponse.
func ToCategoryListResponse(cats []*entity.Category) CategoryListResponse {
	categories := make([]CategoryResponse, len(cats))
	for i, cat := range cats {
		categories[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{
		Categories: categories,
	}
}
