// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// Category groups products for listing and filtering. Categories are created
// explicitly or seeded on first run and are never updated or deleted.
type Category struct {
	ID   uuid.UUID
	Name string
}

// DefaultCategoryNames are the categories seeded on a fresh installation.
var DefaultCategoryNames = []string{
	"Eletrônicos",
	"Roupas",
	"Alimentos",
	"Bebidas",
	"Outros",
}

// NewCategory creates a new Category entity.
func NewCategory(name string) *Category {
	return &Category{
		ID:   uuid.New(),
		Name: name,
	}
}
