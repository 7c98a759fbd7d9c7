// Package model defines database models for persistence layer.
package model

import (
	"github.com/google/uuid"

	"github.com/gestao/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(50);not null"`
	// CreatedAt preserves insertion order for listings; the entity itself
	// carries no timestamp.
	CreatedAt int64 `gorm:"autoCreateTime:nano;not null;index"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:   m.ID,
		Name: m.Name,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:   category.ID,
		Name: category.Name,
	}
}
