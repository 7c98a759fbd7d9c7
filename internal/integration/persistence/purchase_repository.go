// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/gestao/backend/internal/application/adapter"
	"github.com/gestao/backend/internal/domain/entity"
	"github.com/gestao/backend/internal/integration/persistence/model"
)

// purchaseRepository implements the adapter.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository instance.
func NewPurchaseRepository(db *gorm.DB) adapter.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// Create creates a new purchase and its line items.
func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseModel := model.PurchaseFromEntity(purchase)
	result := r.db.WithContext(ctx).Create(purchaseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves all purchases with their items, newest first.
func (r *purchaseRepository) FindAll(ctx context.Context) ([]*entity.Purchase, error) {
	var purchaseModels []model.PurchaseModel
	result := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Order("created_at DESC").
		Find(&purchaseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	purchases := make([]*entity.Purchase, len(purchaseModels))
	for i, pm := range purchaseModels {
		purchases[i] = pm.ToEntity()
	}
	return purchases, nil
}
