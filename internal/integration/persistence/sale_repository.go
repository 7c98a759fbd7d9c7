// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gestao/backend/internal/application/adapter"
	"github.com/gestao/backend/internal/domain/entity"
	"github.com/gestao/backend/internal/integration/persistence/model"
)

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create creates a new sale and its line items.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	result := r.db.WithContext(ctx).Create(saleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// orderedItems preloads line items in their original order.
func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindAll retrieves all sales with their items, newest first.
func (r *saleRepository) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Order("created_at DESC").
		Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sales := make([]*entity.Sale, len(saleModels))
	for i, sm := range saleModels {
		sales[i] = sm.ToEntity()
	}
	return sales, nil
}

// FindCreatedSince retrieves sales created at or after the given instant.
func (r *saleRepository) FindCreatedSince(ctx context.Context, since time.Time) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sales := make([]*entity.Sale, len(saleModels))
	for i, sm := range saleModels {
		sales[i] = sm.ToEntity()
	}
	return sales, nil
}
