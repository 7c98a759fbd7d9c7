// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/gestao/backend/internal/domain/entity"
)

// PurchaseRepository defines the interface for purchase persistence operations.
type PurchaseRepository interface {
	// Create creates a new purchase with its line items.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// FindAll retrieves all purchases with their items, newest first.
	FindAll(ctx context.Context) ([]*entity.Purchase, error)
}
