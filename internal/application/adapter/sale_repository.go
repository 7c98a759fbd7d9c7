// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/gestao/backend/internal/domain/entity"
)

// SaleRepository defines the interface for sale persistence operations.
type SaleRepository interface {
	// Create creates a new sale with its line items.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindAll retrieves all sales with their items, newest first.
	FindAll(ctx context.Context) ([]*entity.Sale, error)

	// FindCreatedSince retrieves sales whose creation timestamp is at or after
	// the given instant, with their items.
	FindCreatedSince(ctx context.Context, since time.Time) ([]*entity.Sale, error)
}
