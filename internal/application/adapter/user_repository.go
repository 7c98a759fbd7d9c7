// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestao/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, matched case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks case-insensitively whether a user with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindAll retrieves all users in insertion order.
	FindAll(ctx context.Context) ([]*entity.User, error)
}
