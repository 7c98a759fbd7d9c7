// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/gestao/backend/internal/domain/entity"
)

// SessionStore holds the single current-session marker, independent of the
// users collection. At most one user is logged in at a time.
type SessionStore interface {
	// Set stores the given user as the current session.
	Set(ctx context.Context, user *entity.User) error

	// Get returns the current session user, or ErrNoActiveSession when the
	// slot is empty.
	Get(ctx context.Context) (*entity.User, error)

	// Clear empties the session slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
