// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/gestao/backend/internal/application/adapter"
)

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Success bool
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	sessionStore adapter.SessionStore
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(sessionStore adapter.SessionStore) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		sessionStore: sessionStore,
	}
}

// Execute clears the current-session marker. Logging out with no active
// session is a no-op, not an error.
func (uc *LogoutUserUseCase) Execute(ctx context.Context) (*LogoutUserOutput, error) {
	if err := uc.sessionStore.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear session marker: %w", err)
	}

	return &LogoutUserOutput{Success: true}, nil
}
