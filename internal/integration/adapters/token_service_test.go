// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/gestao/backend/internal/domain/entity"
)

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	admin := entity.NewUser("admin@sistema.com", "Administrador", entity.RoleAdmin)

	t.Run("generated tokens validate and carry the claims", func(t *testing.T) {
		svc := NewTokenService("test-secret", time.Hour)

		token, err := svc.GenerateAccessToken(ctx, admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := svc.ValidateAccessToken(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != admin.ID {
			t.Errorf("expected user ID %v, got %v", admin.ID, claims.UserID)
		}
		if claims.Email != admin.Email {
			t.Errorf("expected email %q, got %q", admin.Email, claims.Email)
		}
		if claims.Role != entity.RoleAdmin {
			t.Errorf("expected admin role, got %q", claims.Role)
		}
		if !claims.ExpiresAt.After(time.Now()) {
			t.Errorf("expected a future expiry, got %v", claims.ExpiresAt)
		}
	})

	t.Run("rejects tokens signed with another secret", func(t *testing.T) {
		issuer := NewTokenService("secret-a", time.Hour)
		verifier := NewTokenService("secret-b", time.Hour)

		token, err := issuer.GenerateAccessToken(ctx, admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := verifier.ValidateAccessToken(ctx, token); err == nil {
			t.Fatal("expected validation to fail for a foreign signature")
		}
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		// Build directly; the constructor replaces non-positive expiries.
		svc := &tokenService{secret: []byte("test-secret"), expiry: -time.Minute}

		token, err := svc.GenerateAccessToken(ctx, admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := svc.ValidateAccessToken(ctx, token); err == nil {
			t.Fatal("expected validation to fail for an expired token")
		}
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		svc := NewTokenService("test-secret", time.Hour)

		if _, err := svc.ValidateAccessToken(ctx, "not-a-token"); err == nil {
			t.Fatal("expected validation to fail")
		}
	})
}
