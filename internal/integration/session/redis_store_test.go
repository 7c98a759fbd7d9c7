// Package session implements the current-session marker store on Redis.
package session

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/gestao/backend/internal/domain/entity"
	domainerror "github.com/gestao/backend/internal/domain/error"
)

func newTestStore(t *testing.T) *redisStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &redisStore{client: client}
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty slot returns no active session", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.Get(ctx)
		if !errors.Is(err, domainerror.ErrNoActiveSession) {
			t.Fatalf("expected ErrNoActiveSession, got %v", err)
		}
	})

	t.Run("set then get round-trips the user", func(t *testing.T) {
		store := newTestStore(t)
		admin := entity.NewUser("admin@sistema.com", "Administrador", entity.RoleAdmin)

		if err := store.Set(ctx, admin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := store.Get(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != admin.ID || got.Email != admin.Email || got.Role != entity.RoleAdmin {
			t.Errorf("unexpected session user: %+v", got)
		}
	})

	t.Run("a new login replaces the previous session", func(t *testing.T) {
		store := newTestStore(t)
		first := entity.NewUser("first@sistema.com", "Primeiro", entity.RoleAdmin)
		second := entity.NewUser("second@sistema.com", "Segundo", entity.RoleAdmin)

		if err := store.Set(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Set(ctx, second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := store.Get(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != second.ID {
			t.Errorf("expected the second user, got %v", got.Email)
		}
	})

	t.Run("clear empties the slot and is idempotent", func(t *testing.T) {
		store := newTestStore(t)
		admin := entity.NewUser("admin@sistema.com", "Administrador", entity.RoleAdmin)

		if err := store.Set(ctx, admin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := store.Get(ctx); !errors.Is(err, domainerror.ErrNoActiveSession) {
			t.Fatalf("expected ErrNoActiveSession after clear, got %v", err)
		}

		// Clearing an already empty slot must not fail.
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("unexpected error clearing empty slot: %v", err)
		}
	})
}
