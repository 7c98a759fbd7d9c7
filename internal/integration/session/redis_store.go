// Package session implements the current-session marker store on Redis.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gestao/backend/internal/application/adapter"
	"github.com/gestao/backend/internal/domain/entity"
	domainerror "github.com/gestao/backend/internal/domain/error"
)

// sessionKey is the single Redis slot holding the current-session marker.
// It lives outside the users table on purpose: the marker is independent
// state, and at most one user is logged in at a time.
const sessionKey = "gestao:current_session"

// sessionRecord is the JSON shape persisted in the session slot.
type sessionRecord struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// redisStore implements the adapter.SessionStore interface.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed session store.
func NewRedisStore(client *redis.Client) adapter.SessionStore {
	return &redisStore{
		client: client,
	}
}

// Set stores the given user as the current session.
func (s *redisStore) Set(ctx context.Context, user *entity.User) error {
	record := sessionRecord{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session record: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write session marker: %w", err)
	}
	return nil
}

// Get returns the current session user, or ErrNoActiveSession when the slot
// is empty.
func (s *redisStore) Get(ctx context.Context) (*entity.User, error) {
	payload, err := s.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrNoActiveSession
		}
		return nil, fmt.Errorf("failed to read session marker: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session record: %w", err)
	}

	return &entity.User{
		ID:        record.ID,
		Email:     record.Email,
		Name:      record.Name,
		Role:      record.Role,
		CreatedAt: record.CreatedAt,
	}, nil
}

// Clear empties the session slot. Clearing an empty slot is not an error.
func (s *redisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("failed to clear session marker: %w", err)
	}
	return nil
}
