// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role assigned to a user.
type UserRole string

const (
	// RoleAdmin is the only role in the system; every registered user holds it.
	RoleAdmin UserRole = "admin"
)

// User represents an operator of the management system.
// Users are created at registration or first-run seeding and never mutated.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      UserRole
	CreatedAt time.Time
}

// NewUser creates a new User entity.
func NewUser(email, name string, role UserRole) *User {
	return &User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
}
