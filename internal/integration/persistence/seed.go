// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gestao/backend/internal/application/adapter"
	"github.com/gestao/backend/internal/domain/entity"
)

// Seeder populates a fresh installation with its default records: the five
// default categories and a single administrator user. Running it against an
// already-seeded database is a no-op.
type Seeder struct {
	userRepo     adapter.UserRepository
	categoryRepo adapter.CategoryRepository
	adminEmail   string
	adminName    string
}

// NewSeeder creates a new Seeder instance.
func NewSeeder(userRepo adapter.UserRepository, categoryRepo adapter.CategoryRepository, adminEmail, adminName string) *Seeder {
	return &Seeder{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		adminEmail:   adminEmail,
		adminName:    adminName,
	}
}

// Run seeds default data where the corresponding collection is empty.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count == 0 {
		for _, name := range entity.DefaultCategoryNames {
			if err := s.categoryRepo.Create(ctx, entity.NewCategory(name)); err != nil {
				return fmt.Errorf("failed to seed category %q: %w", name, err)
			}
		}
		slog.Info("Seeded default categories", "count", len(entity.DefaultCategoryNames))
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, s.adminEmail)
	if err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if !exists {
		users, err := s.userRepo.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		if len(users) == 0 {
			admin := entity.NewUser(s.adminEmail, s.adminName, entity.RoleAdmin)
			if err := s.userRepo.Create(ctx, admin); err != nil {
				return fmt.Errorf("failed to seed admin user: %w", err)
			}
			slog.Info("Seeded default administrator", "email", s.adminEmail)
		}
	}

	return nil
}
