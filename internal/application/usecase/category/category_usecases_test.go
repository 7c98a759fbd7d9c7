// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/gestao/backend/internal/domain/entity"
	domainerror "github.com/gestao/backend/internal/domain/error"
)

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

func TestCreateCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a category with a trimmed name", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewCreateCategoryUseCase(repo)

		output, err := uc.Execute(ctx, CreateCategoryInput{Name: "  Papelaria  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name != "Papelaria" {
			t.Errorf("expected trimmed name, got %q", output.Category.Name)
		}
		if len(repo.categories) != 1 {
			t.Errorf("expected category to be persisted")
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&fakeCategoryRepo{})

		_, err := uc.Execute(ctx, CreateCategoryInput{Name: "   "})
		if !errors.Is(err, domainerror.ErrCategoryNameRequired) {
			t.Fatalf("expected ErrCategoryNameRequired, got %v", err)
		}
	})

	t.Run("rejects overlong name", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&fakeCategoryRepo{})

		_, err := uc.Execute(ctx, CreateCategoryInput{Name: strings.Repeat("a", 51)})
		if !errors.Is(err, domainerror.ErrCategoryNameTooLong) {
			t.Fatalf("expected ErrCategoryNameTooLong, got %v", err)
		}
	})
}

func TestListCategoriesUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns categories in insertion order", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		for _, name := range entity.DefaultCategoryNames {
			repo.categories = append(repo.categories, entity.NewCategory(name))
		}
		uc := NewListCategoriesUseCase(repo)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != len(entity.DefaultCategoryNames) {
			t.Fatalf("expected %d categories, got %d", len(entity.DefaultCategoryNames), len(output.Categories))
		}
		for i, name := range entity.DefaultCategoryNames {
			if output.Categories[i].Name != name {
				t.Errorf("expected %q at index %d, got %q", name, i, output.Categories[i].Name)
			}
		}
	})
}
