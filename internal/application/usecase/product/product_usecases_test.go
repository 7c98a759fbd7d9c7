// Package product contains product-related use cases.
package product

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestao/backend/internal/domain/entity"
	domainerror "github.com/gestao/backend/internal/domain/error"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		copied := *p
		repo.products[p.ID] = &copied
	}
	return repo
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domainerror.ErrProductNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) FindAll(ctx context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return domainerror.ErrProductNotFound
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.products[id]; !ok {
		return domainerror.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	for _, p := range r.products {
		if p.IsLowStock() {
			count++
		}
	}
	return count, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

func testProduct(quantity, minStock int) *entity.Product {
	return entity.NewProduct(
		"Notebook",
		"",
		decimal.RequireFromString("1500.00"),
		decimal.RequireFromString("2500.00"),
		quantity,
		minStock,
		uuid.New(),
	)
}

func TestCreateProductUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a product in an existing category", func(t *testing.T) {
		cat := entity.NewCategory("Eletrônicos")
		uc := NewCreateProductUseCase(newFakeProductRepo(), newFakeCategoryRepo(cat))

		output, err := uc.Execute(ctx, CreateProductInput{
			Name:       "Notebook",
			CostPrice:  decimal.RequireFromString("1500.00"),
			SalePrice:  decimal.RequireFromString("2500.00"),
			Quantity:   5,
			MinStock:   1,
			CategoryID: cat.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Product.Name != "Notebook" || output.Product.Quantity != 5 {
			t.Errorf("unexpected product: %+v", output.Product)
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		cat := entity.NewCategory("Eletrônicos")
		uc := NewCreateProductUseCase(newFakeProductRepo(), newFakeCategoryRepo(cat))

		_, err := uc.Execute(ctx, CreateProductInput{
			Name:       "   ",
			CategoryID: cat.ID,
		})
		if !errors.Is(err, domainerror.ErrProductNameRequired) {
			t.Fatalf("expected ErrProductNameRequired, got %v", err)
		}
	})

	t.Run("rejects negative price", func(t *testing.T) {
		cat := entity.NewCategory("Eletrônicos")
		uc := NewCreateProductUseCase(newFakeProductRepo(), newFakeCategoryRepo(cat))

		_, err := uc.Execute(ctx, CreateProductInput{
			Name:       "Notebook",
			CostPrice:  decimal.RequireFromString("-1.00"),
			CategoryID: cat.ID,
		})
		if !errors.Is(err, domainerror.ErrNegativePrice) {
			t.Fatalf("expected ErrNegativePrice, got %v", err)
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		uc := NewCreateProductUseCase(newFakeProductRepo(), newFakeCategoryRepo())

		_, err := uc.Execute(ctx, CreateProductInput{
			Name:       "Notebook",
			CategoryID: uuid.New(),
		})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestUpdateProductUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("merges only the given fields", func(t *testing.T) {
		product := testProduct(5, 1)
		repo := newFakeProductRepo(product)
		uc := NewUpdateProductUseCase(repo)

		newName := "Notebook Pro"
		newPrice := decimal.RequireFromString("2700.00")
		output, err := uc.Execute(ctx, UpdateProductInput{
			ProductID: product.ID,
			Name:      &newName,
			SalePrice: &newPrice,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated := output.Product
		if updated.Name != "Notebook Pro" {
			t.Errorf("expected updated name, got %q", updated.Name)
		}
		if !updated.SalePrice.Equal(newPrice) {
			t.Errorf("expected updated sale price, got %s", updated.SalePrice)
		}
		if updated.Quantity != 5 {
			t.Errorf("expected untouched quantity 5, got %d", updated.Quantity)
		}
		if !updated.CostPrice.Equal(product.CostPrice) {
			t.Errorf("expected untouched cost price, got %s", updated.CostPrice)
		}
		if !updated.UpdatedAt.After(product.UpdatedAt) {
			t.Errorf("expected refreshed UpdatedAt")
		}
	})

	t.Run("returns not found for unknown product", func(t *testing.T) {
		uc := NewUpdateProductUseCase(newFakeProductRepo())

		_, err := uc.Execute(ctx, UpdateProductInput{ProductID: uuid.New()})
		if !errors.Is(err, domainerror.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}

func TestDeleteProductUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing product", func(t *testing.T) {
		product := testProduct(5, 1)
		repo := newFakeProductRepo(product)
		uc := NewDeleteProductUseCase(repo)

		if _, err := uc.Execute(ctx, DeleteProductInput{ProductID: product.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(ctx, product.ID); !errors.Is(err, domainerror.ErrProductNotFound) {
			t.Errorf("expected product to be gone")
		}
	})

	t.Run("returns not found for unknown product", func(t *testing.T) {
		uc := NewDeleteProductUseCase(newFakeProductRepo())

		_, err := uc.Execute(ctx, DeleteProductInput{ProductID: uuid.New()})
		if !errors.Is(err, domainerror.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}

		var prodErr *domainerror.ProductError
		if !errors.As(err, &prodErr) || prodErr.Code != domainerror.ErrCodeProductNotFound {
			t.Errorf("expected coded not-found error, got %v", err)
		}
	})
}

func TestAdjustStockUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("adjusting by +d then -d restores the original quantity", func(t *testing.T) {
		product := testProduct(5, 1)
		repo := newFakeProductRepo(product)
		uc := NewAdjustStockUseCase(repo)

		if _, err := uc.Execute(ctx, AdjustStockInput{ProductID: product.ID, Delta: 7}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored, _ := repo.FindByID(ctx, product.ID)
		if stored.Quantity != 12 {
			t.Fatalf("expected quantity 12, got %d", stored.Quantity)
		}

		if _, err := uc.Execute(ctx, AdjustStockInput{ProductID: product.ID, Delta: -7}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored, _ = repo.FindByID(ctx, product.ID)
		if stored.Quantity != 5 {
			t.Errorf("expected restored quantity 5, got %d", stored.Quantity)
		}
	})

	t.Run("returns not found for unknown product", func(t *testing.T) {
		uc := NewAdjustStockUseCase(newFakeProductRepo())

		_, err := uc.Execute(ctx, AdjustStockInput{ProductID: uuid.New(), Delta: 1})
		if !errors.Is(err, domainerror.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}
