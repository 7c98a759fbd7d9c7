// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gestao/backend/internal/application/adapter"
	"github.com/gestao/backend/internal/domain/entity"
	domainerror "github.com/gestao/backend/internal/domain/error"
	"github.com/gestao/backend/internal/integration/persistence/model"
)

// newTestDB opens an isolated in-memory database with all tables migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.SaleModel{},
		&model.SaleItemModel{},
		&model.PurchaseModel{},
		&model.PurchaseItemModel{},
		&model.AlertJobModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestProduct(name string, quantity, minStock int) *entity.Product {
	return entity.NewProduct(
		name,
		"",
		decimal.RequireFromString("10.00"),
		decimal.RequireFromString("25.00"),
		quantity,
		minStock,
		uuid.New(),
	)
}

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	categoryRepo := NewCategoryRepository(db)
	seeder := NewSeeder(userRepo, categoryRepo, "admin@sistema.com", "Administrador")

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("seeds the five default categories in order", func(t *testing.T) {
		categories, err := categoryRepo.FindAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != len(entity.DefaultCategoryNames) {
			t.Fatalf("expected %d categories, got %d", len(entity.DefaultCategoryNames), len(categories))
		}
		for i, name := range entity.DefaultCategoryNames {
			if categories[i].Name != name {
				t.Errorf("expected %q at index %d, got %q", name, i, categories[i].Name)
			}
		}
	})

	t.Run("seeds a single administrator", func(t *testing.T) {
		users, err := userRepo.FindAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 1 {
			t.Fatalf("expected 1 user, got %d", len(users))
		}
		admin := users[0]
		if admin.Email != "admin@sistema.com" || admin.Name != "Administrador" || admin.Role != entity.RoleAdmin {
			t.Errorf("unexpected admin user: %+v", admin)
		}
	})

	t.Run("running again is a no-op", func(t *testing.T) {
		if err := seeder.Run(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		count, err := categoryRepo.Count(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != int64(len(entity.DefaultCategoryNames)) {
			t.Errorf("expected category count unchanged, got %d", count)
		}

		users, _ := userRepo.FindAll(ctx)
		if len(users) != 1 {
			t.Errorf("expected user count unchanged, got %d", len(users))
		}
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	admin := entity.NewUser("admin@sistema.com", "Administrador", entity.RoleAdmin)
	if err := repo.Create(ctx, admin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("finds by email case-insensitively", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "ADMIN@Sistema.COM")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != admin.ID {
			t.Errorf("expected admin, got %v", found.ID)
		}

		exists, err := repo.ExistsByEmail(ctx, "Admin@sistema.com")
		if err != nil || !exists {
			t.Errorf("expected email to exist, got %v / %v", exists, err)
		}
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@sistema.com")
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewProductRepository(db)

	t.Run("round-trips a product", func(t *testing.T) {
		product := newTestProduct("Notebook", 5, 1)
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, product.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Notebook" || found.Quantity != 5 || found.MinStock != 1 {
			t.Errorf("unexpected product: %+v", found)
		}
		if !found.CostPrice.Equal(product.CostPrice) || !found.SalePrice.Equal(product.SalePrice) {
			t.Errorf("prices did not survive the round trip: %+v", found)
		}
	})

	t.Run("counts products at or below the threshold", func(t *testing.T) {
		if err := repo.Create(ctx, newTestProduct("Mouse", 2, 2)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Create(ctx, newTestProduct("Teclado", 0, 3)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		count, err := repo.CountLowStock(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Mouse (2 <= 2) and Teclado (0 <= 3); Notebook (5 > 1) is fine.
		if count != 2 {
			t.Errorf("expected 2 low-stock products, got %d", count)
		}
	})

	t.Run("deleting a missing product returns not found", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}

func TestSaleRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSaleRepository(db)
	userID := uuid.New()

	makeSale := func(createdAt time.Time, items ...entity.SaleItem) *entity.Sale {
		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.Total)
		}
		return &entity.Sale{
			ID:        uuid.New(),
			Items:     items,
			Total:     total,
			UserID:    userID,
			UserName:  "Administrador",
			SaleDate:  createdAt,
			CreatedAt: createdAt,
		}
	}

	item := func(name string, qty int, price string) entity.SaleItem {
		p := decimal.RequireFromString(price)
		return entity.SaleItem{
			ProductID:   uuid.New(),
			ProductName: name,
			Quantity:    qty,
			UnitPrice:   p,
			UnitCost:    p.Div(decimal.NewFromInt(2)),
			Total:       p.Mul(decimal.NewFromInt(int64(qty))),
		}
	}

	now := time.Now().UTC()
	older := makeSale(now.Add(-48*time.Hour), item("Notebook", 1, "2500.00"))
	newer := makeSale(now, item("Mouse", 2, "50.00"), item("Teclado", 1, "150.00"))

	if err := repo.Create(ctx, older); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Create(ctx, newer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("lists newest first with items in line order", func(t *testing.T) {
		sales, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sales) != 2 {
			t.Fatalf("expected 2 sales, got %d", len(sales))
		}
		if sales[0].ID != newer.ID {
			t.Errorf("expected the newer sale first")
		}
		if len(sales[0].Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(sales[0].Items))
		}
		if sales[0].Items[0].ProductName != "Mouse" || sales[0].Items[1].ProductName != "Teclado" {
			t.Errorf("items came back out of order: %+v", sales[0].Items)
		}
	})

	t.Run("filters by creation instant", func(t *testing.T) {
		sales, err := repo.FindCreatedSince(ctx, now.Add(-time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sales) != 1 || sales[0].ID != newer.ID {
			t.Errorf("expected only the newer sale, got %d", len(sales))
		}
	})

	t.Run("preserves unit cost snapshots", func(t *testing.T) {
		sales, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := sales[1].Items[0]
		if !got.UnitCost.Equal(decimal.RequireFromString("1250.00")) {
			t.Errorf("expected unit cost 1250.00, got %s", got.UnitCost)
		}
	})
}

func TestAlertQueueRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	queue := NewAlertQueueRepository(db)

	newJob := func(name string, createdAt time.Time) *adapter.AlertJob {
		return &adapter.AlertJob{
			ID:          uuid.New(),
			ProductID:   uuid.New(),
			ProductName: name,
			Quantity:    1,
			MinStock:    3,
			Status:      adapter.AlertJobPending,
			CreatedAt:   createdAt,
		}
	}

	now := time.Now().UTC()
	first := newJob("Notebook", now.Add(-time.Minute))
	second := newJob("Mouse", now)

	if err := queue.Enqueue(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := queue.Enqueue(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("fetches pending jobs oldest first", func(t *testing.T) {
		jobs, err := queue.FetchPending(ctx, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 2 {
			t.Fatalf("expected 2 pending jobs, got %d", len(jobs))
		}
		if jobs[0].ID != first.ID {
			t.Errorf("expected the older job first")
		}
	})

	t.Run("sent jobs leave the pending queue", func(t *testing.T) {
		if err := queue.MarkSent(ctx, first.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		jobs, _ := queue.FetchPending(ctx, 10)
		if len(jobs) != 1 || jobs[0].ID != second.ID {
			t.Errorf("expected only the second job pending, got %d", len(jobs))
		}
	})

	t.Run("exhausted attempts move the job to failed", func(t *testing.T) {
		if err := queue.MarkFailed(ctx, second.ID, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		jobs, _ := queue.FetchPending(ctx, 10)
		if len(jobs) != 1 {
			t.Fatalf("expected job still pending after first failure, got %d", len(jobs))
		}

		if err := queue.MarkFailed(ctx, second.ID, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		jobs, _ = queue.FetchPending(ctx, 10)
		if len(jobs) != 0 {
			t.Errorf("expected no pending jobs after exhausting attempts, got %d", len(jobs))
		}
	})
}
