// Package purchase contains purchase-related use cases.
package purchase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestao/backend/internal/domain/entity"
	domainerror "github.com/gestao/backend/internal/domain/error"
)

type fakePurchaseRepo struct {
	purchases []*entity.Purchase
}

func (r *fakePurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	r.purchases = append(r.purchases, purchase)
	return nil
}

func (r *fakePurchaseRepo) FindAll(ctx context.Context) ([]*entity.Purchase, error) {
	return r.purchases, nil
}

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
	r.products[product.ID] = product
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

type fakeUserRepo struct {
	user *entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, domainerror.ErrInvalidCredentials
	}
	return r.user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.user == nil {
		return nil, domainerror.ErrInvalidCredentials
	}
	return r.user, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.user != nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	if r.user == nil {
		return nil, nil
	}
	return []*entity.User{r.user}, nil
}

func testProduct(name string, cost string, quantity int) *entity.Product {
	return entity.NewProduct(
		name,
		"",
		decimal.RequireFromString(cost),
		decimal.RequireFromString(cost).Mul(decimal.NewFromInt(2)),
		quantity,
		1,
		uuid.New(),
	)
}

func TestCreatePurchaseUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	admin := entity.NewUser("admin@sistema.com", "Administrador", entity.RoleAdmin)

	t.Run("increments stock and records the purchase", func(t *testing.T) {
		product := testProduct("Notebook", "1500.00", 3)
		productRepo := newFakeProductRepo(product)
		purchaseRepo := &fakePurchaseRepo{}
		uc := NewCreatePurchaseUseCase(purchaseRepo, productRepo, &fakeUserRepo{user: admin})

		output, err := uc.Execute(ctx, CreatePurchaseInput{
			Items:    []PurchaseItemInput{{ProductID: product.ID, Quantity: 4}},
			Supplier: "Distribuidora Alfa",
			UserID:   admin.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, _ := productRepo.FindByID(ctx, product.ID)
		if stored.Quantity != 7 {
			t.Errorf("expected quantity 7 after buying 4 on top of 3, got %d", stored.Quantity)
		}

		purchase := output.Purchase
		if purchase.Supplier != "Distribuidora Alfa" {
			t.Errorf("unexpected supplier %q", purchase.Supplier)
		}
		if !purchase.Total.Equal(decimal.RequireFromString("6000.00")) {
			t.Errorf("expected total 6000.00, got %s", purchase.Total)
		}
		if len(purchaseRepo.purchases) != 1 {
			t.Errorf("expected purchase to be persisted")
		}
	})

	t.Run("uses the given unit cost over the product cost price", func(t *testing.T) {
		product := testProduct("Mouse", "20.00", 0)
		productRepo := newFakeProductRepo(product)
		uc := NewCreatePurchaseUseCase(&fakePurchaseRepo{}, productRepo, &fakeUserRepo{user: admin})

		paid := decimal.RequireFromString("18.50")
		output, err := uc.Execute(ctx, CreatePurchaseInput{
			Items:    []PurchaseItemInput{{ProductID: product.ID, Quantity: 10, UnitCost: &paid}},
			Supplier: "Distribuidora Beta",
			UserID:   admin.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		item := output.Purchase.Items[0]
		if !item.UnitCost.Equal(paid) {
			t.Errorf("expected unit cost 18.50, got %s", item.UnitCost)
		}
		if !output.Purchase.Total.Equal(decimal.RequireFromString("185.00")) {
			t.Errorf("expected total 185.00, got %s", output.Purchase.Total)
		}
	})

	t.Run("increments the aggregate of duplicate lines", func(t *testing.T) {
		product := testProduct("Cabo HDMI", "10.00", 3)
		productRepo := newFakeProductRepo(product)
		uc := NewCreatePurchaseUseCase(&fakePurchaseRepo{}, productRepo, &fakeUserRepo{user: admin})

		output, err := uc.Execute(ctx, CreatePurchaseInput{
			Items: []PurchaseItemInput{
				{ProductID: product.ID, Quantity: 2},
				{ProductID: product.ID, Quantity: 2},
			},
			Supplier: "Distribuidora Alfa",
			UserID:   admin.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, _ := productRepo.FindByID(ctx, product.ID)
		if stored.Quantity != 7 {
			t.Errorf("expected quantity 7 after receiving 2+2 on top of 3, got %d", stored.Quantity)
		}
		if len(output.Purchase.Items) != 2 {
			t.Errorf("expected both lines preserved on the purchase, got %d", len(output.Purchase.Items))
		}
		if !output.Purchase.Total.Equal(decimal.RequireFromString("40.00")) {
			t.Errorf("expected total 40.00, got %s", output.Purchase.Total)
		}
	})

	t.Run("rejects blank supplier", func(t *testing.T) {
		product := testProduct("Teclado", "80.00", 1)
		uc := NewCreatePurchaseUseCase(&fakePurchaseRepo{}, newFakeProductRepo(product), &fakeUserRepo{user: admin})

		_, err := uc.Execute(ctx, CreatePurchaseInput{
			Items:    []PurchaseItemInput{{ProductID: product.ID, Quantity: 1}},
			Supplier: "   ",
			UserID:   admin.ID,
		})
		if !errors.Is(err, domainerror.ErrSupplierRequired) {
			t.Fatalf("expected ErrSupplierRequired, got %v", err)
		}
	})

	t.Run("rejects empty purchase", func(t *testing.T) {
		uc := NewCreatePurchaseUseCase(&fakePurchaseRepo{}, newFakeProductRepo(), &fakeUserRepo{user: admin})

		_, err := uc.Execute(ctx, CreatePurchaseInput{
			Supplier: "Distribuidora Alfa",
			UserID:   admin.ID,
		})
		if !errors.Is(err, domainerror.ErrEmptyPurchase) {
			t.Fatalf("expected ErrEmptyPurchase, got %v", err)
		}
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		uc := NewCreatePurchaseUseCase(&fakePurchaseRepo{}, newFakeProductRepo(), &fakeUserRepo{user: admin})

		_, err := uc.Execute(ctx, CreatePurchaseInput{
			Items:    []PurchaseItemInput{{ProductID: uuid.New(), Quantity: 1}},
			Supplier: "Distribuidora Alfa",
			UserID:   admin.ID,
		})
		if !errors.Is(err, domainerror.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}
