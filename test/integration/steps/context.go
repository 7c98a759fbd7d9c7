// Package steps contains the Godog step definitions and test bootstrap.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cucumber/godog"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gestao/backend/internal/application/usecase/auth"
	"github.com/gestao/backend/internal/application/usecase/category"
	"github.com/gestao/backend/internal/application/usecase/dashboard"
	"github.com/gestao/backend/internal/application/usecase/product"
	"github.com/gestao/backend/internal/application/usecase/purchase"
	"github.com/gestao/backend/internal/application/usecase/sale"
	"github.com/gestao/backend/internal/infra/server/router"
	"github.com/gestao/backend/internal/integration/adapters"
	"github.com/gestao/backend/internal/integration/entrypoint/controller"
	"github.com/gestao/backend/internal/integration/entrypoint/middleware"
	"github.com/gestao/backend/internal/integration/persistence"
	"github.com/gestao/backend/internal/integration/persistence/model"
	"github.com/gestao/backend/internal/integration/session"
)

// adminEmail is the seeded administrator used by the scenarios.
const adminEmail = "admin@sistema.com"

// TestWorld holds the state shared by all steps of one scenario.
type TestWorld struct {
	server   *httptest.Server
	client   *http.Client
	token    string
	lastResp *http.Response
	lastBody []byte
	vars     map[string]string

	db        *gorm.DB
	miniRedis *miniredis.Miniredis
}

// newTestWorld boots a complete in-process API: in-memory SQLite, embedded
// Redis, seeded data, and the full router.
func newTestWorld() (*TestWorld, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open test database: %w", err)
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
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	mr, err := miniredis.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start embedded redis: %w", err)
	}
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	productRepo := persistence.NewProductRepository(db)
	saleRepo := persistence.NewSaleRepository(db)
	purchaseRepo := persistence.NewPurchaseRepository(db)
	alertQueue := persistence.NewAlertQueueRepository(db)

	seeder := persistence.NewSeeder(userRepo, categoryRepo, adminEmail, "Administrador")
	if err := seeder.Run(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed test data: %w", err)
	}

	tokenService := adapters.NewTokenService("integration-test-secret", time.Hour)
	sessionStore := session.NewRedisStore(redisClient)

	r := router.NewRouter(
		controller.NewHealthController(func() bool { return true }),
		controller.NewAuthController(
			auth.NewLoginUserUseCase(userRepo, sessionStore, tokenService),
			auth.NewLogoutUserUseCase(sessionStore),
			auth.NewRegisterUserUseCase(userRepo, sessionStore, tokenService),
		),
		controller.NewCategoryController(
			category.NewListCategoriesUseCase(categoryRepo),
			category.NewCreateCategoryUseCase(categoryRepo),
		),
		controller.NewProductController(
			product.NewListProductsUseCase(productRepo),
			product.NewCreateProductUseCase(productRepo, categoryRepo),
			product.NewUpdateProductUseCase(productRepo),
			product.NewDeleteProductUseCase(productRepo),
			product.NewAdjustStockUseCase(productRepo),
		),
		controller.NewSaleController(
			sale.NewListSalesUseCase(saleRepo),
			sale.NewCreateSaleUseCase(saleRepo, productRepo, userRepo, alertQueue),
		),
		controller.NewPurchaseController(
			purchase.NewListPurchasesUseCase(purchaseRepo),
			purchase.NewCreatePurchaseUseCase(purchaseRepo, productRepo, userRepo),
		),
		controller.NewDashboardController(
			dashboard.NewGetMetricsUseCase(saleRepo, productRepo),
			dashboard.NewGetRevenueSeriesUseCase(saleRepo),
			dashboard.NewGetRecentTransactionsUseCase(saleRepo, purchaseRepo),
		),
		middleware.NewRateLimiter(5, time.Minute),
		middleware.NewAuthMiddleware(tokenService),
	)
	engine := r.Setup("test")

	return &TestWorld{
		server:    httptest.NewServer(engine),
		client:    &http.Client{Timeout: 10 * time.Second},
		vars:      make(map[string]string),
		db:        db,
		miniRedis: mr,
	}, nil
}

// Close tears down the in-process server and its backing stores.
func (w *TestWorld) Close() {
	if w.server != nil {
		w.server.Close()
	}
	if w.miniRedis != nil {
		w.miniRedis.Close()
	}
}

// InitializeTestSuite wires suite-level hooks.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	// Each scenario boots its own world; nothing suite-wide to set up.
}

// InitializeScenario wires per-scenario hooks and steps.
func InitializeScenario(ctx *godog.ScenarioContext) {
	world := &TestWorld{}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		fresh, err := newTestWorld()
		if err != nil {
			return c, err
		}
		*world = *fresh
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		world.Close()
		return c, nil
	})

	registerAPISteps(ctx, world)
	registerResponseSteps(ctx, world)
}
