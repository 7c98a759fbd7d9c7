// Package main is the entry point for the management API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/gestao/backend/config"
	"github.com/gestao/backend/internal/application/usecase/auth"
	"github.com/gestao/backend/internal/application/usecase/category"
	"github.com/gestao/backend/internal/application/usecase/dashboard"
	"github.com/gestao/backend/internal/application/usecase/product"
	"github.com/gestao/backend/internal/application/usecase/purchase"
	"github.com/gestao/backend/internal/application/usecase/sale"
	"github.com/gestao/backend/internal/infra/db"
	"github.com/gestao/backend/internal/infra/server/router"
	"github.com/gestao/backend/internal/integration/adapters"
	"github.com/gestao/backend/internal/integration/alert"
	"github.com/gestao/backend/internal/integration/entrypoint/controller"
	"github.com/gestao/backend/internal/integration/entrypoint/middleware"
	"github.com/gestao/backend/internal/integration/persistence"
	"github.com/gestao/backend/internal/integration/persistence/model"
	"github.com/gestao/backend/internal/integration/session"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting management API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.SaleModel{},
		&model.SaleItemModel{},
		&model.PurchaseModel{},
		&model.PurchaseItemModel{},
		&model.AlertJobModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis client for the session marker
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	productRepo := persistence.NewProductRepository(database.DB())
	saleRepo := persistence.NewSaleRepository(database.DB())
	purchaseRepo := persistence.NewPurchaseRepository(database.DB())
	alertQueue := persistence.NewAlertQueueRepository(database.DB())

	// Seed default categories and the administrator account on first run
	seeder := persistence.NewSeeder(userRepo, categoryRepo, cfg.Seed.AdminEmail, cfg.Seed.AdminName)
	if err := seeder.Run(context.Background()); err != nil {
		slog.Error("Failed to seed default data", "error", err)
		os.Exit(1)
	}

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	sessionStore := session.NewRedisStore(redisClient)

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(userRepo, sessionStore, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(sessionStore)
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, sessionStore, tokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)

	// Create product use cases
	listProductsUseCase := product.NewListProductsUseCase(productRepo)
	createProductUseCase := product.NewCreateProductUseCase(productRepo, categoryRepo)
	updateProductUseCase := product.NewUpdateProductUseCase(productRepo)
	deleteProductUseCase := product.NewDeleteProductUseCase(productRepo)
	adjustStockUseCase := product.NewAdjustStockUseCase(productRepo)

	// Create sale and purchase use cases
	listSalesUseCase := sale.NewListSalesUseCase(saleRepo)
	createSaleUseCase := sale.NewCreateSaleUseCase(saleRepo, productRepo, userRepo, alertQueue)
	listPurchasesUseCase := purchase.NewListPurchasesUseCase(purchaseRepo)
	createPurchaseUseCase := purchase.NewCreatePurchaseUseCase(purchaseRepo, productRepo, userRepo)

	// Create dashboard use cases
	metricsUseCase := dashboard.NewGetMetricsUseCase(saleRepo, productRepo)
	revenueSeriesUseCase := dashboard.NewGetRevenueSeriesUseCase(saleRepo)
	recentTransactionsUseCase := dashboard.NewGetRecentTransactionsUseCase(saleRepo, purchaseRepo)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(loginUseCase, logoutUseCase, registerUseCase)
	categoryController := controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase)
	productController := controller.NewProductController(
		listProductsUseCase,
		createProductUseCase,
		updateProductUseCase,
		deleteProductUseCase,
		adjustStockUseCase,
	)
	saleController := controller.NewSaleController(listSalesUseCase, createSaleUseCase)
	purchaseController := controller.NewPurchaseController(listPurchasesUseCase, createPurchaseUseCase)
	dashboardController := controller.NewDashboardController(
		metricsUseCase,
		revenueSeriesUseCase,
		recentTransactionsUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(cfg.Server.LoginRateLimit, cfg.Server.LoginRateWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Start the low-stock alert worker when delivery is configured
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if cfg.Alert.WorkerEnabled && cfg.Alert.ResendAPIKey != "" && cfg.Alert.Recipient != "" {
		sender := alert.NewResendClient(
			cfg.Alert.ResendAPIKey,
			cfg.Alert.FromName,
			cfg.Alert.FromEmail,
			cfg.Alert.Recipient,
		)
		worker := alert.NewWorker(alertQueue, sender, alert.WorkerConfig{
			PollInterval: cfg.Alert.PollInterval,
			BatchSize:    cfg.Alert.BatchSize,
			MaxAttempts:  cfg.Alert.MaxAttempts,
		})
		go worker.Start(workerCtx)
	} else {
		slog.Info("Low-stock alert worker disabled")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		productController,
		saleController,
		purchaseController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
