// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/gestao/backend/internal/domain/entity"
	"github.com/gestao/backend/internal/integration/entrypoint/controller"
	"github.com/gestao/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	categoryController  *controller.CategoryController
	productController   *controller.ProductController
	saleController      *controller.SaleController
	purchaseController  *controller.PurchaseController
	dashboardController *controller.DashboardController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	productController *controller.ProductController,
	saleController *controller.SaleController,
	purchaseController *controller.PurchaseController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		categoryController:  categoryController,
		productController:   productController,
		saleController:      saleController,
		purchaseController:  purchaseController,
		dashboardController: dashboardController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every business route sits
// behind authentication and the admin role; only auth itself is public.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		if r.authMiddleware == nil {
			return
		}
		admin := r.authMiddleware.RequireRole(entity.RoleAdmin)

		if r.categoryController != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate(), admin)
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
			}
		}

		if r.productController != nil {
			products := v1.Group("/products")
			products.Use(r.authMiddleware.Authenticate(), admin)
			{
				products.GET("", r.productController.List)
				products.POST("", r.productController.Create)
				products.PATCH("/:id", r.productController.Update)
				products.DELETE("/:id", r.productController.Delete)
				products.POST("/:id/adjust-stock", r.productController.AdjustStock)
			}
		}

		if r.saleController != nil {
			sales := v1.Group("/sales")
			sales.Use(r.authMiddleware.Authenticate(), admin)
			{
				sales.GET("", r.saleController.List)
				sales.POST("", r.saleController.Create)
			}
		}

		if r.purchaseController != nil {
			purchases := v1.Group("/purchases")
			purchases.Use(r.authMiddleware.Authenticate(), admin)
			{
				purchases.GET("", r.purchaseController.List)
				purchases.POST("", r.purchaseController.Create)
			}
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate(), admin)
			{
				dashboard.GET("/metrics", r.dashboardController.GetMetrics)
				dashboard.GET("/revenue-series", r.dashboardController.GetRevenueSeries)
				dashboard.GET("/recent-transactions", r.dashboardController.GetRecentTransactions)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
