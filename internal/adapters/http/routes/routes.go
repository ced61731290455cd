package routes

import (
	"gomarket/internal/adapters/http/handlers"
	"gomarket/internal/adapters/http/middleware"
	"gomarket/internal/adapters/persistence/repositories"
	"gomarket/internal/config"
	"gomarket/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo, categoryRepo)
	reviewService := services.NewReviewService(reviewRepo, productRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	authGuard := middleware.AuthMiddleware(cfg)

	// Auth routes
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Get("/me", authGuard, authHandler.Me)

	// Category routes
	categoryRoutes := apiV1.Group("/categories")
	categoryRoutes.Get("/", categoryHandler.ListCategories)
	categoryRoutes.Post("/", authGuard, middleware.Require("category:create"), categoryHandler.CreateCategory)
	categoryRoutes.Put("/:id", authGuard, middleware.Require("category:update"), categoryHandler.UpdateCategory)
	categoryRoutes.Delete("/:id", authGuard, middleware.Require("category:delete"), categoryHandler.DeleteCategory)

	// Product routes
	productRoutes := apiV1.Group("/products")
	productRoutes.Get("/", productHandler.ListProducts)
	productRoutes.Get("/category/:slug", productHandler.ListByCategory)
	productRoutes.Get("/:slug", productHandler.GetProduct)
	productRoutes.Post("/", authGuard, middleware.Require("product:create"), productHandler.CreateProduct)
	productRoutes.Put("/:slug", authGuard, middleware.Require("product:update"), productHandler.UpdateProduct)
	productRoutes.Delete("/:slug", authGuard, middleware.Require("product:delete"), productHandler.DeleteProduct)

	// Review routes
	reviewRoutes := apiV1.Group("/reviews")
	reviewRoutes.Get("/", reviewHandler.ListReviews)
	reviewRoutes.Get("/:product_slug", reviewHandler.GetProductReviews)
	reviewRoutes.Post("/", authGuard, middleware.Require("review:create"), reviewHandler.CreateReview)
	reviewRoutes.Delete("/:product_slug", authGuard, middleware.Require("review:delete"), reviewHandler.DeleteProductReviews)

	// User administration routes (Admin only)
	userRoutes := apiV1.Group("/users")
	userRoutes.Use(authGuard)
	userRoutes.Get("/", middleware.Require("user:list"), userHandler.ListUsers)
	userRoutes.Patch("/:id/supplier", middleware.Require("user:supplier"), userHandler.ToggleSupplier)
	userRoutes.Delete("/:id", middleware.Require("user:delete"), userHandler.DeleteUser)
}
