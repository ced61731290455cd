package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"gomarket/internal/adapters/http/middleware"
	"gomarket/internal/adapters/http/routes"
	"gomarket/internal/adapters/persistence/models"
	"gomarket/internal/adapters/persistence/repositories"
	"gomarket/internal/config"
	"gomarket/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "gomarket/docs" // Swagger docs
)

// @title GoMarket API
// @version 1.0
// @description E-commerce catalog backend with token-based authentication.

// @host localhost:3000
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase(db)

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed default admin
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	// Start nightly rating sweep
	sweep := services.NewRatingSweepService(
		repositories.NewProductRepository(db),
		repositories.NewReviewRepository(db),
	)
	if err := sweep.Start(); err != nil {
		log.Fatalf("❌ Failed to start rating sweep: %v", err)
	}
	defer sweep.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "GoMarket API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
