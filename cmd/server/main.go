package main

import (
	"github.com/labstack/echo/v4"
	"github.com/samwong-dev/family-ledger/backend/internal/router"
	"github.com/samwong-dev/family-ledger/backend/pkg/config"
	"github.com/samwong-dev/family-ledger/backend/pkg/logger"
	"github.com/samwong-dev/family-ledger/backend/validators"
)

func main() {
	logger.Init()

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		logger.Log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db.Conn); err != nil {
		logger.Log.Fatalf("Failed to set up routes: %v", err)
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
