package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/samwong-dev/family-ledger/backend/internal/handlers"
	"github.com/samwong-dev/family-ledger/backend/internal/middleware"
	"github.com/samwong-dev/family-ledger/backend/internal/models"
	"github.com/samwong-dev/family-ledger/backend/internal/repositories"
	"github.com/samwong-dev/family-ledger/backend/pkg/logger"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	logger.Log.Info("Global middleware configured")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB) error {
	// AutoMigrate models
	err := db.AutoMigrate(
		&models.User{},
		&models.Family{},
		&models.FriendRequest{},
		&models.Friendship{},
		&models.FriendVisibility{},
		&models.Expense{},
		&models.RevokedToken{},
	)
	if err != nil {
		return err
	}
	logger.Log.Info("Auto-migrations completed for all models")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	familyRepo := repositories.NewPostgresFamilyRepository(db)
	friendshipRepo := repositories.NewPostgresFriendshipRepository(db)
	expenseRepo := repositories.NewPostgresExpenseRepository(db)
	tokenRepo := repositories.NewPostgresTokenRepository(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, tokenRepo)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(tokenRepo))

	authHandler.RegisterSessionRoutes(api)

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)
	api.GET("/users/search", userHandler.SearchUsers)

	familyHandler := handlers.NewFamilyHandler(familyRepo, userRepo, expenseRepo)
	familyHandler.RegisterFamilyRoutes(api)

	friendHandler := handlers.NewFriendHandler(friendshipRepo, userRepo, expenseRepo)
	friendHandler.RegisterFriendRoutes(api)

	expenseHandler := handlers.NewExpenseHandler(expenseRepo, userRepo)
	expenseHandler.RegisterExpenseRoutes(api)

	logger.Log.Info("All routes configured")
	return nil
}
