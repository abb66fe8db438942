package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/samwong-dev/family-ledger/backend/internal/models"
)

// currentClaims returns the JWT claims the auth middleware stored in context
func currentClaims(c echo.Context) *models.JwtCustomClaims {
	return c.Get("user").(*models.JwtCustomClaims)
}

// currentUserID returns the authenticated user's ID from the JWT claims
func currentUserID(c echo.Context) uint {
	return currentClaims(c).UserID
}
