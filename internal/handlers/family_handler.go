package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/samwong-dev/family-ledger/backend/internal/models"
	"github.com/samwong-dev/family-ledger/backend/internal/repositories"
	"gorm.io/gorm"
)

// FamilyHandler handles HTTP requests related to families
type FamilyHandler struct {
	familyRepository  repositories.FamilyRepository
	userRepository    repositories.UserRepository
	expenseRepository repositories.ExpenseRepository
}

// NewFamilyHandler creates a new FamilyHandler
func NewFamilyHandler(familyRepo repositories.FamilyRepository, userRepo repositories.UserRepository, expenseRepo repositories.ExpenseRepository) *FamilyHandler {
	return &FamilyHandler{
		familyRepository:  familyRepo,
		userRepository:    userRepo,
		expenseRepository: expenseRepo,
	}
}

// RegisterFamilyRoutes registers family-related routes
func (h *FamilyHandler) RegisterFamilyRoutes(g *echo.Group) {
	g.POST("/families", h.CreateFamily)
	g.POST("/families/:id/join", h.JoinFamily)
	g.GET("/families/:id", h.GetFamily)
	g.GET("/families/:id/members", h.GetFamilyMembers)
	g.GET("/families/:id/expenses", h.GetFamilyExpenses)
	g.GET("/me/families", h.GetMyFamilies)
	g.POST("/me/primary-family/:id", h.SetPrimaryFamily)
}

// CreateFamily creates a new family
func (h *FamilyHandler) CreateFamily(c echo.Context) error {
	var req models.CreateFamilyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Family names are unique
	_, err := h.familyRepository.GetFamilyByName(req.Name)
	if err == nil {
		return echo.NewHTTPError(http.StatusConflict, "A family with this name already exists")
	}

	family := &models.Family{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.familyRepository.CreateFamily(family); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, family)
}

// JoinFamily adds the authenticated user to a family
func (h *FamilyHandler) JoinFamily(c echo.Context) error {
	familyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid family ID")
	}

	family, err := h.familyRepository.GetFamilyByID(uint(familyID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Family not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	userID := currentUserID(c)
	isMember, err := h.familyRepository.IsMember(family.ID, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if isMember {
		return echo.NewHTTPError(http.StatusBadRequest, "Already a member of this family")
	}

	if err := h.familyRepository.AddMember(family.ID, userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, family)
}

// SetPrimaryFamily marks one of the user's families as primary; new expenses
// attach to it
func (h *FamilyHandler) SetPrimaryFamily(c echo.Context) error {
	familyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid family ID")
	}

	userID := currentUserID(c)
	isMember, err := h.familyRepository.IsMember(uint(familyID), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !isMember {
		return echo.NewHTTPError(http.StatusForbidden, "You are not a member of this family")
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}

	primaryID := uint(familyID)
	user.PrimaryFamilyID = &primaryID
	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Primary family updated"})
}

// GetFamily retrieves a family the authenticated user belongs to
func (h *FamilyHandler) GetFamily(c echo.Context) error {
	familyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid family ID")
	}

	family, err := h.familyRepository.GetFamilyByID(uint(familyID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Family not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	isMember, err := h.familyRepository.IsMember(family.ID, currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !isMember {
		return echo.NewHTTPError(http.StatusForbidden, "You are not a member of this family")
	}

	return c.JSON(http.StatusOK, family)
}

// GetFamilyMembers lists the members of a family the user belongs to
func (h *FamilyHandler) GetFamilyMembers(c echo.Context) error {
	familyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid family ID")
	}

	if _, err := h.familyRepository.GetFamilyByID(uint(familyID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Family not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	isMember, err := h.familyRepository.IsMember(uint(familyID), currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !isMember {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to view this family's members")
	}

	members, err := h.familyRepository.GetMembers(uint(familyID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, members)
}

// GetFamilyExpenses lists a family's expenses for its members, newest first
func (h *FamilyHandler) GetFamilyExpenses(c echo.Context) error {
	familyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid family ID")
	}

	isMember, err := h.familyRepository.IsMember(uint(familyID), currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !isMember {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to view this family's expenses")
	}

	expenses, err := h.expenseRepository.GetExpensesByFamily(uint(familyID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, expenses)
}

// GetMyFamilies lists the authenticated user's family memberships
func (h *FamilyHandler) GetMyFamilies(c echo.Context) error {
	families, err := h.familyRepository.GetUserFamilies(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, families)
}
