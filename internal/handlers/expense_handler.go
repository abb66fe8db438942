package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/samwong-dev/family-ledger/backend/internal/models"
	"github.com/samwong-dev/family-ledger/backend/internal/repositories"
)

// ExpenseHandler handles HTTP requests related to expenses
type ExpenseHandler struct {
	expenseRepository repositories.ExpenseRepository
	userRepository    repositories.UserRepository
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseRepo repositories.ExpenseRepository, userRepo repositories.UserRepository) *ExpenseHandler {
	return &ExpenseHandler{
		expenseRepository: expenseRepo,
		userRepository:    userRepo,
	}
}

// RegisterExpenseRoutes registers expense-related routes
func (h *ExpenseHandler) RegisterExpenseRoutes(g *echo.Group) {
	g.POST("/expenses", h.CreateExpense)
	g.GET("/me/expenses", h.GetMyExpenses)
}

// CreateExpense records an expense for the authenticated user. The expense
// attaches to the payer's primary family when one is set.
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req models.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !req.Amount.IsPositive() {
		return echo.NewHTTPError(http.StatusBadRequest, "Amount must be greater than zero")
	}

	user, err := h.userRepository.GetUserByID(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}

	expense := &models.Expense{
		Amount:      req.Amount,
		Description: req.Description,
		Timestamp:   time.Now(),
		PayerID:     user.ID,
		FamilyID:    user.PrimaryFamilyID,
	}

	if err := h.expenseRepository.CreateExpense(expense); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, expense)
}

// GetMyExpenses lists the authenticated user's expenses, newest first
func (h *ExpenseHandler) GetMyExpenses(c echo.Context) error {
	expenses, err := h.expenseRepository.GetExpensesByPayer(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, expenses)
}
