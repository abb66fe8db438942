package repositories

import (
	"github.com/samwong-dev/family-ledger/backend/internal/models"
	"gorm.io/gorm"
)

// ExpenseRepository defines the interface for expense data operations.
// Expenses are immutable once created, so there is no update or delete.
type ExpenseRepository interface {
	CreateExpense(expense *models.Expense) error
	GetExpensesByPayer(payerID uint) ([]models.Expense, error)
	GetExpensesByFamily(familyID uint) ([]models.Expense, error)
}

// PostgresExpenseRepository implements ExpenseRepository for PostgreSQL
type PostgresExpenseRepository struct {
	db *gorm.DB
}

// NewPostgresExpenseRepository creates a new PostgresExpenseRepository
func NewPostgresExpenseRepository(db *gorm.DB) *PostgresExpenseRepository {
	return &PostgresExpenseRepository{db: db}
}

// CreateExpense records a new expense
func (r *PostgresExpenseRepository) CreateExpense(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

// GetExpensesByPayer retrieves a payer's expenses, newest first
func (r *PostgresExpenseRepository) GetExpensesByPayer(payerID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Where("payer_id = ?", payerID).Order("timestamp DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// GetExpensesByFamily retrieves a family's expenses, newest first
func (r *PostgresExpenseRepository) GetExpensesByFamily(familyID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Where("family_id = ?", familyID).Order("timestamp DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}
