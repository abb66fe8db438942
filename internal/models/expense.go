package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is an immutable spending record owned by its payer. FamilyID is
// nil for personal expenses.
type Expense struct {
	gorm.Model  `json:"-"`
	ID          uint            `json:"id" gorm:"primaryKey"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(12,2)"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp" gorm:"index"`
	PayerID     uint            `json:"payer_id" gorm:"index"`
	FamilyID    *uint           `json:"family_id,omitempty" gorm:"index"`
}

// CreateExpenseRequest defines the request body for recording an expense
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"max=255"`
}
