package models

import "gorm.io/gorm"

// Family is a named group of users sharing visibility into family expenses.
// Membership is many-to-many via the family_memberships join table.
type Family struct {
	gorm.Model  `json:"-"`
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex"` // Family name must be unique
	Description string `json:"description"`
	Members     []User `json:"-" gorm:"many2many:family_memberships"`
}

// CreateFamilyRequest defines the request body for creating a family
type CreateFamilyRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=255"`
}
