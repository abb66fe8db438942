package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model      `json:"-"`
	ID              uint     `json:"id" gorm:"primaryKey"`
	Name            string   `json:"name"`
	Email           string   `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Password        string   `json:"-"`                        // Store hashed password, ignore for JSON serialization
	PrimaryFamilyID *uint    `json:"primary_family_id,omitempty"`
	Families        []Family `json:"-" gorm:"many2many:family_memberships"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
