package models

import (
	"time"

	"gorm.io/gorm"
)

// RevokedToken records the JTI of a bearer token invalidated by logout.
// Rows older than ExpiresAt are purged lazily since the token would no
// longer verify anyway.
type RevokedToken struct {
	gorm.Model
	JTI       string    `json:"jti" gorm:"uniqueIndex"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
}
