package repositories

import (
	"time"

	"github.com/samwong-dev/family-ledger/backend/internal/models"
	"gorm.io/gorm"
)

// TokenRepository defines the interface for revoked-token bookkeeping
type TokenRepository interface {
	RevokeToken(jti string, expiresAt time.Time) error
	IsTokenRevoked(jti string) (bool, error)
}

// PostgresTokenRepository implements TokenRepository for PostgreSQL
type PostgresTokenRepository struct {
	db *gorm.DB
}

// NewPostgresTokenRepository creates a new PostgresTokenRepository
func NewPostgresTokenRepository(db *gorm.DB) *PostgresTokenRepository {
	return &PostgresTokenRepository{db: db}
}

// RevokeToken records a token's JTI so it can no longer authenticate.
// Expired rows are purged on the way in; those tokens fail verification
// regardless.
func (r *PostgresTokenRepository) RevokeToken(jti string, expiresAt time.Time) error {
	if err := r.db.Where("expires_at < ?", time.Now()).Delete(&models.RevokedToken{}).Error; err != nil {
		return err
	}
	return r.db.Create(&models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}).Error
}

// IsTokenRevoked reports whether a JTI has been revoked
func (r *PostgresTokenRepository) IsTokenRevoked(jti string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
