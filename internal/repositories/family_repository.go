package repositories

import (
	"github.com/samwong-dev/family-ledger/backend/internal/models"
	"gorm.io/gorm"
)

// FamilyRepository defines the interface for family data operations
type FamilyRepository interface {
	CreateFamily(family *models.Family) error
	GetFamilyByID(id uint) (*models.Family, error)
	GetFamilyByName(name string) (*models.Family, error)
	AddMember(familyID, userID uint) error
	IsMember(familyID, userID uint) (bool, error)
	GetMembers(familyID uint) ([]models.User, error)
	GetUserFamilies(userID uint) ([]models.Family, error)
}

// PostgresFamilyRepository implements FamilyRepository for PostgreSQL
type PostgresFamilyRepository struct {
	db *gorm.DB
}

// NewPostgresFamilyRepository creates a new PostgresFamilyRepository
func NewPostgresFamilyRepository(db *gorm.DB) *PostgresFamilyRepository {
	return &PostgresFamilyRepository{db: db}
}

// CreateFamily creates a new family
func (r *PostgresFamilyRepository) CreateFamily(family *models.Family) error {
	return r.db.Create(family).Error
}

// GetFamilyByID retrieves a family by ID
func (r *PostgresFamilyRepository) GetFamilyByID(id uint) (*models.Family, error) {
	var family models.Family
	if err := r.db.First(&family, id).Error; err != nil {
		return nil, err
	}
	return &family, nil
}

// GetFamilyByName retrieves a family by its unique name
func (r *PostgresFamilyRepository) GetFamilyByName(name string) (*models.Family, error) {
	var family models.Family
	if err := r.db.Where("name = ?", name).First(&family).Error; err != nil {
		return nil, err
	}
	return &family, nil
}

// AddMember adds a user to a family's membership
func (r *PostgresFamilyRepository) AddMember(familyID, userID uint) error {
	family := models.Family{ID: familyID}
	return r.db.Model(&family).Association("Members").Append(&models.User{ID: userID})
}

// IsMember reports whether a user belongs to a family
func (r *PostgresFamilyRepository) IsMember(familyID, userID uint) (bool, error) {
	var count int64
	err := r.db.Table("family_memberships").
		Where("family_id = ? AND user_id = ?", familyID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetMembers retrieves all members of a family
func (r *PostgresFamilyRepository) GetMembers(familyID uint) ([]models.User, error) {
	var members []models.User
	err := r.db.
		Joins("JOIN family_memberships ON family_memberships.user_id = users.id").
		Where("family_memberships.family_id = ?", familyID).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// GetUserFamilies retrieves all families a user belongs to
func (r *PostgresFamilyRepository) GetUserFamilies(userID uint) ([]models.Family, error) {
	var families []models.Family
	err := r.db.
		Joins("JOIN family_memberships ON family_memberships.family_id = families.id").
		Where("family_memberships.user_id = ?", userID).
		Find(&families).Error
	if err != nil {
		return nil, err
	}
	return families, nil
}
