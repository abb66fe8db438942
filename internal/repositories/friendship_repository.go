package repositories

import (
	"fmt"

	"github.com/samwong-dev/family-ledger/backend/internal/models"
	"gorm.io/gorm"
)

// FriendshipRepository defines the interface for friendship data operations
type FriendshipRepository interface {
	SendFriendRequest(req *models.FriendRequest) error
	GetFriendRequestByID(id uint) (*models.FriendRequest, error)
	GetUserPendingFriendRequests(userID uint) ([]models.FriendRequest, error)
	AcceptFriendRequest(req *models.FriendRequest) error
	AreFriends(userID, friendID uint) (bool, error)
	GetUserFriends(userID uint) ([]models.User, error)
	GetVisibility(ownerID, viewerID uint) (bool, error)
	SetVisibility(ownerID, viewerID uint, visible bool) error
}

// PostgresFriendshipRepository implements FriendshipRepository for PostgreSQL
type PostgresFriendshipRepository struct {
	db *gorm.DB
}

// NewPostgresFriendshipRepository creates a new PostgresFriendshipRepository
func NewPostgresFriendshipRepository(db *gorm.DB) *PostgresFriendshipRepository {
	return &PostgresFriendshipRepository{db: db}
}

// SendFriendRequest creates a new pending friend request
func (r *PostgresFriendshipRepository) SendFriendRequest(req *models.FriendRequest) error {
	// Check if a request already exists in either direction
	var existing models.FriendRequest
	err := r.db.Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
		req.FromUserID, req.ToUserID, req.ToUserID, req.FromUserID).First(&existing).Error

	if err == nil {
		if existing.Accepted {
			return fmt.Errorf("users are already friends")
		}
		return fmt.Errorf("a pending friend request already exists between these users")
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	req.Accepted = false
	return r.db.Create(req).Error
}

// GetFriendRequestByID retrieves a friend request by ID
func (r *PostgresFriendshipRepository) GetFriendRequestByID(id uint) (*models.FriendRequest, error) {
	var req models.FriendRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// GetUserPendingFriendRequests retrieves all pending friend requests addressed to a user
func (r *PostgresFriendshipRepository) GetUserPendingFriendRequests(userID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := r.db.Where("to_user_id = ? AND accepted = ?", userID, false).Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// AcceptFriendRequest marks the request accepted and writes both friendship
// edges in one transaction
func (r *PostgresFriendshipRepository) AcceptFriendRequest(req *models.FriendRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.FriendRequest{}).Where("id = ?", req.ID).Update("accepted", true).Error; err != nil {
			return err
		}
		edges := []models.Friendship{
			{UserID: req.FromUserID, FriendID: req.ToUserID},
			{UserID: req.ToUserID, FriendID: req.FromUserID},
		}
		return tx.Create(&edges).Error
	})
}

// AreFriends reports whether a friendship edge exists from userID to friendID
func (r *PostgresFriendshipRepository) AreFriends(userID, friendID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetUserFriends retrieves all friends of a user
func (r *PostgresFriendshipRepository) GetUserFriends(userID uint) ([]models.User, error) {
	var friends []models.User
	subQuery := r.db.Model(&models.Friendship{}).Select("friend_id").Where("user_id = ?", userID)
	if err := r.db.Where("id IN (?)", subQuery).Find(&friends).Error; err != nil {
		return nil, err
	}
	return friends, nil
}

// GetVisibility reports whether ownerID has granted viewerID visibility of
// their expenses. A missing row means not visible.
func (r *PostgresFriendshipRepository) GetVisibility(ownerID, viewerID uint) (bool, error) {
	var row models.FriendVisibility
	err := r.db.Where("user_id = ? AND friend_id = ?", ownerID, viewerID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return row.CanViewExpenses, nil
}

// SetVisibility upserts the ownerID -> viewerID visibility row
func (r *PostgresFriendshipRepository) SetVisibility(ownerID, viewerID uint, visible bool) error {
	var row models.FriendVisibility
	err := r.db.Where("user_id = ? AND friend_id = ?", ownerID, viewerID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		row = models.FriendVisibility{UserID: ownerID, FriendID: viewerID, CanViewExpenses: visible}
		return r.db.Create(&row).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&row).Update("can_view_expenses", visible).Error
}
