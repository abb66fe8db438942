package models

import "gorm.io/gorm"

// FriendRequest represents a friend request between two users.
// Requests start pending and flip to accepted; they are never deleted.
type FriendRequest struct {
	gorm.Model
	FromUserID uint `json:"from_user_id" gorm:"index"` // User ID of the sender
	ToUserID   uint `json:"to_user_id" gorm:"index"`   // User ID of the recipient
	Accepted   bool `json:"accepted" gorm:"default:false"`
}

// Friendship is a directed friendship edge. Accepting a request writes the
// edge in both directions, so "are we friends" is a single-row lookup.
type Friendship struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"uniqueIndex:idx_friendship_pair"`
	FriendID uint `json:"friend_id" gorm:"uniqueIndex:idx_friendship_pair"`
}

// FriendVisibility is a directed permission row: UserID allows (or denies)
// FriendID to view their expenses. No row means not visible.
type FriendVisibility struct {
	gorm.Model
	UserID          uint `json:"user_id" gorm:"uniqueIndex:idx_visibility_pair"`
	FriendID        uint `json:"friend_id" gorm:"uniqueIndex:idx_visibility_pair"`
	CanViewExpenses bool `json:"can_view_expenses"`
}

// ToggleVisibilityRequest defines the request body for granting or revoking
// a friend's view of the caller's expenses
type ToggleVisibilityRequest struct {
	Visible *bool `json:"visible" validate:"required"`
}

// FriendWithVisibility is a friend plus the visibility flag that friend has
// granted to the caller
type FriendWithVisibility struct {
	User
	CanViewExpenses bool `json:"can_view_expenses"`
}
