package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/samwong-dev/family-ledger/backend/internal/models"
	"github.com/samwong-dev/family-ledger/backend/internal/repositories"
	"gorm.io/gorm"
)

// FriendHandler handles HTTP requests related to friendships
type FriendHandler struct {
	friendshipRepository repositories.FriendshipRepository
	userRepository       repositories.UserRepository // To fetch user details for friends list
	expenseRepository    repositories.ExpenseRepository
}

// NewFriendHandler creates a new FriendHandler
func NewFriendHandler(friendshipRepo repositories.FriendshipRepository, userRepo repositories.UserRepository, expenseRepo repositories.ExpenseRepository) *FriendHandler {
	return &FriendHandler{
		friendshipRepository: friendshipRepo,
		userRepository:       userRepo,
		expenseRepository:    expenseRepo,
	}
}

// RegisterFriendRoutes registers friendship-related routes
func (h *FriendHandler) RegisterFriendRoutes(g *echo.Group) {
	g.POST("/users/:id/send-friend-request", h.SendFriendRequest)
	g.GET("/me/friend-requests/pending", h.GetPendingFriendRequests)
	g.POST("/friend-requests/:id/accept", h.AcceptFriendRequest)
	g.GET("/me/friends", h.GetFriends)
	g.PATCH("/friends/:id/toggle-expense-visibility", h.ToggleExpenseVisibility)
	g.GET("/friends/:id/expenses", h.GetFriendExpenses)
}

// SendFriendRequest sends a friend request to the user in the path
func (h *FriendHandler) SendFriendRequest(c echo.Context) error {
	toUserID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	fromUserID := currentUserID(c)
	if fromUserID == uint(toUserID) {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot send a friend request to yourself")
	}

	// Check if recipient exists
	if _, err := h.userRepository.GetUserByID(uint(toUserID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Recipient user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	friendRequest := &models.FriendRequest{
		FromUserID: fromUserID,
		ToUserID:   uint(toUserID),
	}

	if err := h.friendshipRepository.SendFriendRequest(friendRequest); err != nil {
		if strings.Contains(err.Error(), "already") {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, friendRequest)
}

// GetPendingFriendRequests retrieves pending friend requests addressed to the
// authenticated user
func (h *FriendHandler) GetPendingFriendRequests(c echo.Context) error {
	requests, err := h.friendshipRepository.GetUserPendingFriendRequests(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, requests)
}

// AcceptFriendRequest accepts a pending friend request, creating the mutual
// friendship edges
func (h *FriendHandler) AcceptFriendRequest(c echo.Context) error {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request ID")
	}

	friendRequest, err := h.friendshipRepository.GetFriendRequestByID(uint(requestID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Friend request not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Only the recipient may accept
	if friendRequest.ToUserID != currentUserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to accept this friend request")
	}

	if friendRequest.Accepted {
		return echo.NewHTTPError(http.StatusBadRequest, "Friend request already accepted")
	}

	if err := h.friendshipRepository.AcceptFriendRequest(friendRequest); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	friendRequest.Accepted = true
	return c.JSON(http.StatusOK, friendRequest)
}

// GetFriends retrieves the authenticated user's friends together with the
// visibility flag each friend has granted to the user
func (h *FriendHandler) GetFriends(c echo.Context) error {
	userID := currentUserID(c)

	friends, err := h.friendshipRepository.GetUserFriends(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	result := make([]models.FriendWithVisibility, 0, len(friends))
	for _, friend := range friends {
		canView, err := h.friendshipRepository.GetVisibility(friend.ID, userID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		result = append(result, models.FriendWithVisibility{User: friend, CanViewExpenses: canView})
	}

	return c.JSON(http.StatusOK, result)
}

// ToggleExpenseVisibility grants or revokes a friend's view of the
// authenticated user's expenses
func (h *FriendHandler) ToggleExpenseVisibility(c echo.Context) error {
	friendID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid friend user ID")
	}

	var req models.ToggleVisibilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID := currentUserID(c)
	areFriends, err := h.friendshipRepository.AreFriends(userID, uint(friendID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !areFriends {
		return echo.NewHTTPError(http.StatusForbidden, "Not friends with this user")
	}

	if err := h.friendshipRepository.SetVisibility(userID, uint(friendID), *req.Visible); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Visibility updated"})
}

// GetFriendExpenses lists a friend's expenses, provided the friend has
// granted visibility to the authenticated user
func (h *FriendHandler) GetFriendExpenses(c echo.Context) error {
	friendID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid friend user ID")
	}

	userID := currentUserID(c)
	areFriends, err := h.friendshipRepository.AreFriends(userID, uint(friendID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !areFriends {
		return echo.NewHTTPError(http.StatusForbidden, "You are not friends with this user")
	}

	canView, err := h.friendshipRepository.GetVisibility(uint(friendID), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !canView {
		return echo.NewHTTPError(http.StatusForbidden, "This user does not share their expenses with you")
	}

	expenses, err := h.expenseRepository.GetExpensesByPayer(uint(friendID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, expenses)
}
