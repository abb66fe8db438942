package repositories_test

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/samwong-dev/family-ledger/backend/internal/models"
	"github.com/samwong-dev/family-ledger/backend/internal/repositories"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.FriendRequest{},
		&models.Friendship{},
		&models.FriendVisibility{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestAcceptFriendRequestCreatesBothEdges(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)

	req := &models.FriendRequest{FromUserID: 1, ToUserID: 2}
	if err := repo.SendFriendRequest(req); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	if err := repo.AcceptFriendRequest(req); err != nil {
		t.Fatalf("AcceptFriendRequest failed: %v", err)
	}

	for _, pair := range [][2]uint{{1, 2}, {2, 1}} {
		ok, err := repo.AreFriends(pair[0], pair[1])
		if err != nil {
			t.Fatalf("AreFriends(%d, %d) failed: %v", pair[0], pair[1], err)
		}
		if !ok {
			t.Errorf("AreFriends(%d, %d) = false, want true", pair[0], pair[1])
		}
	}

	stored, err := repo.GetFriendRequestByID(req.ID)
	if err != nil {
		t.Fatalf("GetFriendRequestByID failed: %v", err)
	}
	if !stored.Accepted {
		t.Error("request not marked accepted")
	}
}

func TestSendFriendRequestRejectsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)

	if err := repo.SendFriendRequest(&models.FriendRequest{FromUserID: 1, ToUserID: 2}); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	if err := repo.SendFriendRequest(&models.FriendRequest{FromUserID: 1, ToUserID: 2}); err == nil {
		t.Error("duplicate request not rejected")
	}
	if err := repo.SendFriendRequest(&models.FriendRequest{FromUserID: 2, ToUserID: 1}); err == nil {
		t.Error("reverse duplicate request not rejected")
	}
}

func TestVisibilityDefaultsToHidden(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)

	canView, err := repo.GetVisibility(1, 2)
	if err != nil {
		t.Fatalf("GetVisibility failed: %v", err)
	}
	if canView {
		t.Error("visibility defaults to visible, want hidden")
	}
}

func TestSetVisibilityUpserts(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresFriendshipRepository(db)

	if err := repo.SetVisibility(1, 2, true); err != nil {
		t.Fatalf("SetVisibility(insert) failed: %v", err)
	}
	canView, err := repo.GetVisibility(1, 2)
	if err != nil {
		t.Fatalf("GetVisibility failed: %v", err)
	}
	if !canView {
		t.Error("visibility not granted after SetVisibility(true)")
	}

	// Direction matters: the reverse edge stays hidden
	canView, err = repo.GetVisibility(2, 1)
	if err != nil {
		t.Fatalf("GetVisibility(reverse) failed: %v", err)
	}
	if canView {
		t.Error("reverse visibility granted, want hidden")
	}

	if err := repo.SetVisibility(1, 2, false); err != nil {
		t.Fatalf("SetVisibility(update) failed: %v", err)
	}
	canView, err = repo.GetVisibility(1, 2)
	if err != nil {
		t.Fatalf("GetVisibility failed: %v", err)
	}
	if canView {
		t.Error("visibility still granted after SetVisibility(false)")
	}

	var count int64
	if err := db.Model(&models.FriendVisibility{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("visibility rows = %d, want 1 (upsert, not insert)", count)
	}
}
