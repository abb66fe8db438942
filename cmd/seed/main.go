// Command seed populates the database with development fixtures: three
// families, three users, memberships, an accepted friendship with a one-way
// visibility grant, and a handful of expenses.
package main

import (
	"time"

	"github.com/samwong-dev/family-ledger/backend/internal/models"
	"github.com/samwong-dev/family-ledger/backend/internal/repositories"
	"github.com/samwong-dev/family-ledger/backend/pkg/config"
	"github.com/samwong-dev/family-ledger/backend/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	logger.Init()

	db, err := config.InitDB()
	if err != nil {
		logger.Log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	err = db.Conn.AutoMigrate(
		&models.User{},
		&models.Family{},
		&models.FriendRequest{},
		&models.Friendship{},
		&models.FriendVisibility{},
		&models.Expense{},
		&models.RevokedToken{},
	)
	if err != nil {
		logger.Log.Fatalf("Failed to auto migrate models: %v", err)
	}

	userRepo := repositories.NewPostgresUserRepository(db.Conn)
	familyRepo := repositories.NewPostgresFamilyRepository(db.Conn)
	friendshipRepo := repositories.NewPostgresFriendshipRepository(db.Conn)
	expenseRepo := repositories.NewPostgresExpenseRepository(db.Conn)

	// Sample families
	families := []*models.Family{
		{Name: "Wong Family", Description: "Family of Samuel Wong"},
		{Name: "Tech Enthusiasts", Description: "A tech-savvy group"},
		{Name: "Gym Bros", Description: "A gym family"},
	}
	for _, family := range families {
		if err := familyRepo.CreateFamily(family); err != nil {
			logger.Log.Fatalf("Failed to create family %q: %v", family.Name, err)
		}
	}

	// Sample users, all with the password "dummy"
	hashed, err := bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Fatalf("Failed to hash password: %v", err)
	}
	users := []*models.User{
		{Name: "Sam Wong", Email: "sam@example.com", Password: string(hashed)},
		{Name: "Jane Smith", Email: "jane@example.com", Password: string(hashed)},
		{Name: "Bob Li", Email: "bob@example.com", Password: string(hashed)},
	}
	for _, user := range users {
		if err := userRepo.CreateUser(user); err != nil {
			logger.Log.Fatalf("Failed to create user %q: %v", user.Email, err)
		}
	}
	sam, jane, bob := users[0], users[1], users[2]

	// Memberships (many-to-many)
	memberships := []struct {
		familyID uint
		userID   uint
	}{
		{families[0].ID, sam.ID},
		{families[0].ID, jane.ID},
		{families[1].ID, jane.ID},
		{families[1].ID, bob.ID},
	}
	for _, m := range memberships {
		if err := familyRepo.AddMember(m.familyID, m.userID); err != nil {
			logger.Log.Fatalf("Failed to add member: %v", err)
		}
	}

	// Sam's expenses land in the Wong Family ledger
	wongFamilyID := families[0].ID
	sam.PrimaryFamilyID = &wongFamilyID
	if err := userRepo.UpdateUser(sam); err != nil {
		logger.Log.Fatalf("Failed to set primary family: %v", err)
	}

	// Sam and Jane are friends; Sam shares his expenses with Jane
	request := &models.FriendRequest{FromUserID: sam.ID, ToUserID: jane.ID}
	if err := friendshipRepo.SendFriendRequest(request); err != nil {
		logger.Log.Fatalf("Failed to send friend request: %v", err)
	}
	if err := friendshipRepo.AcceptFriendRequest(request); err != nil {
		logger.Log.Fatalf("Failed to accept friend request: %v", err)
	}
	if err := friendshipRepo.SetVisibility(sam.ID, jane.ID, true); err != nil {
		logger.Log.Fatalf("Failed to set visibility: %v", err)
	}

	// Sample expenses
	expenses := []*models.Expense{
		{Amount: decimal.NewFromFloat(42.50), Description: "Groceries", Timestamp: time.Now().Add(-48 * time.Hour), PayerID: sam.ID, FamilyID: &wongFamilyID},
		{Amount: decimal.NewFromFloat(12.00), Description: "Lunch", Timestamp: time.Now().Add(-24 * time.Hour), PayerID: sam.ID, FamilyID: &wongFamilyID},
		{Amount: decimal.NewFromFloat(89.99), Description: "Running shoes", Timestamp: time.Now(), PayerID: jane.ID},
	}
	for _, expense := range expenses {
		if err := expenseRepo.CreateExpense(expense); err != nil {
			logger.Log.Fatalf("Failed to create expense: %v", err)
		}
	}

	logger.Log.Info("Seed data inserted")
}
