package testutil

import (
	"testing"

	"RecycleHub-Backend/entities"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens an in-memory database with the full schema migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.RecyclingItem{},
		&entities.PostedItem{},
		&entities.CollectionRequest{},
		&entities.CollectionRequestItem{},
		&entities.Review{},
		&entities.Notification{},
		&entities.Wishlist{},
		&entities.WithdrawalTransaction{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func SeedUser(t *testing.T, db *gorm.DB, name, role string) *entities.User {
	t.Helper()

	user := &entities.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    name + "@example.com",
		Password: "hashed",
		Phone:    "08123456789",
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func SeedRecyclingItem(t *testing.T, db *gorm.DB, itemID, name string) *entities.RecyclingItem {
	t.Helper()

	item := &entities.RecyclingItem{
		ID:       uuid.New(),
		ItemID:   itemID,
		Name:     name,
		Category: "Plastic",
		Price:    "Est. Rs.12/Kg",
		IsActive: true,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed recycling item: %v", err)
	}
	return item
}

func SeedEarnings(t *testing.T, db *gorm.DB, userID uuid.UUID, amount string) {
	t.Helper()

	earnings, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("parse earnings: %v", err)
	}
	if err := db.Model(&entities.User{}).Where("id = ?", userID).Update("total_earnings", earnings).Error; err != nil {
		t.Fatalf("seed earnings: %v", err)
	}
}
