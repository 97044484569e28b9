package migration

import (
	"fmt"
	"log"

	"RecycleHub-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
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
		log.Fatalf("Error migrating database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
