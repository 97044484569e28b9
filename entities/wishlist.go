package entities

import (
	"github.com/google/uuid"
)

type Wishlist struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	RecyclingItemID uuid.UUID `json:"recycling_item_id"`
	Quantity        int       `gorm:"default:1" json:"quantity"`
	Notes           string    `json:"notes,omitempty"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`

	User          *User          `gorm:"foreignKey:UserID"`
	RecyclingItem *RecyclingItem `gorm:"foreignKey:RecyclingItemID"`
	Timestamp
}
