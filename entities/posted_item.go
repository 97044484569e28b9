package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PostedItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	ItemName       string          `json:"item_name"`
	Category       string          `json:"category"`
	Quantity       int             `json:"quantity"`
	Condition      string          `json:"condition"` // "New", "Good", "Fair", "Poor"
	Location       string          `json:"location"`
	Description    string          `json:"description,omitempty"`
	ImageURL       string          `json:"image_url,omitempty"`
	EstimatedValue decimal.Decimal `gorm:"type:decimal(12,2)" json:"estimated_value"`
	Status         string          `gorm:"default:Posted" json:"status"` // "Posted", "Pending", "Accepted", "In Progress", "Completed", "Rejected"

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
