package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"uniqueIndex" json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}

type RecyclingItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ItemID      string    `gorm:"uniqueIndex" json:"item_id"` // business key, e.g. "REC-014"
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       string    `json:"price"` // display text, e.g. "Est. Rs.12/Kg"
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}
