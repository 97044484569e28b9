package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Timestamp struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name            string    `json:"name"`
	Email           string    `gorm:"uniqueIndex" json:"email"`
	Password        string    `json:"-"`
	Phone           string    `json:"phone,omitempty"`
	Address         string    `json:"address,omitempty"`
	Role            string    `gorm:"default:user" json:"role"` // "user", "collector", "admin"
	ProfileImageURL string    `json:"profile_image_url,omitempty"`

	// Derived fields, mutated only by review aggregation and the
	// collection completion flow.
	Rating             decimal.Decimal `gorm:"type:decimal(3,2);default:0" json:"rating"`
	TotalCollections   int             `gorm:"default:0" json:"total_collections"`
	TotalEarnings      decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_earnings"`
	TotalRecycledItems int             `gorm:"default:0" json:"total_recycled_items"`
	TotalRecycledValue decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_recycled_value"`

	IsActive   bool `gorm:"default:true" json:"is_active"`
	IsVerified bool `gorm:"default:false" json:"is_verified"`

	Timestamp
}
