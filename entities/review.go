package entities

import (
	"github.com/google/uuid"
)

type Review struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID              uuid.UUID  `json:"user_id"`      // reviewer
	CollectorID         uuid.UUID  `json:"collector_id"` // reviewed collector
	CollectionRequestID *uuid.UUID `json:"collection_request_id,omitempty"`
	Rating              int        `json:"rating"` // 1..5
	Comment             string     `json:"comment,omitempty"`
	IsAnonymous         bool       `gorm:"default:false" json:"is_anonymous"`
	IsVerified          bool       `gorm:"default:false" json:"is_verified"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`

	User              *User              `gorm:"foreignKey:UserID"`
	Collector         *User              `gorm:"foreignKey:CollectorID"`
	CollectionRequest *CollectionRequest `gorm:"foreignKey:CollectionRequestID"`
	Timestamp
}
