package entities

import (
	"github.com/google/uuid"
)

type Notification struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID              uuid.UUID  `json:"user_id"`
	Title               string     `json:"title"`
	Message             string     `json:"message"`
	Type                string     `json:"type"` // "status_update", "payment", "review", "system"
	IsRead              bool       `gorm:"default:false" json:"is_read"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	CollectionRequestID *uuid.UUID `json:"collection_request_id,omitempty"`
	ReviewID            *uuid.UUID `json:"review_id,omitempty"`

	User              *User              `gorm:"foreignKey:UserID"`
	CollectionRequest *CollectionRequest `gorm:"foreignKey:CollectionRequestID"`
	Review            *Review            `gorm:"foreignKey:ReviewID"`
	Timestamp
}
