package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type CollectionRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	CollectorID *uuid.UUID `json:"collector_id,omitempty"`
	RequestType string     `json:"request_type"`           // "user_posted", "browsed_items", "scheduled"
	Status      string     `gorm:"default:Pending" json:"status"` // "Pending", "Accepted", "In Progress", "Completed", "Rejected", "Cancelled"

	TotalEstimatedValue decimal.Decimal  `gorm:"type:decimal(12,2)" json:"total_estimated_value"`
	ActualValue         *decimal.Decimal `gorm:"type:decimal(12,2)" json:"actual_value,omitempty"`

	PaymentStatus string           `gorm:"default:Pending" json:"payment_status"` // "Pending", "Paid", "Failed"
	PaymentAmount *decimal.Decimal `gorm:"type:decimal(12,2)" json:"payment_amount,omitempty"`
	PaymentDate   *time.Time       `json:"payment_date,omitempty"`

	RequestDate             time.Time  `json:"request_date"`
	EstimatedCollectionDate *time.Time `json:"estimated_collection_date,omitempty"`
	ActualCollectionDate    *time.Time `json:"actual_collection_date,omitempty"`

	PickupAddress   string `json:"pickup_address,omitempty"`
	CollectionNotes string `json:"collection_notes,omitempty"`

	// Point-in-time copies taken when the request is accepted. These are
	// display snapshots, not live collector data; they are never
	// rehydrated from the collector record.
	CollectorName   string           `json:"collector_name,omitempty"`
	CollectorPhone  string           `json:"collector_phone,omitempty"`
	CollectorRating *decimal.Decimal `gorm:"type:decimal(3,2)" json:"collector_rating,omitempty"`

	// Append-only log of {status, timestamp, message, changed_by} entries.
	StatusHistory datatypes.JSON `json:"status_history"`

	User      *User                    `gorm:"foreignKey:UserID"`
	Collector *User                    `gorm:"foreignKey:CollectorID"`
	Items     []*CollectionRequestItem `gorm:"foreignKey:CollectionRequestID"`
	Timestamp
}

type CollectionRequestItem struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CollectionRequestID uuid.UUID `json:"collection_request_id"`

	// Exactly one of these is set, depending on whether the line item
	// originates from a posted item or a catalog entry.
	PostedItemID    *uuid.UUID `json:"posted_item_id,omitempty"`
	RecyclingItemID *uuid.UUID `json:"recycling_item_id,omitempty"`

	Quantity       int              `json:"quantity"`
	PricePerUnit   decimal.Decimal  `gorm:"type:decimal(12,2)" json:"price_per_unit"`
	EstimatedValue decimal.Decimal  `gorm:"type:decimal(12,2)" json:"estimated_value"`
	ActualValue    *decimal.Decimal `gorm:"type:decimal(12,2)" json:"actual_value,omitempty"`
	Condition      string           `json:"condition,omitempty"`
	Notes          string           `json:"notes,omitempty"`

	CollectionRequest *CollectionRequest `gorm:"foreignKey:CollectionRequestID"`
	PostedItem        *PostedItem        `gorm:"foreignKey:PostedItemID"`
	RecyclingItem     *RecyclingItem     `gorm:"foreignKey:RecyclingItemID"`
	Timestamp
}
