package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WithdrawalTransaction struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	Status        string          `gorm:"default:Pending" json:"status"` // "Pending", "Processing", "Completed", "Failed"
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	AccountName   string          `json:"account_name"`
	ReferenceNo   string          `json:"reference_no,omitempty"` // payout gateway reference
	Notes         string          `json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
