package domain

import (
	"errors"
	"time"
)

const (
	WithdrawalStatusPending    = "Pending"
	WithdrawalStatusProcessing = "Processing"
	WithdrawalStatusCompleted  = "Completed"
	WithdrawalStatusFailed     = "Failed"
)

var (
	MessageSuccessRequestWithdrawal = "withdrawal requested successfully"
	MessageSuccessGetWithdrawals    = "withdrawals retrieved successfully"
	MessageSuccessUpdateWithdrawal  = "withdrawal status updated successfully"

	MessageFailedRequestWithdrawal = "failed to request withdrawal"
	MessageFailedGetWithdrawals    = "failed to retrieve withdrawals"
	MessageFailedUpdateWithdrawal  = "failed to update withdrawal status"

	ErrInsufficientBalance     = errors.New("insufficient balance for withdrawal")
	ErrInvalidWithdrawalAmount = errors.New("withdrawal amount must be greater than zero")
	ErrWithdrawalNotFound      = errors.New("withdrawal not found")
)

type (
	UpdateWithdrawalStatusRequest struct {
		Status      string `json:"status" validate:"required,oneof=Processing Completed Failed"`
		ReferenceNo string `json:"reference_no" validate:"omitempty,max=100"`
	}

	RequestWithdrawalRequest struct {
		Amount        string `json:"amount" validate:"required"`
		BankName      string `json:"bank_name" validate:"required,max=50"`
		AccountNumber string `json:"account_number" validate:"required,max=30"`
		AccountName   string `json:"account_name" validate:"required,max=100"`
		Notes         string `json:"notes" validate:"omitempty,max=255"`
	}

	WithdrawalResponse struct {
		ID            string    `json:"id"`
		Amount        string    `json:"amount"`
		Status        string    `json:"status"`
		BankName      string    `json:"bank_name"`
		AccountNumber string    `json:"account_number"`
		AccountName   string    `json:"account_name"`
		ReferenceNo   string    `json:"reference_no,omitempty"`
		Notes         string    `json:"notes,omitempty"`
		CreatedAt     time.Time `json:"created_at"`
	}

	BalanceResponse struct {
		TotalEarnings    string `json:"total_earnings"`
		TotalWithdrawn   string `json:"total_withdrawn"`
		AvailableBalance string `json:"available_balance"`
	}
)
