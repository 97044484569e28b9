package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreatePostedItem = "item posted successfully"
	MessageSuccessGetPostedItems   = "posted items retrieved successfully"
	MessageSuccessUpdatePostedItem = "posted item updated successfully"
	MessageSuccessCancelPostedItem = "posted item cancelled successfully"

	MessageFailedCreatePostedItem = "failed to post item"
	MessageFailedGetPostedItems   = "failed to retrieve posted items"
	MessageFailedUpdatePostedItem = "failed to update posted item"
	MessageFailedCancelPostedItem = "failed to cancel posted item"

	ErrPostedItemNotFound        = errors.New("posted item not found")
	ErrPostedItemNotEditable     = errors.New("posted item can no longer be edited")
	ErrInvalidQuantity           = errors.New("quantity must be greater than zero")
	ErrInvalidEstimatedValue     = errors.New("estimated value must be greater than zero")
	ErrUnauthorizedItemAccess    = errors.New("unauthorized access to posted item")
)

type (
	CreatePostedItemRequest struct {
		ItemName       string                `json:"item_name" form:"item_name" validate:"required,max=100"`
		Category       string                `json:"category" form:"category" validate:"required,max=50"`
		Quantity       int                   `json:"quantity" form:"quantity" validate:"required,min=1"`
		Condition      string                `json:"condition" form:"condition" validate:"required,oneof=New Good Fair Poor"`
		Location       string                `json:"location" form:"location" validate:"required,max=255"`
		Description    string                `json:"description" form:"description" validate:"omitempty,max=500"`
		EstimatedValue string                `json:"estimated_value" form:"estimated_value" validate:"required"`
		Image          *multipart.FileHeader `json:"-" form:"image"`
	}

	UpdatePostedItemRequest struct {
		ItemName       string `json:"item_name" validate:"omitempty,max=100"`
		Quantity       int    `json:"quantity" validate:"omitempty,min=1"`
		Condition      string `json:"condition" validate:"omitempty,oneof=New Good Fair Poor"`
		Location       string `json:"location" validate:"omitempty,max=255"`
		Description    string `json:"description" validate:"omitempty,max=500"`
		EstimatedValue string `json:"estimated_value" validate:"omitempty"`
	}

	PostedItemResponse struct {
		ID                  string    `json:"id"`
		UserID              string    `json:"user_id"`
		ItemName            string    `json:"item_name"`
		Category            string    `json:"category"`
		Quantity            int       `json:"quantity"`
		Condition           string    `json:"condition"`
		Location            string    `json:"location"`
		Description         string    `json:"description,omitempty"`
		ImageURL            string    `json:"image_url,omitempty"`
		EstimatedValue      string    `json:"estimated_value"`
		Status              string    `json:"status"`
		CollectionRequestID string    `json:"collection_request_id,omitempty"`
		CreatedAt           time.Time `json:"created_at"`
	}
)
