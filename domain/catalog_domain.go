package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecyclingItems   = "recycling items retrieved successfully"
	MessageSuccessCreateRecyclingItem = "recycling item created successfully"
	MessageSuccessUpdateRecyclingItem = "recycling item updated successfully"
	MessageSuccessDeleteRecyclingItem = "recycling item deleted successfully"
	MessageSuccessGetCategories       = "categories retrieved successfully"
	MessageSuccessCreateCategory      = "category created successfully"
	MessageSuccessUpdateCategory      = "category updated successfully"
	MessageSuccessDeleteCategory      = "category deleted successfully"

	MessageFailedGetRecyclingItems   = "failed to retrieve recycling items"
	MessageFailedCreateRecyclingItem = "failed to create recycling item"
	MessageFailedUpdateRecyclingItem = "failed to update recycling item"
	MessageFailedDeleteRecyclingItem = "failed to delete recycling item"
	MessageFailedGetCategories       = "failed to retrieve categories"
	MessageFailedManageCategory      = "failed to manage category"

	ErrRecyclingItemNotFound      = errors.New("recycling item not found")
	ErrRecyclingItemAlreadyExists = errors.New("recycling item already exists")
	ErrCategoryNotFound           = errors.New("category not found")
	ErrCategoryAlreadyExists      = errors.New("category already exists")
)

type (
	CreateRecyclingItemRequest struct {
		ItemID      string                `json:"item_id" form:"item_id" validate:"required,max=50"`
		Name        string                `json:"name" form:"name" validate:"required,max=100"`
		Category    string                `json:"category" form:"category" validate:"required,max=50"`
		Price       string                `json:"price" form:"price" validate:"required,max=50"`
		Description string                `json:"description" form:"description" validate:"omitempty,max=500"`
		SortOrder   int                   `json:"sort_order" form:"sort_order" validate:"omitempty,min=0"`
		Image       *multipart.FileHeader `json:"-" form:"image"`
	}

	UpdateRecyclingItemRequest struct {
		Name        string                `json:"name" form:"name" validate:"omitempty,max=100"`
		Category    string                `json:"category" form:"category" validate:"omitempty,max=50"`
		Price       string                `json:"price" form:"price" validate:"omitempty,max=50"`
		Description string                `json:"description" form:"description" validate:"omitempty,max=500"`
		SortOrder   *int                  `json:"sort_order" form:"sort_order" validate:"omitempty,min=0"`
		Image       *multipart.FileHeader `json:"-" form:"image"`
	}

	RecyclingItemResponse struct {
		ID          string    `json:"id"`
		ItemID      string    `json:"item_id"`
		Name        string    `json:"name"`
		Category    string    `json:"category"`
		Price       string    `json:"price"`
		Description string    `json:"description,omitempty"`
		ImageURL    string    `json:"image_url,omitempty"`
		SortOrder   int       `json:"sort_order"`
		CreatedAt   time.Time `json:"created_at"`
	}

	CreateCategoryRequest struct {
		Name        string `json:"name" validate:"required,max=50"`
		Description string `json:"description" validate:"omitempty,max=255"`
		Icon        string `json:"icon" validate:"omitempty,max=50"`
		SortOrder   int    `json:"sort_order" validate:"omitempty,min=0"`
	}

	UpdateCategoryRequest struct {
		Name        string `json:"name" validate:"omitempty,max=50"`
		Description string `json:"description" validate:"omitempty,max=255"`
		Icon        string `json:"icon" validate:"omitempty,max=50"`
		SortOrder   *int   `json:"sort_order" validate:"omitempty,min=0"`
	}

	CategoryResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Icon        string `json:"icon,omitempty"`
		SortOrder   int    `json:"sort_order"`
	}
)
