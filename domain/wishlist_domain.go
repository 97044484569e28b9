package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddWishlist     = "item added to wishlist successfully"
	MessageSuccessGetWishlist     = "wishlist retrieved successfully"
	MessageSuccessUpdateWishlist  = "wishlist entry updated successfully"
	MessageSuccessRemoveWishlist  = "item removed from wishlist successfully"
	MessageSuccessConvertWishlist = "wishlist converted to collection request successfully"

	MessageFailedAddWishlist     = "failed to add item to wishlist"
	MessageFailedGetWishlist     = "failed to retrieve wishlist"
	MessageFailedUpdateWishlist  = "failed to update wishlist entry"
	MessageFailedRemoveWishlist  = "failed to remove item from wishlist"
	MessageFailedConvertWishlist = "failed to convert wishlist to collection request"

	ErrWishlistEntryNotFound = errors.New("wishlist entry not found")
	ErrDuplicateWishlistItem = errors.New("item is already in your wishlist")
	ErrEmptyWishlist         = errors.New("wishlist has no entries to convert")
)

type (
	AddWishlistRequest struct {
		RecyclingItemID string `json:"recycling_item_id" validate:"required,uuid"`
		Quantity        int    `json:"quantity" validate:"omitempty,min=1"`
		Notes           string `json:"notes" validate:"omitempty,max=255"`
	}

	UpdateWishlistRequest struct {
		Quantity int    `json:"quantity" validate:"omitempty,min=1"`
		Notes    string `json:"notes" validate:"omitempty,max=255"`
	}

	WishlistResponse struct {
		ID            string                 `json:"id"`
		RecyclingItem *RecyclingItemResponse `json:"recycling_item,omitempty"`
		Quantity      int                    `json:"quantity"`
		Notes         string                 `json:"notes,omitempty"`
		CreatedAt     time.Time              `json:"created_at"`
	}

	ConvertWishlistRequest struct {
		Items         []RequestItemInput `json:"items" validate:"required,min=1,dive"`
		PickupAddress string             `json:"pickup_address" validate:"required,max=255"`
		Notes         string             `json:"notes" validate:"omitempty,max=500"`
	}
)
