package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateReview = "review created successfully"
	MessageSuccessGetReviews   = "reviews retrieved successfully"
	MessageSuccessUpdateReview = "review updated successfully"
	MessageSuccessDeleteReview = "review deleted successfully"

	MessageFailedCreateReview = "failed to create review"
	MessageFailedGetReviews   = "failed to retrieve reviews"
	MessageFailedUpdateReview = "failed to update review"
	MessageFailedDeleteReview = "failed to delete review"

	ErrReviewNotFound            = errors.New("review not found")
	ErrCollectorNotFound         = errors.New("collector not found")
	ErrDuplicateReview           = errors.New("you have already reviewed this collector")
	ErrInvalidRating             = errors.New("rating must be between 1 and 5")
	ErrUnauthorizedReviewAccess  = errors.New("unauthorized access to review")
	ErrCannotReviewSelf          = errors.New("you cannot review yourself")
)

type (
	CreateReviewRequest struct {
		CollectorID         string `json:"collector_id" validate:"required,uuid"`
		CollectionRequestID string `json:"collection_request_id" validate:"omitempty,uuid"`
		Rating              int    `json:"rating" validate:"required,min=1,max=5"`
		Comment             string `json:"comment" validate:"omitempty,max=1000"`
		IsAnonymous         bool   `json:"is_anonymous"`
	}

	UpdateReviewRequest struct {
		Rating      int    `json:"rating" validate:"omitempty,min=1,max=5"`
		Comment     string `json:"comment" validate:"omitempty,max=1000"`
		IsAnonymous *bool  `json:"is_anonymous"`
	}

	ReviewResponse struct {
		ID           string    `json:"id"`
		CollectorID  string    `json:"collector_id"`
		ReviewerName string    `json:"reviewer_name"`
		Rating       int       `json:"rating"`
		Comment      string    `json:"comment,omitempty"`
		IsAnonymous  bool      `json:"is_anonymous"`
		IsVerified   bool      `json:"is_verified"`
		CreatedAt    time.Time `json:"created_at"`
	}

	CollectorRatingSummary struct {
		CollectorID  string `json:"collector_id"`
		Rating       string `json:"rating"`
		TotalReviews int64  `json:"total_reviews"`
	}
)
