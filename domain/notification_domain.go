package domain

import (
	"errors"
	"time"
)

const (
	NotificationTypeStatusUpdate = "status_update"
	NotificationTypePayment      = "payment"
	NotificationTypeReview       = "review"
	NotificationTypeSystem       = "system"
)

var (
	MessageSuccessGetNotifications  = "notifications retrieved successfully"
	MessageSuccessMarkAsRead        = "notification marked as read"
	MessageSuccessMarkAllAsRead     = "all notifications marked as read"
	MessageSuccessClearNotifications = "old notifications cleared successfully"

	MessageFailedGetNotifications   = "failed to retrieve notifications"
	MessageFailedMarkAsRead         = "failed to mark notification as read"
	MessageFailedClearNotifications = "failed to clear old notifications"

	ErrNotificationNotFound = errors.New("notification not found")
)

type (
	NotificationResponse struct {
		ID                  string    `json:"id"`
		Title               string    `json:"title"`
		Message             string    `json:"message"`
		Type                string    `json:"type"`
		IsRead              bool      `json:"is_read"`
		CollectionRequestID string    `json:"collection_request_id,omitempty"`
		ReviewID            string    `json:"review_id,omitempty"`
		CreatedAt           time.Time `json:"created_at"`
	}

	UnreadCountResponse struct {
		UnreadCount int64 `json:"unread_count"`
	}

	ClearNotificationsRequest struct {
		OlderThanDays int `json:"older_than_days" validate:"omitempty,min=1"`
	}
)
