package notification

import (
	"context"
	"errors"
	"time"

	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/entities"

	"gorm.io/gorm"
)

const defaultRetentionDays = 30

type (
	NotificationService interface {
		GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) ([]*domain.NotificationResponse, int64, error)
		GetUnreadCount(ctx context.Context, userID string) (*domain.UnreadCountResponse, error)
		MarkAsRead(ctx context.Context, id string, userID string) error
		MarkAllAsRead(ctx context.Context, userID string) error
		ClearOldNotifications(ctx context.Context, userID string, olderThanDays int) (int64, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
	}
}

func toNotificationResponse(n *entities.Notification) *domain.NotificationResponse {
	resp := &domain.NotificationResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if n.CollectionRequestID != nil {
		resp.CollectionRequestID = n.CollectionRequestID.String()
	}
	if n.ReviewID != nil {
		resp.ReviewID = n.ReviewID.String()
	}
	return resp
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) ([]*domain.NotificationResponse, int64, error) {
	notifications, count, err := s.notificationRepository.GetUserNotifications(ctx, userID, unreadOnly, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, toNotificationResponse(n))
	}
	return result, count, nil
}

func (s *notificationService) GetUnreadCount(ctx context.Context, userID string) (*domain.UnreadCountResponse, error) {
	count, err := s.notificationRepository.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.UnreadCountResponse{UnreadCount: count}, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string, userID string) error {
	notification, err := s.notificationRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}

	if notification.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.notificationRepository.MarkAsRead(ctx, id)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	return s.notificationRepository.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) ClearOldNotifications(ctx context.Context, userID string, olderThanDays int) (int64, error) {
	if olderThanDays <= 0 {
		olderThanDays = defaultRetentionDays
	}
	cutoff := time.Now().AddDate(0, 0, -olderThanDays)
	return s.notificationRepository.ClearOld(ctx, userID, cutoff)
}
