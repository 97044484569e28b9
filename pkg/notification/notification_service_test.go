package notification

import (
	"context"
	"testing"
	"time"

	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/entities"
	"RecycleHub-Backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (NotificationService, NotificationRepository, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	repo := NewNotificationRepository(db)
	return NewNotificationService(repo), repo, db
}

func seedNotification(t *testing.T, repo NotificationRepository, userID uuid.UUID, read bool) *entities.Notification {
	t.Helper()
	n := &entities.Notification{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    "Collection Request Update",
		Message:  "Request status changed to Accepted",
		Type:     domain.NotificationTypeStatusUpdate,
		IsRead:   read,
		IsActive: true,
	}
	require.NoError(t, repo.Create(context.Background(), n))
	return n
}

func TestGetUserNotificationsUnreadFilter(t *testing.T) {
	svc, repo, db := newTestService(t)
	owner := testutil.SeedUser(t, db, "alice", domain.RoleUser)

	seedNotification(t, repo, owner.ID, false)
	seedNotification(t, repo, owner.ID, true)

	ctx := context.Background()
	all, count, err := svc.GetUserNotifications(ctx, owner.ID.String(), false, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	assert.Len(t, all, 2)

	unread, count, err := svc.GetUserNotifications(ctx, owner.ID.String(), true, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, unread, 1)
	assert.False(t, unread[0].IsRead)
}

func TestMarkAsReadChecksOwnership(t *testing.T) {
	svc, repo, db := newTestService(t)
	owner := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	stranger := testutil.SeedUser(t, db, "carol", domain.RoleUser)
	n := seedNotification(t, repo, owner.ID, false)

	ctx := context.Background()
	err := svc.MarkAsRead(ctx, n.ID.String(), stranger.ID.String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	require.NoError(t, svc.MarkAsRead(ctx, n.ID.String(), owner.ID.String()))
	unread, err := svc.GetUnreadCount(ctx, owner.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 0, unread.UnreadCount)

	err = svc.MarkAsRead(ctx, uuid.NewString(), owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}

func TestMarkAllAsReadIsIdempotent(t *testing.T) {
	svc, repo, db := newTestService(t)
	owner := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	seedNotification(t, repo, owner.ID, false)
	seedNotification(t, repo, owner.ID, false)

	ctx := context.Background()
	require.NoError(t, svc.MarkAllAsRead(ctx, owner.ID.String()))
	require.NoError(t, svc.MarkAllAsRead(ctx, owner.ID.String()))

	unread, err := svc.GetUnreadCount(ctx, owner.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 0, unread.UnreadCount)
}

func TestClearOldNotifications(t *testing.T) {
	svc, repo, db := newTestService(t)
	owner := testutil.SeedUser(t, db, "alice", domain.RoleUser)

	old := seedNotification(t, repo, owner.ID, true)
	recent := seedNotification(t, repo, owner.ID, true)
	oldUnread := seedNotification(t, repo, owner.ID, false)

	stale := time.Now().AddDate(0, 0, -60)
	require.NoError(t, db.Model(&entities.Notification{}).
		Where("id IN ?", []uuid.UUID{old.ID, oldUnread.ID}).
		Update("created_at", stale).Error)

	// Only read notifications older than the cutoff are cleared.
	cleared, err := svc.ClearOldNotifications(context.Background(), owner.ID.String(), 30)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cleared)

	remaining, count, err := svc.GetUserNotifications(context.Background(), owner.ID.String(), false, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	ids := []string{remaining[0].ID, remaining[1].ID}
	assert.Contains(t, ids, recent.ID.String())
	assert.Contains(t, ids, oldUnread.ID.String())
}
