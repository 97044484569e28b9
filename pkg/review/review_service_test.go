package review

import (
	"context"
	"testing"

	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/entities"
	"RecycleHub-Backend/internal/testutil"
	"RecycleHub-Backend/pkg/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (ReviewService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	svc := NewReviewService(NewReviewRepository(db), user.NewUserRepository(db))
	return svc, db
}

func collectorRating(t *testing.T, db *gorm.DB, collector *entities.User) string {
	t.Helper()
	var updated entities.User
	require.NoError(t, db.First(&updated, "id = ?", collector.ID).Error)
	return updated.Rating.StringFixed(2)
}

func TestCreateReviewUpdatesCollectorRating(t *testing.T) {
	svc, db := newTestService(t)
	reviewerA := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	reviewerB := testutil.SeedUser(t, db, "carol", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)

	ctx := context.Background()
	_, err := svc.CreateReview(ctx, domain.CreateReviewRequest{
		CollectorID: collector.ID.String(),
		Rating:      5,
	}, reviewerA.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "5.00", collectorRating(t, db, collector))

	_, err = svc.CreateReview(ctx, domain.CreateReviewRequest{
		CollectorID: collector.ID.String(),
		Rating:      2,
	}, reviewerB.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "3.50", collectorRating(t, db, collector))

	var notification entities.Notification
	require.NoError(t, db.First(&notification, "user_id = ? AND type = ?", collector.ID, domain.NotificationTypeReview).Error)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	svc, db := newTestService(t)
	reviewer := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)

	ctx := context.Background()
	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateReview(ctx, domain.CreateReviewRequest{
			CollectorID: collector.ID.String(),
			Rating:      rating,
		}, reviewer.ID.String())
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	}

	for _, rating := range []int{1, 5} {
		_, err := svc.CreateReview(ctx, domain.CreateReviewRequest{
			CollectorID: collector.ID.String(),
			Rating:      rating,
		}, reviewer.ID.String())
		if rating == 1 {
			require.NoError(t, err)
		} else {
			// Second attempt by the same reviewer is a duplicate.
			assert.ErrorIs(t, err, domain.ErrDuplicateReview)
		}
	}
}

func TestCreateReviewRejectsSelfAndNonCollector(t *testing.T) {
	svc, db := newTestService(t)
	reviewer := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	plainUser := testutil.SeedUser(t, db, "dave", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)

	ctx := context.Background()
	_, err := svc.CreateReview(ctx, domain.CreateReviewRequest{
		CollectorID: collector.ID.String(),
		Rating:      4,
	}, collector.ID.String())
	assert.ErrorIs(t, err, domain.ErrCannotReviewSelf)

	_, err = svc.CreateReview(ctx, domain.CreateReviewRequest{
		CollectorID: plainUser.ID.String(),
		Rating:      4,
	}, reviewer.ID.String())
	assert.ErrorIs(t, err, domain.ErrCollectorNotFound)
}

func TestDeleteReviewRecalculatesRating(t *testing.T) {
	svc, db := newTestService(t)
	reviewer := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)

	ctx := context.Background()
	created, err := svc.CreateReview(ctx, domain.CreateReviewRequest{
		CollectorID: collector.ID.String(),
		Rating:      4,
	}, reviewer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "4.00", collectorRating(t, db, collector))

	require.NoError(t, svc.DeleteReview(ctx, created.ID, reviewer.ID.String(), domain.RoleUser))
	assert.Equal(t, "0.00", collectorRating(t, db, collector))

	// Deleting frees the reviewer to review this collector again.
	_, err = svc.CreateReview(ctx, domain.CreateReviewRequest{
		CollectorID: collector.ID.String(),
		Rating:      3,
	}, reviewer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "3.00", collectorRating(t, db, collector))
}

func TestUpdateReviewOwnershipAndRecalculate(t *testing.T) {
	svc, db := newTestService(t)
	reviewer := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	stranger := testutil.SeedUser(t, db, "carol", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)

	ctx := context.Background()
	created, err := svc.CreateReview(ctx, domain.CreateReviewRequest{
		CollectorID: collector.ID.String(),
		Rating:      2,
	}, reviewer.ID.String())
	require.NoError(t, err)

	err = svc.UpdateReview(ctx, created.ID, domain.UpdateReviewRequest{Rating: 5}, stranger.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedReviewAccess)

	require.NoError(t, svc.UpdateReview(ctx, created.ID, domain.UpdateReviewRequest{Rating: 5}, reviewer.ID.String()))
	assert.Equal(t, "5.00", collectorRating(t, db, collector))
}

func TestAnonymousReviewerIsMasked(t *testing.T) {
	svc, db := newTestService(t)
	reviewer := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)

	ctx := context.Background()
	_, err := svc.CreateReview(ctx, domain.CreateReviewRequest{
		CollectorID: collector.ID.String(),
		Rating:      4,
		IsAnonymous: true,
	}, reviewer.ID.String())
	require.NoError(t, err)

	reviews, count, err := svc.GetCollectorReviews(ctx, collector.ID.String(), 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Anonymous", reviews[0].ReviewerName)
}
