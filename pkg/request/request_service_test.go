package request

import (
	"context"
	"testing"

	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/entities"
	"RecycleHub-Backend/internal/testutil"
	"RecycleHub-Backend/pkg/catalog"
	"RecycleHub-Backend/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (RequestService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	svc := NewRequestService(
		NewRequestRepository(db),
		catalog.NewCatalogRepository(db),
		user.NewUserRepository(db),
	)
	return svc, db
}

func createPendingRequest(t *testing.T, svc RequestService, db *gorm.DB, requester *entities.User) *domain.CollectionRequestResponse {
	t.Helper()
	item := testutil.SeedRecyclingItem(t, db, "REC-"+uuid.NewString()[:8], "PET Bottles")

	res, err := svc.CreateFromWishlist(context.Background(), domain.CreateFromWishlistRequest{
		Items: []domain.RequestItemInput{
			{RecyclingItemID: item.ID.String(), Quantity: 4, PricePerUnit: "12.50", Condition: "Good"},
		},
		PickupAddress: "12 Green Street",
	}, requester.ID.String())
	require.NoError(t, err)
	return res
}

func TestCreateFromWishlist(t *testing.T) {
	svc, db := newTestService(t)
	requester := testutil.SeedUser(t, db, "alice", domain.RoleUser)

	res := createPendingRequest(t, svc, db, requester)

	assert.Equal(t, domain.RequestStatusPending, res.Status)
	assert.Equal(t, domain.RequestTypeBrowsedItems, res.RequestType)
	assert.Equal(t, "50.00", res.TotalEstimatedValue)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, "12.50", res.Items[0].PricePerUnit)

	require.Len(t, res.StatusHistory, 1)
	assert.Equal(t, domain.RequestStatusPending, res.StatusHistory[0].Status)
	assert.Equal(t, "system", res.StatusHistory[0].ChangedBy)
}

func TestCreateRequestRejectsUnknownCatalogItem(t *testing.T) {
	svc, db := newTestService(t)
	requester := testutil.SeedUser(t, db, "alice", domain.RoleUser)

	_, err := svc.CreateFromWishlist(context.Background(), domain.CreateFromWishlistRequest{
		Items: []domain.RequestItemInput{
			{RecyclingItemID: "00000000-0000-0000-0000-000000000001", Quantity: 1, PricePerUnit: "5"},
		},
		PickupAddress: "12 Green Street",
	}, requester.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecyclingItemNotFound)
}

func TestAcceptSnapshotsCollectorIdentity(t *testing.T) {
	svc, db := newTestService(t)
	requester := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)
	res := createPendingRequest(t, svc, db, requester)

	err := svc.UpdateStatus(context.Background(), res.ID, domain.UpdateRequestStatusRequest{
		Status: domain.RequestStatusAccepted,
	}, collector.ID.String(), domain.RoleCollector)
	require.NoError(t, err)

	updated, err := svc.GetRequestByID(context.Background(), res.ID, requester.ID.String(), domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusAccepted, updated.Status)
	assert.Equal(t, collector.ID.String(), updated.CollectorID)
	assert.Equal(t, "bob", updated.CollectorName)
	assert.Equal(t, collector.Phone, updated.CollectorPhone)
}

func TestAdminCannotAcceptWithoutCollector(t *testing.T) {
	svc, db := newTestService(t)
	requester := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	admin := testutil.SeedUser(t, db, "root", domain.RoleAdmin)
	res := createPendingRequest(t, svc, db, requester)

	err := svc.UpdateStatus(context.Background(), res.ID, domain.UpdateRequestStatusRequest{
		Status: domain.RequestStatusAccepted,
	}, admin.ID.String(), domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrCollectorRequired)
}

func TestIllegalTransitionRejected(t *testing.T) {
	svc, db := newTestService(t)
	requester := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)
	res := createPendingRequest(t, svc, db, requester)

	err := svc.UpdateStatus(context.Background(), res.ID, domain.UpdateRequestStatusRequest{
		Status: domain.RequestStatusCompleted,
	}, collector.ID.String(), domain.RoleCollector)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	err = svc.UpdateStatus(context.Background(), res.ID, domain.UpdateRequestStatusRequest{
		Status: domain.RequestStatusInProgress,
	}, collector.ID.String(), domain.RoleCollector)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestStatusHistoryIsAppendOnly(t *testing.T) {
	svc, db := newTestService(t)
	requester := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)
	res := createPendingRequest(t, svc, db, requester)

	ctx := context.Background()
	for _, status := range []string{domain.RequestStatusAccepted, domain.RequestStatusInProgress} {
		require.NoError(t, svc.UpdateStatus(ctx, res.ID, domain.UpdateRequestStatusRequest{Status: status}, collector.ID.String(), domain.RoleCollector))
	}

	updated, err := svc.GetRequestByID(ctx, res.ID, requester.ID.String(), domain.RoleUser)
	require.NoError(t, err)

	require.Len(t, updated.StatusHistory, 3)
	assert.Equal(t, domain.RequestStatusPending, updated.StatusHistory[0].Status)
	assert.Equal(t, domain.RequestStatusAccepted, updated.StatusHistory[1].Status)
	assert.Equal(t, domain.RequestStatusInProgress, updated.StatusHistory[2].Status)
	assert.Equal(t, "bob", updated.StatusHistory[1].ChangedBy)
}

func TestCompleteSettlesPaymentAndCounters(t *testing.T) {
	svc, db := newTestService(t)
	requester := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)
	res := createPendingRequest(t, svc, db, requester)

	ctx := context.Background()
	require.NoError(t, svc.UpdateStatus(ctx, res.ID, domain.UpdateRequestStatusRequest{Status: domain.RequestStatusAccepted}, collector.ID.String(), domain.RoleCollector))
	require.NoError(t, svc.UpdateStatus(ctx, res.ID, domain.UpdateRequestStatusRequest{Status: domain.RequestStatusInProgress}, collector.ID.String(), domain.RoleCollector))

	err := svc.Complete(ctx, res.ID, domain.CompleteRequestRequest{
		ActualValue: "47.25",
		Items: []domain.CompleteRequestItemInput{
			{ID: res.Items[0].ID, ActualValue: "47.25"},
		},
	}, collector.ID.String(), domain.RoleCollector)
	require.NoError(t, err)

	completed, err := svc.GetRequestByID(ctx, res.ID, requester.ID.String(), domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCompleted, completed.Status)
	assert.Equal(t, domain.PaymentStatusPaid, completed.PaymentStatus)
	assert.Equal(t, "47.25", completed.ActualValue)
	assert.Equal(t, "47.25", completed.PaymentAmount)
	assert.NotNil(t, completed.PaymentDate)
	assert.NotNil(t, completed.ActualCollectionDate)
	assert.Equal(t, "47.25", completed.Items[0].ActualValue)

	var updatedCollector entities.User
	require.NoError(t, db.First(&updatedCollector, "id = ?", collector.ID).Error)
	assert.Equal(t, 1, updatedCollector.TotalCollections)
	assert.Equal(t, "47.25", updatedCollector.TotalEarnings.StringFixed(2))

	var updatedRequester entities.User
	require.NoError(t, db.First(&updatedRequester, "id = ?", requester.ID).Error)
	assert.Equal(t, 1, updatedRequester.TotalRecycledItems)
	assert.Equal(t, "47.25", updatedRequester.TotalRecycledValue.StringFixed(2))

	var paymentNotification entities.Notification
	require.NoError(t, db.First(&paymentNotification, "user_id = ? AND type = ?", requester.ID, domain.NotificationTypePayment).Error)
	assert.Contains(t, paymentNotification.Message, "47.25")
}

func TestCompleteMultiItemRequestCountsOneCollection(t *testing.T) {
	svc, db := newTestService(t)
	requester := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)
	bottles := testutil.SeedRecyclingItem(t, db, "REC-"+uuid.NewString()[:8], "PET Bottles")
	cardboard := testutil.SeedRecyclingItem(t, db, "REC-"+uuid.NewString()[:8], "Cardboard")

	ctx := context.Background()
	res, err := svc.CreateFromWishlist(ctx, domain.CreateFromWishlistRequest{
		Items: []domain.RequestItemInput{
			{RecyclingItemID: bottles.ID.String(), Quantity: 4, PricePerUnit: "12.50", Condition: "Good"},
			{RecyclingItemID: cardboard.ID.String(), Quantity: 2, PricePerUnit: "5.00", Condition: "Fair"},
		},
		PickupAddress: "12 Green Street",
	}, requester.ID.String())
	require.NoError(t, err)
	require.Len(t, res.Items, 2)

	require.NoError(t, svc.UpdateStatus(ctx, res.ID, domain.UpdateRequestStatusRequest{Status: domain.RequestStatusAccepted}, collector.ID.String(), domain.RoleCollector))
	require.NoError(t, svc.UpdateStatus(ctx, res.ID, domain.UpdateRequestStatusRequest{Status: domain.RequestStatusInProgress}, collector.ID.String(), domain.RoleCollector))
	require.NoError(t, svc.Complete(ctx, res.ID, domain.CompleteRequestRequest{ActualValue: "55.00"}, collector.ID.String(), domain.RoleCollector))

	// One completed pickup counts once on each side regardless of how
	// many line items it carried.
	var updatedRequester entities.User
	require.NoError(t, db.First(&updatedRequester, "id = ?", requester.ID).Error)
	assert.Equal(t, 1, updatedRequester.TotalRecycledItems)
	assert.Equal(t, "55.00", updatedRequester.TotalRecycledValue.StringFixed(2))

	var updatedCollector entities.User
	require.NoError(t, db.First(&updatedCollector, "id = ?", collector.ID).Error)
	assert.Equal(t, 1, updatedCollector.TotalCollections)
	assert.Equal(t, "55.00", updatedCollector.TotalEarnings.StringFixed(2))
}

func TestAcceptRejectsAlreadyAssignedRequest(t *testing.T) {
	svc, db := newTestService(t)
	requester := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)
	admin := testutil.SeedUser(t, db, "root", domain.RoleAdmin)
	res := createPendingRequest(t, svc, db, requester)

	require.NoError(t, db.Model(&entities.CollectionRequest{}).
		Where("id = ?", res.ID).
		Update("collector_id", collector.ID).Error)

	err := svc.UpdateStatus(context.Background(), res.ID, domain.UpdateRequestStatusRequest{
		Status: domain.RequestStatusAccepted,
	}, admin.ID.String(), domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrRequestAlreadyAssigned)
}

func TestCompleteRejectsNonPositiveActualValue(t *testing.T) {
	svc, db := newTestService(t)
	requester := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)
	res := createPendingRequest(t, svc, db, requester)

	ctx := context.Background()
	require.NoError(t, svc.UpdateStatus(ctx, res.ID, domain.UpdateRequestStatusRequest{Status: domain.RequestStatusAccepted}, collector.ID.String(), domain.RoleCollector))
	require.NoError(t, svc.UpdateStatus(ctx, res.ID, domain.UpdateRequestStatusRequest{Status: domain.RequestStatusInProgress}, collector.ID.String(), domain.RoleCollector))

	err := svc.Complete(ctx, res.ID, domain.CompleteRequestRequest{ActualValue: "0"}, collector.ID.String(), domain.RoleCollector)
	assert.ErrorIs(t, err, domain.ErrInvalidActualValue)
}

func TestCancelOnlyPendingAndOnlyOwner(t *testing.T) {
	svc, db := newTestService(t)
	requester := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)
	stranger := testutil.SeedUser(t, db, "carol", domain.RoleUser)

	ctx := context.Background()
	res := createPendingRequest(t, svc, db, requester)

	err := svc.Cancel(ctx, res.ID, stranger.ID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRequestAccess)

	require.NoError(t, svc.Cancel(ctx, res.ID, requester.ID.String(), domain.RoleUser))
	cancelled, err := svc.GetRequestByID(ctx, res.ID, requester.ID.String(), domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCancelled, cancelled.Status)

	// A second request moved past Pending cannot be cancelled anymore.
	other := createPendingRequest(t, svc, db, requester)
	require.NoError(t, svc.UpdateStatus(ctx, other.ID, domain.UpdateRequestStatusRequest{Status: domain.RequestStatusAccepted}, collector.ID.String(), domain.RoleCollector))
	err = svc.Cancel(ctx, other.ID, requester.ID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrRequestNotCancellable)
}

func TestGetRequestsScoping(t *testing.T) {
	svc, db := newTestService(t)
	requester := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	other := testutil.SeedUser(t, db, "dave", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)

	ctx := context.Background()
	mine := createPendingRequest(t, svc, db, requester)
	createPendingRequest(t, svc, db, other)

	own, count, err := svc.GetRequests(ctx, requester.ID.String(), domain.RoleUser, "", "", "", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, own, 1)
	assert.Equal(t, mine.ID, own[0].ID)

	available, count, err := svc.GetRequests(ctx, collector.ID.String(), domain.RoleCollector, "available", "", "", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	assert.Len(t, available, 2)

	require.NoError(t, svc.UpdateStatus(ctx, mine.ID, domain.UpdateRequestStatusRequest{Status: domain.RequestStatusAccepted}, collector.ID.String(), domain.RoleCollector))

	assigned, count, err := svc.GetRequests(ctx, collector.ID.String(), domain.RoleCollector, "assigned", "", "", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, assigned, 1)
	assert.Equal(t, mine.ID, assigned[0].ID)
}

func TestGetStats(t *testing.T) {
	svc, db := newTestService(t)
	requester := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)

	ctx := context.Background()
	first := createPendingRequest(t, svc, db, requester)
	createPendingRequest(t, svc, db, requester)
	require.NoError(t, svc.UpdateStatus(ctx, first.ID, domain.UpdateRequestStatusRequest{Status: domain.RequestStatusAccepted}, collector.ID.String(), domain.RoleCollector))

	stats, err := svc.GetStats(ctx, requester.ID.String(), domain.RoleUser)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.Pending)
	assert.EqualValues(t, 1, stats.Accepted)
	assert.EqualValues(t, 2, stats.Total)
}
