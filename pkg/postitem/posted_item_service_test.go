package postitem

import (
	"context"
	"encoding/json"
	"testing"

	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/entities"
	"RecycleHub-Backend/internal/testutil"
	"RecycleHub-Backend/pkg/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (PostedItemService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	svc := NewPostedItemService(NewPostedItemRepository(db), user.NewUserRepository(db), nil)
	return svc, db
}

func postItem(t *testing.T, svc PostedItemService, owner *entities.User) *domain.PostedItemResponse {
	t.Helper()
	res, err := svc.CreatePostedItem(context.Background(), domain.CreatePostedItemRequest{
		ItemName:       "Old Newspapers",
		Category:       "Paper",
		Quantity:       5,
		Condition:      "Good",
		Location:       "12 Green Street",
		EstimatedValue: "25.00",
	}, owner.ID.String())
	require.NoError(t, err)
	return res
}

func TestCreatePostedItemSpawnsCollectionRequest(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.SeedUser(t, db, "alice", domain.RoleUser)

	res := postItem(t, svc, owner)
	require.NotEmpty(t, res.CollectionRequestID)
	assert.Equal(t, domain.RequestStatusPending, res.Status)
	assert.Equal(t, "25.00", res.EstimatedValue)

	var request entities.CollectionRequest
	require.NoError(t, db.First(&request, "id = ?", res.CollectionRequestID).Error)
	assert.Equal(t, domain.RequestTypeUserPosted, request.RequestType)
	assert.Equal(t, domain.RequestStatusPending, request.Status)
	assert.Equal(t, "25.00", request.TotalEstimatedValue.StringFixed(2))
	assert.Equal(t, owner.ID, request.UserID)

	var items []entities.CollectionRequestItem
	require.NoError(t, db.Find(&items, "collection_request_id = ?", request.ID).Error)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].PostedItemID)
	assert.Equal(t, res.ID, items[0].PostedItemID.String())
	assert.Nil(t, items[0].RecyclingItemID)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "5.00", items[0].PricePerUnit.StringFixed(2))
	assert.Equal(t, "25.00", items[0].EstimatedValue.StringFixed(2))
}

func TestCreatePostedItemValidation(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	ctx := context.Background()

	_, err := svc.CreatePostedItem(ctx, domain.CreatePostedItemRequest{
		ItemName: "Scrap", Category: "Metal", Quantity: 0, Condition: "Good",
		Location: "here", EstimatedValue: "10",
	}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.CreatePostedItem(ctx, domain.CreatePostedItemRequest{
		ItemName: "Scrap", Category: "Metal", Quantity: 1, Condition: "Good",
		Location: "here", EstimatedValue: "-3",
	}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidEstimatedValue)

	_, err = svc.CreatePostedItem(ctx, domain.CreatePostedItemRequest{
		ItemName: "Scrap", Category: "Metal", Quantity: 1, Condition: "Good",
		Location: "here", EstimatedValue: "10",
	}, "00000000-0000-0000-0000-000000000009")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdatePostedItemFrozenOnceCollected(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	stranger := testutil.SeedUser(t, db, "carol", domain.RoleUser)
	ctx := context.Background()

	res := postItem(t, svc, owner)

	err := svc.UpdatePostedItem(ctx, res.ID, domain.UpdatePostedItemRequest{ItemName: "Magazines"}, stranger.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedItemAccess)

	require.NoError(t, svc.UpdatePostedItem(ctx, res.ID, domain.UpdatePostedItemRequest{ItemName: "Magazines"}, owner.ID.String()))

	require.NoError(t, db.Model(&entities.PostedItem{}).
		Where("id = ?", res.ID).
		Update("status", domain.RequestStatusInProgress).Error)

	err = svc.UpdatePostedItem(ctx, res.ID, domain.UpdatePostedItemRequest{ItemName: "Cardboard"}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrPostedItemNotEditable)
}

func TestCancelPostedItem(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	ctx := context.Background()

	res := postItem(t, svc, owner)
	require.NoError(t, svc.CancelPostedItem(ctx, res.ID, owner.ID.String(), domain.RoleUser))

	var item entities.PostedItem
	require.NoError(t, db.First(&item, "id = ?", res.ID).Error)
	assert.Equal(t, domain.RequestStatusRejected, item.Status)

	err := svc.CancelPostedItem(ctx, res.ID, owner.ID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrPostedItemNotEditable)
}

func TestCancelPostedItemCancelsSpawnedRequest(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	ctx := context.Background()

	res := postItem(t, svc, owner)
	require.NotEmpty(t, res.CollectionRequestID)
	require.NoError(t, svc.CancelPostedItem(ctx, res.ID, owner.ID.String(), domain.RoleUser))

	// The spawned request must leave the collectors' pool with the item.
	var request entities.CollectionRequest
	require.NoError(t, db.First(&request, "id = ?", res.CollectionRequestID).Error)
	assert.Equal(t, domain.RequestStatusCancelled, request.Status)

	var history []domain.StatusHistoryEntry
	require.NoError(t, json.Unmarshal(request.StatusHistory, &history))
	require.NotEmpty(t, history)
	assert.Equal(t, domain.RequestStatusCancelled, history[len(history)-1].Status)
	assert.Equal(t, "alice", history[len(history)-1].ChangedBy)

	var notifications []entities.Notification
	require.NoError(t, db.Find(&notifications, "collection_request_id = ?", request.ID).Error)
	assert.NotEmpty(t, notifications)
}

func TestGetUserItemsFiltersByStatus(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	ctx := context.Background()

	first := postItem(t, svc, owner)
	postItem(t, svc, owner)
	require.NoError(t, svc.CancelPostedItem(ctx, first.ID, owner.ID.String(), domain.RoleUser))

	all, count, err := svc.GetUserItems(ctx, owner.ID.String(), "", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	assert.Len(t, all, 2)

	rejected, count, err := svc.GetUserItems(ctx, owner.ID.String(), domain.RequestStatusRejected, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, rejected, 1)
	assert.Equal(t, first.ID, rejected[0].ID)
}
