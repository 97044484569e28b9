package wishlist

import (
	"context"
	"testing"

	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/internal/testutil"
	"RecycleHub-Backend/pkg/catalog"
	"RecycleHub-Backend/pkg/request"
	"RecycleHub-Backend/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (WishlistService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	catalogRepo := catalog.NewCatalogRepository(db)
	requestService := request.NewRequestService(
		request.NewRequestRepository(db),
		catalogRepo,
		user.NewUserRepository(db),
	)
	svc := NewWishlistService(NewWishlistRepository(db), catalogRepo, requestService)
	return svc, db
}

func TestAddItemRejectsDuplicates(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	item := testutil.SeedRecyclingItem(t, db, "REC-"+uuid.NewString()[:8], "PET Bottles")

	ctx := context.Background()
	entry, err := svc.AddItem(ctx, domain.AddWishlistRequest{
		RecyclingItemID: item.ID.String(),
	}, owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Quantity)
	require.NotNil(t, entry.RecyclingItem)
	assert.Equal(t, "PET Bottles", entry.RecyclingItem.Name)

	_, err = svc.AddItem(ctx, domain.AddWishlistRequest{
		RecyclingItemID: item.ID.String(),
	}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrDuplicateWishlistItem)
}

func TestAddItemRejectsUnknownCatalogItem(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.SeedUser(t, db, "alice", domain.RoleUser)

	_, err := svc.AddItem(context.Background(), domain.AddWishlistRequest{
		RecyclingItemID: "00000000-0000-0000-0000-000000000001",
	}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecyclingItemNotFound)
}

func TestUpdateAndRemoveCheckOwnership(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	stranger := testutil.SeedUser(t, db, "carol", domain.RoleUser)
	item := testutil.SeedRecyclingItem(t, db, "REC-"+uuid.NewString()[:8], "Cardboard")

	ctx := context.Background()
	entry, err := svc.AddItem(ctx, domain.AddWishlistRequest{
		RecyclingItemID: item.ID.String(),
		Quantity:        2,
	}, owner.ID.String())
	require.NoError(t, err)

	_, err = svc.UpdateEntry(ctx, entry.ID, domain.UpdateWishlistRequest{Quantity: 5}, stranger.ID.String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	updated, err := svc.UpdateEntry(ctx, entry.ID, domain.UpdateWishlistRequest{Quantity: 5, Notes: "weekend pickup"}, owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, "weekend pickup", updated.Notes)

	err = svc.RemoveEntry(ctx, entry.ID, stranger.ID.String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	require.NoError(t, svc.RemoveEntry(ctx, entry.ID, owner.ID.String()))

	// Removed entries no longer resolve by id.
	_, err = svc.UpdateEntry(ctx, entry.ID, domain.UpdateWishlistRequest{Quantity: 3}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrWishlistEntryNotFound)

	_, count, err := svc.GetUserWishlist(ctx, owner.ID.String(), 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestConvertToRequestDeactivatesMatchedEntries(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	bottles := testutil.SeedRecyclingItem(t, db, "REC-"+uuid.NewString()[:8], "PET Bottles")
	cardboard := testutil.SeedRecyclingItem(t, db, "REC-"+uuid.NewString()[:8], "Cardboard")

	ctx := context.Background()
	_, err := svc.AddItem(ctx, domain.AddWishlistRequest{RecyclingItemID: bottles.ID.String(), Quantity: 4}, owner.ID.String())
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, domain.AddWishlistRequest{RecyclingItemID: cardboard.ID.String(), Quantity: 2}, owner.ID.String())
	require.NoError(t, err)

	res, err := svc.ConvertToRequest(ctx, domain.ConvertWishlistRequest{
		Items: []domain.RequestItemInput{
			{RecyclingItemID: bottles.ID.String(), Quantity: 4, PricePerUnit: "12.50", Condition: "Good"},
		},
		PickupAddress: "12 Green Street",
	}, owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.RequestTypeBrowsedItems, res.RequestType)
	assert.Equal(t, domain.RequestStatusPending, res.Status)
	assert.Equal(t, "50.00", res.TotalEstimatedValue)

	remaining, count, err := svc.GetUserWishlist(ctx, owner.ID.String(), 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Cardboard", remaining[0].RecyclingItem.Name)
}

func TestConvertToRequestOnEmptyWishlist(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.SeedUser(t, db, "alice", domain.RoleUser)
	item := testutil.SeedRecyclingItem(t, db, "REC-"+uuid.NewString()[:8], "PET Bottles")

	_, err := svc.ConvertToRequest(context.Background(), domain.ConvertWishlistRequest{
		Items: []domain.RequestItemInput{
			{RecyclingItemID: item.ID.String(), Quantity: 1, PricePerUnit: "5"},
		},
		PickupAddress: "12 Green Street",
	}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrEmptyWishlist)
}
