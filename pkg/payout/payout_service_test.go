package payout

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

func newTestService(t *testing.T) (PayoutService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	svc := NewPayoutService(NewPayoutRepository(db), user.NewUserRepository(db))
	return svc, db
}

func withdrawalRequest(amount string) domain.RequestWithdrawalRequest {
	return domain.RequestWithdrawalRequest{
		Amount:        amount,
		BankName:      "bca",
		AccountNumber: "1234567890",
		AccountName:   "Bob Collector",
	}
}

func TestRequestWithdrawalWithinBalance(t *testing.T) {
	svc, db := newTestService(t)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)
	testutil.SeedEarnings(t, db, collector.ID, "100.00")

	res, err := svc.RequestWithdrawal(context.Background(), withdrawalRequest("60"), collector.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStatusPending, res.Status)
	assert.Equal(t, "60.00", res.Amount)
	assert.Equal(t, "bca", res.BankName)
}

func TestRequestWithdrawalOverBalance(t *testing.T) {
	svc, db := newTestService(t)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)
	testutil.SeedEarnings(t, db, collector.ID, "100.00")

	ctx := context.Background()
	_, err := svc.RequestWithdrawal(ctx, withdrawalRequest("60"), collector.ID.String())
	require.NoError(t, err)

	// A second withdrawal is checked against what is left, not the raw earnings.
	_, err = svc.RequestWithdrawal(ctx, withdrawalRequest("60"), collector.ID.String())
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	_, err = svc.RequestWithdrawal(ctx, withdrawalRequest("40"), collector.ID.String())
	assert.NoError(t, err)
}

func TestRequestWithdrawalValidatesAmount(t *testing.T) {
	svc, db := newTestService(t)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)
	testutil.SeedEarnings(t, db, collector.ID, "100.00")

	ctx := context.Background()
	for _, amount := range []string{"0", "-5", "abc"} {
		_, err := svc.RequestWithdrawal(ctx, withdrawalRequest(amount), collector.ID.String())
		assert.ErrorIs(t, err, domain.ErrInvalidWithdrawalAmount, "amount %q", amount)
	}
}

func TestRequestWithdrawalUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RequestWithdrawal(context.Background(), withdrawalRequest("10"), "00000000-0000-0000-0000-000000000001")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetBalanceExcludesFailedWithdrawals(t *testing.T) {
	svc, db := newTestService(t)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)
	testutil.SeedEarnings(t, db, collector.ID, "200.00")

	ctx := context.Background()
	first, err := svc.RequestWithdrawal(ctx, withdrawalRequest("50"), collector.ID.String())
	require.NoError(t, err)
	_, err = svc.RequestWithdrawal(ctx, withdrawalRequest("30"), collector.ID.String())
	require.NoError(t, err)

	balance, err := svc.GetBalance(ctx, collector.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "200.00", balance.TotalEarnings)
	assert.Equal(t, "80.00", balance.TotalWithdrawn)
	assert.Equal(t, "120.00", balance.AvailableBalance)

	// Failed payouts release the reserved amount back to the balance.
	require.NoError(t, db.Model(&entities.WithdrawalTransaction{}).
		Where("id = ?", first.ID).
		Update("status", domain.WithdrawalStatusFailed).Error)

	balance, err = svc.GetBalance(ctx, collector.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "30.00", balance.TotalWithdrawn)
	assert.Equal(t, "170.00", balance.AvailableBalance)
}

func TestUpdateWithdrawalStatus(t *testing.T) {
	svc, db := newTestService(t)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)
	testutil.SeedEarnings(t, db, collector.ID, "100.00")

	ctx := context.Background()
	res, err := svc.RequestWithdrawal(ctx, withdrawalRequest("40"), collector.ID.String())
	require.NoError(t, err)

	err = svc.UpdateWithdrawalStatus(ctx, "00000000-0000-0000-0000-000000000001", domain.UpdateWithdrawalStatusRequest{
		Status: domain.WithdrawalStatusCompleted,
	})
	assert.ErrorIs(t, err, domain.ErrWithdrawalNotFound)

	require.NoError(t, svc.UpdateWithdrawalStatus(ctx, res.ID, domain.UpdateWithdrawalStatusRequest{
		Status:      domain.WithdrawalStatusCompleted,
		ReferenceNo: "ref-123",
	}))

	withdrawals, _, err := svc.GetUserWithdrawals(ctx, collector.ID.String(), 1, 10)
	require.NoError(t, err)
	require.Len(t, withdrawals, 1)
	assert.Equal(t, domain.WithdrawalStatusCompleted, withdrawals[0].Status)
	assert.Equal(t, "ref-123", withdrawals[0].ReferenceNo)
}

func TestGetUserWithdrawals(t *testing.T) {
	svc, db := newTestService(t)
	collector := testutil.SeedUser(t, db, "bob", domain.RoleCollector)
	other := testutil.SeedUser(t, db, "dave", domain.RoleCollector)
	testutil.SeedEarnings(t, db, collector.ID, "100.00")
	testutil.SeedEarnings(t, db, other.ID, "100.00")

	ctx := context.Background()
	_, err := svc.RequestWithdrawal(ctx, withdrawalRequest("20"), collector.ID.String())
	require.NoError(t, err)
	_, err = svc.RequestWithdrawal(ctx, withdrawalRequest("10"), other.ID.String())
	require.NoError(t, err)

	withdrawals, count, err := svc.GetUserWithdrawals(ctx, collector.ID.String(), 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, withdrawals, 1)
	assert.Equal(t, "20.00", withdrawals[0].Amount)
}
