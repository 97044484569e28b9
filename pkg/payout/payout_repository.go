package payout

import (
	"context"

	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/entities"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	PayoutRepository interface {
		CreateWithBalanceCheck(ctx context.Context, withdrawal *entities.WithdrawalTransaction) error
		GetByID(ctx context.Context, id string) (*entities.WithdrawalTransaction, error)
		GetUserWithdrawals(ctx context.Context, userID string, page, limit int) ([]*entities.WithdrawalTransaction, int64, error)
		GetTotalWithdrawn(ctx context.Context, userID string) (decimal.Decimal, error)
		UpdateStatus(ctx context.Context, id, status, referenceNo string) error
	}

	payoutRepository struct {
		db *gorm.DB
	}
)

func NewPayoutRepository(db *gorm.DB) PayoutRepository {
	return &payoutRepository{db: db}
}

// CreateWithBalanceCheck inserts the withdrawal only if the user's earnings
// cover the requested amount plus every withdrawal that has not failed. The
// check and the insert share one transaction so concurrent requests cannot
// both pass against the same balance.
func (r *payoutRepository) CreateWithBalanceCheck(ctx context.Context, withdrawal *entities.WithdrawalTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entities.User
		if err := tx.Where("id = ?", withdrawal.UserID).First(&user).Error; err != nil {
			return err
		}

		withdrawn, err := totalWithdrawn(tx, withdrawal.UserID.String())
		if err != nil {
			return err
		}

		available := user.TotalEarnings.Sub(withdrawn)
		if withdrawal.Amount.GreaterThan(available) {
			return domain.ErrInsufficientBalance
		}

		return tx.Create(withdrawal).Error
	})
}

func (r *payoutRepository) GetByID(ctx context.Context, id string) (*entities.WithdrawalTransaction, error) {
	var withdrawal entities.WithdrawalTransaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&withdrawal).Error; err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

func (r *payoutRepository) GetUserWithdrawals(ctx context.Context, userID string, page, limit int) ([]*entities.WithdrawalTransaction, int64, error) {
	var withdrawals []*entities.WithdrawalTransaction
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Model(&entities.WithdrawalTransaction{}).
		Where("user_id = ?", userID)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&withdrawals).Error; err != nil {
		return nil, 0, err
	}

	return withdrawals, count, nil
}

func (r *payoutRepository) GetTotalWithdrawn(ctx context.Context, userID string) (decimal.Decimal, error) {
	return totalWithdrawn(r.db.WithContext(ctx), userID)
}

func (r *payoutRepository) UpdateStatus(ctx context.Context, id, status, referenceNo string) error {
	updates := map[string]interface{}{"status": status}
	if referenceNo != "" {
		updates["reference_no"] = referenceNo
	}
	return r.db.WithContext(ctx).
		Model(&entities.WithdrawalTransaction{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func totalWithdrawn(tx *gorm.DB, userID string) (decimal.Decimal, error) {
	var total *float64
	err := tx.Model(&entities.WithdrawalTransaction{}).
		Select("SUM(amount)").
		Where("user_id = ? AND status != ?", userID, domain.WithdrawalStatusFailed).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if total == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromFloat(*total), nil
}
