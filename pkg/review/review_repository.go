package review

import (
	"context"

	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		CreateAndRecalculate(ctx context.Context, review *entities.Review) error
		UpdateAndRecalculate(ctx context.Context, review *entities.Review) error
		GetByID(ctx context.Context, id string) (*entities.Review, error)
		GetActiveByReviewerAndCollector(ctx context.Context, reviewerID, collectorID string) (*entities.Review, error)
		GetCollectorReviews(ctx context.Context, collectorID string, page, limit int) ([]*entities.Review, int64, error)
		GetUserReviews(ctx context.Context, userID string, page, limit int) ([]*entities.Review, int64, error)
		HasCompletedRequestWith(ctx context.Context, userID, collectorID string) (bool, error)
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// recalculateRating recomputes the collector's stored rating as the mean
// over all currently-active reviews. A full recompute keeps the stored
// value exactly consistent with the active review set.
func recalculateRating(tx *gorm.DB, collectorID interface{}) error {
	var avg *float64
	if err := tx.Model(&entities.Review{}).
		Where("collector_id = ? AND is_active = ?", collectorID, true).
		Select("AVG(rating)").
		Scan(&avg).Error; err != nil {
		return err
	}

	rating := decimal.Zero
	if avg != nil {
		rating = decimal.NewFromFloat(*avg).Round(2)
	}

	return tx.Model(&entities.User{}).
		Where("id = ?", collectorID).
		Update("rating", rating).Error
}

func (r *reviewRepository) CreateAndRecalculate(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		if err := recalculateRating(tx, review.CollectorID); err != nil {
			return err
		}
		notification := &entities.Notification{
			ID:       uuid.New(),
			UserID:   review.CollectorID,
			Title:    "New Review",
			Message:  "You have received a new review",
			Type:     domain.NotificationTypeReview,
			ReviewID: &review.ID,
			IsActive: true,
		}
		return tx.Create(notification).Error
	})
}

func (r *reviewRepository) UpdateAndRecalculate(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(review).Error; err != nil {
			return err
		}
		return recalculateRating(tx, review.CollectorID)
	})
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetActiveByReviewerAndCollector(ctx context.Context, reviewerID, collectorID string) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND collector_id = ? AND is_active = ?", reviewerID, collectorID, true).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetCollectorReviews(ctx context.Context, collectorID string, page, limit int) ([]*entities.Review, int64, error) {
	var reviews []*entities.Review
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("collector_id = ? AND is_active = ?", collectorID, true)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, count, nil
}

func (r *reviewRepository) GetUserReviews(ctx context.Context, userID string, page, limit int) ([]*entities.Review, int64, error) {
	var reviews []*entities.Review
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("user_id = ? AND is_active = ?", userID, true)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, count, nil
}

func (r *reviewRepository) HasCompletedRequestWith(ctx context.Context, userID, collectorID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CollectionRequest{}).
		Where("user_id = ? AND collector_id = ? AND status = ?", userID, collectorID, domain.RequestStatusCompleted).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
