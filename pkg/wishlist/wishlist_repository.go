package wishlist

import (
	"context"

	"RecycleHub-Backend/entities"

	"gorm.io/gorm"
)

type (
	WishlistRepository interface {
		Create(ctx context.Context, entry *entities.Wishlist) error
		GetByID(ctx context.Context, id string) (*entities.Wishlist, error)
		GetActiveByUserAndItem(ctx context.Context, userID, recyclingItemID string) (*entities.Wishlist, error)
		GetUserWishlist(ctx context.Context, userID string, page, limit int) ([]*entities.Wishlist, int64, error)
		Update(ctx context.Context, entry *entities.Wishlist) error
		DeactivateEntries(ctx context.Context, userID string, ids []string) error
	}

	wishlistRepository struct {
		db *gorm.DB
	}
)

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Create(ctx context.Context, entry *entities.Wishlist) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *wishlistRepository) GetByID(ctx context.Context, id string) (*entities.Wishlist, error) {
	var entry entities.Wishlist
	if err := r.db.WithContext(ctx).
		Preload("RecyclingItem").
		Where("id = ? AND is_active = ?", id, true).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *wishlistRepository) GetActiveByUserAndItem(ctx context.Context, userID, recyclingItemID string) (*entities.Wishlist, error) {
	var entry entities.Wishlist
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recycling_item_id = ? AND is_active = ?", userID, recyclingItemID, true).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *wishlistRepository) GetUserWishlist(ctx context.Context, userID string, page, limit int) ([]*entities.Wishlist, int64, error) {
	var entries []*entities.Wishlist
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Model(&entities.Wishlist{}).
		Where("user_id = ? AND is_active = ?", userID, true)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("RecyclingItem").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, count, nil
}

func (r *wishlistRepository) Update(ctx context.Context, entry *entities.Wishlist) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *wishlistRepository) DeactivateEntries(ctx context.Context, userID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&entities.Wishlist{}).
		Where("user_id = ? AND id IN ?", userID, ids).
		Update("is_active", false).Error
}
