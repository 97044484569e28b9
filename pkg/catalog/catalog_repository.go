package catalog

import (
	"context"

	"RecycleHub-Backend/entities"

	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		CreateCategory(ctx context.Context, category *entities.Category) error
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		GetCategoryByName(ctx context.Context, name string) (*entities.Category, error)
		UpdateCategory(ctx context.Context, category *entities.Category) error

		CreateRecyclingItem(ctx context.Context, item *entities.RecyclingItem) error
		GetRecyclingItems(ctx context.Context, category string, page, limit int) ([]*entities.RecyclingItem, int64, error)
		GetRecyclingItemByID(ctx context.Context, id string) (*entities.RecyclingItem, error)
		GetRecyclingItemByItemID(ctx context.Context, itemID string) (*entities.RecyclingItem, error)
		UpdateRecyclingItem(ctx context.Context, item *entities.RecyclingItem) error
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *catalogRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *catalogRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) GetCategoryByName(ctx context.Context, name string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).
		Where("name = ? AND is_active = ?", name, true).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *catalogRepository) CreateRecyclingItem(ctx context.Context, item *entities.RecyclingItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *catalogRepository) GetRecyclingItems(ctx context.Context, category string, page, limit int) ([]*entities.RecyclingItem, int64, error) {
	var items []*entities.RecyclingItem
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Model(&entities.RecyclingItem{}).
		Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("sort_order ASC, name ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *catalogRepository) GetRecyclingItemByID(ctx context.Context, id string) (*entities.RecyclingItem, error) {
	var item entities.RecyclingItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) GetRecyclingItemByItemID(ctx context.Context, itemID string) (*entities.RecyclingItem, error) {
	var item entities.RecyclingItem
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) UpdateRecyclingItem(ctx context.Context, item *entities.RecyclingItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}
