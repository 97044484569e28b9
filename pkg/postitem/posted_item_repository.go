package postitem

import (
	"context"

	"RecycleHub-Backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	PostedItemRepository interface {
		// CreateWithRequest persists the posted item, its collection
		// request and the single line item binding them, atomically.
		CreateWithRequest(ctx context.Context, item *entities.PostedItem, request *entities.CollectionRequest, requestItem *entities.CollectionRequestItem) error
		GetByID(ctx context.Context, id string) (*entities.PostedItem, error)
		GetUserItems(ctx context.Context, userID string, status string, page, limit int) ([]*entities.PostedItem, int64, error)
		Update(ctx context.Context, item *entities.PostedItem) error
		GetRequestForItem(ctx context.Context, postedItemID string) (*entities.CollectionRequest, error)
		// CancelWithRequest withdraws the posted item and its spawned
		// collection request together, so the request never stays
		// collectable after the item is gone.
		CancelWithRequest(ctx context.Context, item *entities.PostedItem, request *entities.CollectionRequest, notification *entities.Notification) error
	}

	postedItemRepository struct {
		db *gorm.DB
	}
)

func NewPostedItemRepository(db *gorm.DB) PostedItemRepository {
	return &postedItemRepository{db: db}
}

func (r *postedItemRepository) CreateWithRequest(ctx context.Context, item *entities.PostedItem, request *entities.CollectionRequest, requestItem *entities.CollectionRequestItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		if err := tx.Create(request).Error; err != nil {
			return err
		}
		requestItem.CollectionRequestID = request.ID
		itemID := item.ID
		requestItem.PostedItemID = &itemID
		return tx.Create(requestItem).Error
	})
}

func (r *postedItemRepository) GetByID(ctx context.Context, id string) (*entities.PostedItem, error) {
	var item entities.PostedItem
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *postedItemRepository) GetUserItems(ctx context.Context, userID string, status string, page, limit int) ([]*entities.PostedItem, int64, error) {
	var items []*entities.PostedItem
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Model(&entities.PostedItem{}).
		Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *postedItemRepository) Update(ctx context.Context, item *entities.PostedItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *postedItemRepository) CancelWithRequest(ctx context.Context, item *entities.PostedItem, request *entities.CollectionRequest, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(request).Error; err != nil {
			return err
		}
		if notification != nil {
			if err := tx.Create(notification).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *postedItemRepository) GetRequestForItem(ctx context.Context, postedItemID string) (*entities.CollectionRequest, error) {
	var requestItem entities.CollectionRequestItem
	if err := r.db.WithContext(ctx).
		Preload("CollectionRequest").
		Where("posted_item_id = ?", postedItemID).
		First(&requestItem).Error; err != nil {
		return nil, err
	}
	return requestItem.CollectionRequest, nil
}
