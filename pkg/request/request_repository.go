package request

import (
	"context"

	"RecycleHub-Backend/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// RequestFilter narrows list queries. Zero values mean "no filter".
	RequestFilter struct {
		UserID      string
		CollectorID string
		Status      string
		RequestType string
		Unassigned  bool
	}

	// ItemActualUpdate carries a completion update for a single line
	// item. Updates only apply to items owned by the completed request.
	ItemActualUpdate struct {
		ID          uuid.UUID
		ActualValue decimal.Decimal
		Notes       string
	}

	RequestRepository interface {
		CreateWithItems(ctx context.Context, request *entities.CollectionRequest, items []*entities.CollectionRequestItem) error
		GetByID(ctx context.Context, id string) (*entities.CollectionRequest, error)
		GetRequests(ctx context.Context, filter RequestFilter, page, limit int) ([]*entities.CollectionRequest, int64, error)
		UpdateStatus(ctx context.Context, request *entities.CollectionRequest, postedItemStatus string, notification *entities.Notification) error
		Complete(ctx context.Context, request *entities.CollectionRequest, itemUpdates []ItemActualUpdate, actualValue decimal.Decimal, notification *entities.Notification) error
		CountByStatus(ctx context.Context, filter RequestFilter) (map[string]int64, error)
	}

	requestRepository struct {
		db *gorm.DB
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) CreateWithItems(ctx context.Context, request *entities.CollectionRequest, items []*entities.CollectionRequestItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(request).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.CollectionRequestID = request.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*entities.CollectionRequest, error) {
	var request entities.CollectionRequest
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.PostedItem").
		Preload("Items.RecyclingItem").
		Where("id = ?", id).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func applyFilter(query *gorm.DB, filter RequestFilter) *gorm.DB {
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.CollectorID != "" {
		query = query.Where("collector_id = ?", filter.CollectorID)
	}
	if filter.Unassigned {
		query = query.Where("collector_id IS NULL")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.RequestType != "" {
		query = query.Where("request_type = ?", filter.RequestType)
	}
	return query
}

func (r *requestRepository) GetRequests(ctx context.Context, filter RequestFilter, page, limit int) ([]*entities.CollectionRequest, int64, error) {
	var requests []*entities.CollectionRequest
	var count int64
	offset := (page - 1) * limit

	if err := applyFilter(r.db.WithContext(ctx).Model(&entities.CollectionRequest{}), filter).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := applyFilter(r.db.WithContext(ctx), filter).
		Preload("Items").
		Preload("Items.PostedItem").
		Preload("Items.RecyclingItem").
		Order("request_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, count, nil
}

// UpdateStatus persists a status change, mirrors it onto any posted items
// behind the request's line items, and records the notification, all in
// one transaction.
func (r *requestRepository) UpdateStatus(ctx context.Context, request *entities.CollectionRequest, postedItemStatus string, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(request).Error; err != nil {
			return err
		}

		if postedItemStatus != "" {
			if err := tx.Model(&entities.PostedItem{}).
				Where("id IN (?)", tx.Model(&entities.CollectionRequestItem{}).
					Select("posted_item_id").
					Where("collection_request_id = ? AND posted_item_id IS NOT NULL", request.ID)).
				Update("status", postedItemStatus).Error; err != nil {
				return err
			}
		}

		if notification != nil {
			if err := tx.Create(notification).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Complete finalizes a request: saves the completed row, applies line item
// actuals (scoped to this request), bumps requester and collector counters
// with atomic SQL increments, and records the payment notification.
func (r *requestRepository) Complete(ctx context.Context, request *entities.CollectionRequest, itemUpdates []ItemActualUpdate, actualValue decimal.Decimal, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(request).Error; err != nil {
			return err
		}

		for _, update := range itemUpdates {
			if err := tx.Model(&entities.CollectionRequestItem{}).
				Where("id = ? AND collection_request_id = ?", update.ID, request.ID).
				Updates(map[string]interface{}{
					"actual_value": update.ActualValue,
					"notes":        update.Notes,
				}).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&entities.PostedItem{}).
			Where("id IN (?)", tx.Model(&entities.CollectionRequestItem{}).
				Select("posted_item_id").
				Where("collection_request_id = ? AND posted_item_id IS NOT NULL", request.ID)).
			Update("status", request.Status).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.User{}).
			Where("id = ?", request.UserID).
			Updates(map[string]interface{}{
				"total_recycled_items": gorm.Expr("total_recycled_items + ?", 1),
				"total_recycled_value": gorm.Expr("total_recycled_value + ?", actualValue),
			}).Error; err != nil {
			return err
		}

		if request.CollectorID != nil {
			if err := tx.Model(&entities.User{}).
				Where("id = ?", request.CollectorID).
				Updates(map[string]interface{}{
					"total_collections": gorm.Expr("total_collections + ?", 1),
					"total_earnings":    gorm.Expr("total_earnings + ?", actualValue),
				}).Error; err != nil {
				return err
			}
		}

		if notification != nil {
			if err := tx.Create(notification).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *requestRepository) CountByStatus(ctx context.Context, filter RequestFilter) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount

	if err := applyFilter(r.db.WithContext(ctx).Model(&entities.CollectionRequest{}), filter).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
