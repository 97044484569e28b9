package postitem

import (
	"context"
	"errors"
	"fmt"
	"time"

	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/entities"
	"RecycleHub-Backend/internal/utils/storage"
	"RecycleHub-Backend/pkg/request"
	"RecycleHub-Backend/pkg/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	PostedItemService interface {
		CreatePostedItem(ctx context.Context, req domain.CreatePostedItemRequest, userID string) (*domain.PostedItemResponse, error)
		GetUserItems(ctx context.Context, userID string, status string, page, limit int) ([]*domain.PostedItemResponse, int64, error)
		GetPostedItemByID(ctx context.Context, id, callerID, callerRole string) (*domain.PostedItemResponse, error)
		UpdatePostedItem(ctx context.Context, id string, req domain.UpdatePostedItemRequest, userID string) error
		CancelPostedItem(ctx context.Context, id, callerID, callerRole string) error
	}

	postedItemService struct {
		postedItemRepository PostedItemRepository
		userRepository       user.UserRepository
		s3                   storage.AwsS3
	}
)

func NewPostedItemService(postedItemRepository PostedItemRepository, userRepository user.UserRepository, s3 storage.AwsS3) PostedItemService {
	return &postedItemService{
		postedItemRepository: postedItemRepository,
		userRepository:       userRepository,
		s3:                   s3,
	}
}

func toPostedItemResponse(item *entities.PostedItem) *domain.PostedItemResponse {
	return &domain.PostedItemResponse{
		ID:             item.ID.String(),
		UserID:         item.UserID.String(),
		ItemName:       item.ItemName,
		Category:       item.Category,
		Quantity:       item.Quantity,
		Condition:      item.Condition,
		Location:       item.Location,
		Description:    item.Description,
		ImageURL:       item.ImageURL,
		EstimatedValue: item.EstimatedValue.StringFixed(2),
		Status:         item.Status,
		CreatedAt:      item.CreatedAt,
	}
}

// CreatePostedItem persists the posted item and spawns its collection
// request plus one line item in a single transaction: a posted item never
// exists without an originating request.
func (s *postedItemService) CreatePostedItem(ctx context.Context, req domain.CreatePostedItemRequest, userID string) (*domain.PostedItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	estimatedValue, err := decimal.NewFromString(req.EstimatedValue)
	if err != nil || estimatedValue.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidEstimatedValue
	}

	item := &entities.PostedItem{
		ID:             uuid.New(),
		UserID:         userUUID,
		ItemName:       req.ItemName,
		Category:       req.Category,
		Quantity:       req.Quantity,
		Condition:      req.Condition,
		Location:       req.Location,
		Description:    req.Description,
		EstimatedValue: estimatedValue,
		Status:         domain.RequestStatusPending,
	}

	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("posted-item-%s", item.ID.String()),
			req.Image,
			"posted-items",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	collectionRequest := &entities.CollectionRequest{
		ID:                  uuid.New(),
		UserID:              userUUID,
		RequestType:         domain.RequestTypeUserPosted,
		Status:              domain.RequestStatusPending,
		TotalEstimatedValue: estimatedValue,
		PaymentStatus:       domain.PaymentStatusPending,
		RequestDate:         time.Now(),
		PickupAddress:       req.Location,
	}
	if err := request.AppendStatusHistory(collectionRequest, domain.RequestStatusPending, "Collection request created from posted item", "system"); err != nil {
		return nil, err
	}

	pricePerUnit := estimatedValue.Div(decimal.NewFromInt(int64(req.Quantity)))
	requestItem := &entities.CollectionRequestItem{
		ID:             uuid.New(),
		Quantity:       req.Quantity,
		PricePerUnit:   pricePerUnit,
		EstimatedValue: estimatedValue,
		Condition:      req.Condition,
	}

	if err := s.postedItemRepository.CreateWithRequest(ctx, item, collectionRequest, requestItem); err != nil {
		return nil, err
	}

	resp := toPostedItemResponse(item)
	resp.CollectionRequestID = collectionRequest.ID.String()
	return resp, nil
}

func (s *postedItemService) GetUserItems(ctx context.Context, userID string, status string, page, limit int) ([]*domain.PostedItemResponse, int64, error) {
	items, count, err := s.postedItemRepository.GetUserItems(ctx, userID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.PostedItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toPostedItemResponse(item))
	}
	return result, count, nil
}

func (s *postedItemService) GetPostedItemByID(ctx context.Context, id, callerID, callerRole string) (*domain.PostedItemResponse, error) {
	item, err := s.postedItemRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostedItemNotFound
		}
		return nil, err
	}

	if item.UserID.String() != callerID && callerRole != domain.RoleAdmin && callerRole != domain.RoleCollector {
		return nil, domain.ErrUnauthorizedItemAccess
	}

	resp := toPostedItemResponse(item)
	if collectionRequest, err := s.postedItemRepository.GetRequestForItem(ctx, id); err == nil && collectionRequest != nil {
		resp.CollectionRequestID = collectionRequest.ID.String()
	}
	return resp, nil
}

func (s *postedItemService) UpdatePostedItem(ctx context.Context, id string, req domain.UpdatePostedItemRequest, userID string) error {
	item, err := s.postedItemRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPostedItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedItemAccess
	}

	// Once a collector is involved the item contents are frozen.
	if item.Status != "Posted" && item.Status != domain.RequestStatusPending {
		return domain.ErrPostedItemNotEditable
	}

	if req.ItemName != "" {
		item.ItemName = req.ItemName
	}
	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}
	if req.Condition != "" {
		item.Condition = req.Condition
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.EstimatedValue != "" {
		estimatedValue, err := decimal.NewFromString(req.EstimatedValue)
		if err != nil || estimatedValue.LessThanOrEqual(decimal.Zero) {
			return domain.ErrInvalidEstimatedValue
		}
		item.EstimatedValue = estimatedValue
	}

	return s.postedItemRepository.Update(ctx, item)
}

func (s *postedItemService) CancelPostedItem(ctx context.Context, id, callerID, callerRole string) error {
	item, err := s.postedItemRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPostedItemNotFound
		}
		return err
	}

	if item.UserID.String() != callerID && callerRole != domain.RoleAdmin {
		return domain.ErrUnauthorizedItemAccess
	}

	if item.Status != "Posted" && item.Status != domain.RequestStatusPending {
		return domain.ErrPostedItemNotEditable
	}

	item.Status = domain.RequestStatusRejected

	// The spawned request must leave the collectors' available pool with
	// the item, in the same transaction.
	collectionRequest, err := s.postedItemRepository.GetRequestForItem(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.postedItemRepository.Update(ctx, item)
		}
		return err
	}

	actorName := "system"
	if actor, err := s.userRepository.GetUserByID(ctx, callerID); err == nil {
		actorName = actor.Name
	}

	collectionRequest.Status = domain.RequestStatusCancelled
	if err := request.AppendStatusHistory(collectionRequest, domain.RequestStatusCancelled, "Posted item withdrawn by owner", actorName); err != nil {
		return err
	}

	notification := &entities.Notification{
		ID:                  uuid.New(),
		UserID:              collectionRequest.UserID,
		Title:               "Collection Request Update",
		Message:             "Your posted item was withdrawn and its collection request cancelled",
		Type:                domain.NotificationTypeStatusUpdate,
		CollectionRequestID: &collectionRequest.ID,
		IsActive:            true,
	}

	return s.postedItemRepository.CancelWithRequest(ctx, item, collectionRequest, notification)
}
