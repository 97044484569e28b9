package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/entities"
	"RecycleHub-Backend/pkg/catalog"
	"RecycleHub-Backend/pkg/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	RequestService interface {
		CreateFromWishlist(ctx context.Context, req domain.CreateFromWishlistRequest, userID string) (*domain.CollectionRequestResponse, error)
		CreateScheduled(ctx context.Context, req domain.CreateScheduledRequest, userID string) (*domain.CollectionRequestResponse, error)
		GetRequests(ctx context.Context, callerID, callerRole, scope, status, requestType string, page, limit int) ([]*domain.CollectionRequestResponse, int64, error)
		GetRequestByID(ctx context.Context, id, callerID, callerRole string) (*domain.CollectionRequestResponse, error)
		UpdateStatus(ctx context.Context, id string, req domain.UpdateRequestStatusRequest, actorID, actorRole string) error
		Complete(ctx context.Context, id string, req domain.CompleteRequestRequest, actorID, actorRole string) error
		Cancel(ctx context.Context, id, actorID, actorRole string) error
		GetStats(ctx context.Context, callerID, callerRole string) (*domain.RequestStatusStats, error)
	}

	requestService struct {
		requestRepository RequestRepository
		catalogRepository catalog.CatalogRepository
		userRepository    user.UserRepository
	}
)

func NewRequestService(requestRepository RequestRepository, catalogRepository catalog.CatalogRepository, userRepository user.UserRepository) RequestService {
	return &requestService{
		requestRepository: requestRepository,
		catalogRepository: catalogRepository,
		userRepository:    userRepository,
	}
}

// AppendStatusHistory appends one entry to the request's append-only
// status log. Existing entries are never modified or truncated.
func AppendStatusHistory(request *entities.CollectionRequest, status, message, changedBy string) error {
	var history []domain.StatusHistoryEntry
	if len(request.StatusHistory) > 0 {
		if err := json.Unmarshal(request.StatusHistory, &history); err != nil {
			return err
		}
	}

	history = append(history, domain.StatusHistoryEntry{
		Status:    status,
		Timestamp: time.Now(),
		Message:   message,
		ChangedBy: changedBy,
	})

	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}
	request.StatusHistory = raw
	return nil
}

func (s *requestService) buildItems(ctx context.Context, inputs []domain.RequestItemInput) ([]*entities.CollectionRequestItem, decimal.Decimal, error) {
	items := make([]*entities.CollectionRequestItem, 0, len(inputs))
	total := decimal.Zero

	for _, input := range inputs {
		recyclingItem, err := s.catalogRepository.GetRecyclingItemByID(ctx, input.RecyclingItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, decimal.Zero, domain.ErrRecyclingItemNotFound
			}
			return nil, decimal.Zero, err
		}

		pricePerUnit, err := decimal.NewFromString(input.PricePerUnit)
		if err != nil || pricePerUnit.LessThanOrEqual(decimal.Zero) {
			return nil, decimal.Zero, domain.ErrInvalidEstimatedValue
		}

		estimatedValue := pricePerUnit.Mul(decimal.NewFromInt(int64(input.Quantity)))
		itemID := recyclingItem.ID
		items = append(items, &entities.CollectionRequestItem{
			ID:              uuid.New(),
			RecyclingItemID: &itemID,
			Quantity:        input.Quantity,
			PricePerUnit:    pricePerUnit,
			EstimatedValue:  estimatedValue,
			Condition:       input.Condition,
		})
		total = total.Add(estimatedValue)
	}

	return items, total, nil
}

func (s *requestService) createBatch(ctx context.Context, inputs []domain.RequestItemInput, requestType, pickupAddress, notes, userID string, estimatedDate *time.Time) (*domain.CollectionRequestResponse, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrEmptyRequestItems
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	items, total, err := s.buildItems(ctx, inputs)
	if err != nil {
		return nil, err
	}

	request := &entities.CollectionRequest{
		ID:                      uuid.New(),
		UserID:                  userUUID,
		RequestType:             requestType,
		Status:                  domain.RequestStatusPending,
		TotalEstimatedValue:     total,
		PaymentStatus:           domain.PaymentStatusPending,
		RequestDate:             time.Now(),
		EstimatedCollectionDate: estimatedDate,
		PickupAddress:           pickupAddress,
		CollectionNotes:         notes,
	}
	if err := AppendStatusHistory(request, domain.RequestStatusPending, "Collection request created", "system"); err != nil {
		return nil, err
	}

	if err := s.requestRepository.CreateWithItems(ctx, request, items); err != nil {
		return nil, err
	}

	created, err := s.requestRepository.GetByID(ctx, request.ID.String())
	if err != nil {
		return nil, err
	}

	return toRequestResponse(created)
}

func (s *requestService) CreateFromWishlist(ctx context.Context, req domain.CreateFromWishlistRequest, userID string) (*domain.CollectionRequestResponse, error) {
	return s.createBatch(ctx, req.Items, domain.RequestTypeBrowsedItems, req.PickupAddress, req.Notes, userID, nil)
}

func (s *requestService) CreateScheduled(ctx context.Context, req domain.CreateScheduledRequest, userID string) (*domain.CollectionRequestResponse, error) {
	scheduledDate, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return nil, err
	}
	return s.createBatch(ctx, req.Items, domain.RequestTypeScheduled, req.PickupAddress, req.Notes, userID, &scheduledDate)
}

func (s *requestService) GetRequests(ctx context.Context, callerID, callerRole, scope, status, requestType string, page, limit int) ([]*domain.CollectionRequestResponse, int64, error) {
	filter := RequestFilter{Status: status, RequestType: requestType}

	switch {
	case callerRole == domain.RoleAdmin && scope == "all":
		// no ownership filter
	case callerRole == domain.RoleCollector && scope == "assigned":
		filter.CollectorID = callerID
	case callerRole == domain.RoleCollector && scope == "available":
		filter.Unassigned = true
		filter.Status = domain.RequestStatusPending
	default:
		filter.UserID = callerID
	}

	requests, count, err := s.requestRepository.GetRequests(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.CollectionRequestResponse, 0, len(requests))
	for _, request := range requests {
		resp, err := toRequestResponse(request)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, resp)
	}
	return result, count, nil
}

func (s *requestService) getAuthorized(ctx context.Context, id, callerID, callerRole string) (*entities.CollectionRequest, error) {
	request, err := s.requestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	if callerRole == domain.RoleAdmin {
		return request, nil
	}
	if request.UserID.String() == callerID {
		return request, nil
	}
	if callerRole == domain.RoleCollector {
		// Assigned collector, or any collector while the request is
		// still unassigned and browsable.
		if request.CollectorID != nil && request.CollectorID.String() == callerID {
			return request, nil
		}
		if request.CollectorID == nil && request.Status == domain.RequestStatusPending {
			return request, nil
		}
	}
	return nil, domain.ErrUnauthorizedRequestAccess
}

func (s *requestService) GetRequestByID(ctx context.Context, id, callerID, callerRole string) (*domain.CollectionRequestResponse, error) {
	request, err := s.getAuthorized(ctx, id, callerID, callerRole)
	if err != nil {
		return nil, err
	}
	return toRequestResponse(request)
}

func (s *requestService) UpdateStatus(ctx context.Context, id string, req domain.UpdateRequestStatusRequest, actorID, actorRole string) error {
	if actorRole != domain.RoleCollector && actorRole != domain.RoleAdmin {
		return domain.ErrUnauthorizedRequestAccess
	}

	request, err := s.getAuthorized(ctx, id, actorID, actorRole)
	if err != nil {
		return err
	}

	if !domain.CanTransitionRequestStatus(request.Status, req.Status) {
		return domain.ErrInvalidStatusTransition
	}

	actor, err := s.userRepository.GetUserByID(ctx, actorID)
	if err != nil {
		return err
	}

	message := req.Notes
	if message == "" {
		message = fmt.Sprintf("Request status changed to %s", req.Status)
	}

	if req.Status == domain.RequestStatusAccepted {
		if request.CollectorID != nil {
			return domain.ErrRequestAlreadyAssigned
		}
		collector := actor
		if actorRole == domain.RoleAdmin {
			return domain.ErrCollectorRequired
		}
		collectorID := collector.ID
		rating := collector.Rating
		request.CollectorID = &collectorID
		request.CollectorName = collector.Name
		request.CollectorPhone = collector.Phone
		request.CollectorRating = &rating

		if req.EstimatedCollectionDate != "" {
			estimatedDate, err := time.Parse("2006-01-02", req.EstimatedCollectionDate)
			if err != nil {
				return err
			}
			request.EstimatedCollectionDate = &estimatedDate
		}
	}

	if req.Status == domain.RequestStatusCompleted {
		now := time.Now()
		request.ActualCollectionDate = &now
	}

	request.Status = req.Status
	if err := AppendStatusHistory(request, req.Status, message, actor.Name); err != nil {
		return err
	}

	notification := &entities.Notification{
		ID:                  uuid.New(),
		UserID:              request.UserID,
		Title:               "Collection Request Update",
		Message:             message,
		Type:                domain.NotificationTypeStatusUpdate,
		CollectionRequestID: &request.ID,
		IsActive:            true,
	}

	return s.requestRepository.UpdateStatus(ctx, request, req.Status, notification)
}

func (s *requestService) Complete(ctx context.Context, id string, req domain.CompleteRequestRequest, actorID, actorRole string) error {
	if actorRole != domain.RoleCollector && actorRole != domain.RoleAdmin {
		return domain.ErrUnauthorizedRequestAccess
	}

	request, err := s.getAuthorized(ctx, id, actorID, actorRole)
	if err != nil {
		return err
	}

	if !domain.CanTransitionRequestStatus(request.Status, domain.RequestStatusCompleted) {
		return domain.ErrInvalidStatusTransition
	}

	actualValue, err := decimal.NewFromString(req.ActualValue)
	if err != nil || actualValue.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidActualValue
	}

	actor, err := s.userRepository.GetUserByID(ctx, actorID)
	if err != nil {
		return err
	}

	itemUpdates := make([]ItemActualUpdate, 0, len(req.Items))
	for _, item := range req.Items {
		itemUUID, err := uuid.Parse(item.ID)
		if err != nil {
			return domain.ErrParseUUID
		}
		itemValue, err := decimal.NewFromString(item.ActualValue)
		if err != nil {
			return domain.ErrInvalidActualValue
		}
		itemUpdates = append(itemUpdates, ItemActualUpdate{
			ID:          itemUUID,
			ActualValue: itemValue,
			Notes:       item.Notes,
		})
	}

	now := time.Now()
	request.Status = domain.RequestStatusCompleted
	request.ActualValue = &actualValue
	request.ActualCollectionDate = &now
	request.PaymentStatus = domain.PaymentStatusPaid
	request.PaymentAmount = &actualValue
	request.PaymentDate = &now
	if req.CollectionNotes != "" {
		request.CollectionNotes = req.CollectionNotes
	}

	message := fmt.Sprintf("Collection completed. Payment of %s settled.", actualValue.StringFixed(2))
	if err := AppendStatusHistory(request, domain.RequestStatusCompleted, message, actor.Name); err != nil {
		return err
	}

	notification := &entities.Notification{
		ID:                  uuid.New(),
		UserID:              request.UserID,
		Title:               "Payment Received",
		Message:             message,
		Type:                domain.NotificationTypePayment,
		CollectionRequestID: &request.ID,
		IsActive:            true,
	}

	return s.requestRepository.Complete(ctx, request, itemUpdates, actualValue, notification)
}

func (s *requestService) Cancel(ctx context.Context, id, actorID, actorRole string) error {
	request, err := s.requestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRequestNotFound
		}
		return err
	}

	if request.UserID.String() != actorID && actorRole != domain.RoleAdmin {
		return domain.ErrUnauthorizedRequestAccess
	}

	if request.Status != domain.RequestStatusPending {
		return domain.ErrRequestNotCancellable
	}

	actor, err := s.userRepository.GetUserByID(ctx, actorID)
	if err != nil {
		return err
	}

	request.Status = domain.RequestStatusCancelled
	if err := AppendStatusHistory(request, domain.RequestStatusCancelled, "Collection request cancelled", actor.Name); err != nil {
		return err
	}

	notification := &entities.Notification{
		ID:                  uuid.New(),
		UserID:              request.UserID,
		Title:               "Collection Request Update",
		Message:             "Your collection request was cancelled",
		Type:                domain.NotificationTypeStatusUpdate,
		CollectionRequestID: &request.ID,
		IsActive:            true,
	}

	// Posted items have no Cancelled state; they stay as posted.
	return s.requestRepository.UpdateStatus(ctx, request, "", notification)
}

func (s *requestService) GetStats(ctx context.Context, callerID, callerRole string) (*domain.RequestStatusStats, error) {
	filter := RequestFilter{}
	switch callerRole {
	case domain.RoleAdmin:
		// all requests
	case domain.RoleCollector:
		filter.CollectorID = callerID
	default:
		filter.UserID = callerID
	}

	counts, err := s.requestRepository.CountByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats := &domain.RequestStatusStats{
		Pending:    counts[domain.RequestStatusPending],
		Accepted:   counts[domain.RequestStatusAccepted],
		InProgress: counts[domain.RequestStatusInProgress],
		Completed:  counts[domain.RequestStatusCompleted],
		Rejected:   counts[domain.RequestStatusRejected],
		Cancelled:  counts[domain.RequestStatusCancelled],
	}
	stats.Total = stats.Pending + stats.Accepted + stats.InProgress + stats.Completed + stats.Rejected + stats.Cancelled
	return stats, nil
}

func toRequestResponse(request *entities.CollectionRequest) (*domain.CollectionRequestResponse, error) {
	var history []domain.StatusHistoryEntry
	if len(request.StatusHistory) > 0 {
		if err := json.Unmarshal(request.StatusHistory, &history); err != nil {
			return nil, err
		}
	}

	items := make([]domain.RequestItemResponse, 0, len(request.Items))
	for _, item := range request.Items {
		itemResp := domain.RequestItemResponse{
			ID:             item.ID.String(),
			Quantity:       item.Quantity,
			PricePerUnit:   item.PricePerUnit.StringFixed(2),
			EstimatedValue: item.EstimatedValue.StringFixed(2),
			Condition:      item.Condition,
			Notes:          item.Notes,
		}
		if item.ActualValue != nil {
			itemResp.ActualValue = item.ActualValue.StringFixed(2)
		}
		if item.PostedItemID != nil {
			itemResp.PostedItemID = item.PostedItemID.String()
			if item.PostedItem != nil {
				itemResp.ItemName = item.PostedItem.ItemName
			}
		}
		if item.RecyclingItemID != nil {
			itemResp.RecyclingItemID = item.RecyclingItemID.String()
			if item.RecyclingItem != nil {
				itemResp.ItemName = item.RecyclingItem.Name
			}
		}
		items = append(items, itemResp)
	}

	resp := &domain.CollectionRequestResponse{
		ID:                      request.ID.String(),
		UserID:                  request.UserID.String(),
		RequestType:             request.RequestType,
		Status:                  request.Status,
		TotalEstimatedValue:     request.TotalEstimatedValue.StringFixed(2),
		PaymentStatus:           request.PaymentStatus,
		PaymentDate:             request.PaymentDate,
		RequestDate:             request.RequestDate,
		EstimatedCollectionDate: request.EstimatedCollectionDate,
		ActualCollectionDate:    request.ActualCollectionDate,
		PickupAddress:           request.PickupAddress,
		CollectionNotes:         request.CollectionNotes,
		CollectorName:           request.CollectorName,
		CollectorPhone:          request.CollectorPhone,
		StatusHistory:           history,
		Items:                   items,
	}
	if request.CollectorID != nil {
		resp.CollectorID = request.CollectorID.String()
	}
	if request.ActualValue != nil {
		resp.ActualValue = request.ActualValue.StringFixed(2)
	}
	if request.PaymentAmount != nil {
		resp.PaymentAmount = request.PaymentAmount.StringFixed(2)
	}
	if request.CollectorRating != nil {
		resp.CollectorRating = request.CollectorRating.StringFixed(2)
	}
	return resp, nil
}
