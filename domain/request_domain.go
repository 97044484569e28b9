package domain

import (
	"errors"
	"time"
)

const (
	RequestStatusPending    = "Pending"
	RequestStatusAccepted   = "Accepted"
	RequestStatusInProgress = "In Progress"
	RequestStatusCompleted  = "Completed"
	RequestStatusRejected   = "Rejected"
	RequestStatusCancelled  = "Cancelled"

	RequestTypeUserPosted   = "user_posted"
	RequestTypeBrowsedItems = "browsed_items"
	RequestTypeScheduled    = "scheduled"

	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

// requestTransitions is the single source of truth for the request
// lifecycle. Completed, Rejected and Cancelled are terminal: they have no
// outgoing edges.
var requestTransitions = map[string][]string{
	RequestStatusPending:    {RequestStatusAccepted, RequestStatusRejected, RequestStatusCancelled},
	RequestStatusAccepted:   {RequestStatusInProgress, RequestStatusRejected},
	RequestStatusInProgress: {RequestStatusCompleted, RequestStatusRejected},
	RequestStatusCompleted:  {},
	RequestStatusRejected:   {},
	RequestStatusCancelled:  {},
}

// CanTransitionRequestStatus reports whether moving a collection request
// from one status to another is a legal edge of the lifecycle graph.
func CanTransitionRequestStatus(from, to string) bool {
	for _, next := range requestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalRequestStatus reports whether the status has no outgoing edges.
func IsTerminalRequestStatus(status string) bool {
	next, ok := requestTransitions[status]
	return ok && len(next) == 0
}

var (
	MessageSuccessGetRequests     = "collection requests retrieved successfully"
	MessageSuccessCreateRequest   = "collection request created successfully"
	MessageSuccessUpdateStatus    = "collection request status updated successfully"
	MessageSuccessCompleteRequest = "collection request completed successfully"
	MessageSuccessCancelRequest   = "collection request cancelled successfully"
	MessageSuccessGetRequestStats = "collection request statistics retrieved successfully"

	MessageFailedGetRequests     = "failed to retrieve collection requests"
	MessageFailedCreateRequest   = "failed to create collection request"
	MessageFailedUpdateStatus    = "failed to update collection request status"
	MessageFailedCompleteRequest = "failed to complete collection request"
	MessageFailedCancelRequest   = "failed to cancel collection request"
	MessageFailedGetRequestStats = "failed to retrieve collection request statistics"

	ErrRequestNotFound           = errors.New("collection request not found")
	ErrUnauthorizedRequestAccess = errors.New("unauthorized access to collection request")
	ErrInvalidStatusTransition   = errors.New("invalid status transition")
	ErrRequestNotCancellable     = errors.New("only pending requests can be cancelled")
	ErrCollectorRequired         = errors.New("collector is required to accept a request")
	ErrEmptyRequestItems         = errors.New("collection request must contain at least one item")
	ErrInvalidActualValue        = errors.New("actual value must be greater than zero")
	ErrRequestAlreadyAssigned    = errors.New("collection request already assigned to a collector")
)

type (
	// StatusHistoryEntry is one record of the append-only status log
	// stored on the request row.
	StatusHistoryEntry struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
		Message   string    `json:"message"`
		ChangedBy string    `json:"changed_by"`
	}

	RequestItemInput struct {
		RecyclingItemID string `json:"recycling_item_id" validate:"required,uuid"`
		Quantity        int    `json:"quantity" validate:"required,min=1"`
		PricePerUnit    string `json:"price_per_unit" validate:"required"`
		Condition       string `json:"condition" validate:"omitempty,oneof=New Good Fair Poor"`
	}

	CreateFromWishlistRequest struct {
		Items         []RequestItemInput `json:"items" validate:"required,min=1,dive"`
		PickupAddress string             `json:"pickup_address" validate:"required,max=255"`
		Notes         string             `json:"notes" validate:"omitempty,max=500"`
	}

	CreateScheduledRequest struct {
		Items         []RequestItemInput `json:"items" validate:"required,min=1,dive"`
		PickupAddress string             `json:"pickup_address" validate:"required,max=255"`
		ScheduledDate string             `json:"scheduled_date" validate:"required"`
		Notes         string             `json:"notes" validate:"omitempty,max=500"`
	}

	UpdateRequestStatusRequest struct {
		Status                  string `json:"status" validate:"required,oneof=Pending Accepted 'In Progress' Completed Rejected Cancelled"`
		Notes                   string `json:"notes" validate:"omitempty,max=500"`
		EstimatedCollectionDate string `json:"estimated_collection_date" validate:"omitempty"`
	}

	CompleteRequestItemInput struct {
		ID          string `json:"id" validate:"required,uuid"`
		ActualValue string `json:"actual_value" validate:"required"`
		Notes       string `json:"notes" validate:"omitempty,max=255"`
	}

	CompleteRequestRequest struct {
		ActualValue     string                     `json:"actual_value" validate:"required"`
		CollectionNotes string                     `json:"collection_notes" validate:"omitempty,max=500"`
		Items           []CompleteRequestItemInput `json:"items" validate:"omitempty,dive"`
	}

	RequestItemResponse struct {
		ID              string `json:"id"`
		PostedItemID    string `json:"posted_item_id,omitempty"`
		RecyclingItemID string `json:"recycling_item_id,omitempty"`
		ItemName        string `json:"item_name,omitempty"`
		Quantity        int    `json:"quantity"`
		PricePerUnit    string `json:"price_per_unit"`
		EstimatedValue  string `json:"estimated_value"`
		ActualValue     string `json:"actual_value,omitempty"`
		Condition       string `json:"condition,omitempty"`
		Notes           string `json:"notes,omitempty"`
	}

	CollectionRequestResponse struct {
		ID                      string                `json:"id"`
		UserID                  string                `json:"user_id"`
		CollectorID             string                `json:"collector_id,omitempty"`
		RequestType             string                `json:"request_type"`
		Status                  string                `json:"status"`
		TotalEstimatedValue     string                `json:"total_estimated_value"`
		ActualValue             string                `json:"actual_value,omitempty"`
		PaymentStatus           string                `json:"payment_status"`
		PaymentAmount           string                `json:"payment_amount,omitempty"`
		PaymentDate             *time.Time            `json:"payment_date,omitempty"`
		RequestDate             time.Time             `json:"request_date"`
		EstimatedCollectionDate *time.Time            `json:"estimated_collection_date,omitempty"`
		ActualCollectionDate    *time.Time            `json:"actual_collection_date,omitempty"`
		PickupAddress           string                `json:"pickup_address,omitempty"`
		CollectionNotes         string                `json:"collection_notes,omitempty"`
		CollectorName           string                `json:"collector_name,omitempty"`
		CollectorPhone          string                `json:"collector_phone,omitempty"`
		CollectorRating         string                `json:"collector_rating,omitempty"`
		StatusHistory           []StatusHistoryEntry  `json:"status_history"`
		Items                   []RequestItemResponse `json:"items"`
	}

	RequestStatusStats struct {
		Pending    int64 `json:"pending"`
		Accepted   int64 `json:"accepted"`
		InProgress int64 `json:"in_progress"`
		Completed  int64 `json:"completed"`
		Rejected   int64 `json:"rejected"`
		Cancelled  int64 `json:"cancelled"`
		Total      int64 `json:"total"`
	}
)
