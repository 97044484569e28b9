package handlers

import (
	"errors"
	"strconv"

	"RecycleHub-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps service sentinel errors onto HTTP status codes.
// Unknown errors are treated as internal and their details never reach the
// client.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrPostedItemNotFound),
		errors.Is(err, domain.ErrRecyclingItemNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, domain.ErrCollectorNotFound),
		errors.Is(err, domain.ErrNotificationNotFound),
		errors.Is(err, domain.ErrWishlistEntryNotFound),
		errors.Is(err, domain.ErrWithdrawalNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUserNotAllowed),
		errors.Is(err, domain.ErrUnauthorizedRequestAccess),
		errors.Is(err, domain.ErrUnauthorizedItemAccess),
		errors.Is(err, domain.ErrUnauthorizedReviewAccess):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUserDeactivated),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrRecyclingItemAlreadyExists),
		errors.Is(err, domain.ErrCategoryAlreadyExists),
		errors.Is(err, domain.ErrPostedItemNotEditable),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidEstimatedValue),
		errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, domain.ErrRequestNotCancellable),
		errors.Is(err, domain.ErrCollectorRequired),
		errors.Is(err, domain.ErrEmptyRequestItems),
		errors.Is(err, domain.ErrInvalidActualValue),
		errors.Is(err, domain.ErrRequestAlreadyAssigned),
		errors.Is(err, domain.ErrDuplicateReview),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrCannotReviewSelf),
		errors.Is(err, domain.ErrDuplicateWishlistItem),
		errors.Is(err, domain.ErrEmptyWishlist),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInvalidWithdrawalAmount):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func parsePagination(c *fiber.Ctx, defaultLimit int) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > 100 {
		limit = defaultLimit
	}

	return page, limit
}
