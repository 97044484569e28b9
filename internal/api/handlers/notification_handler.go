package handlers

import (
	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/internal/api/presenters"
	"RecycleHub-Backend/pkg/notification"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
		GetUnreadCount(c *fiber.Ctx) error
		MarkAsRead(c *fiber.Ctx) error
		MarkAllAsRead(c *fiber.Ctx) error
		ClearOldNotifications(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		validator           *validator.Validate
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, validator *validator.Validate) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		validator:           validator,
	}
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := parsePagination(c, 10)
	unreadOnly := c.Query("unread_only") == "true"

	notifications, count, err := h.notificationService.GetUserNotifications(c.Context(), userID, unreadOnly, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetNotifications, err)
	}

	return presenters.PaginatedResponse(c, notifications, fiber.StatusOK, domain.MessageSuccessGetNotifications, presenters.NewPagination(page, limit, count))
}

func (h *notificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	count, err := h.notificationService.GetUnreadCount(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, count, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) MarkAsRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.notificationService.MarkAsRead(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedMarkAsRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkAsRead)
}

func (h *notificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.notificationService.MarkAllAsRead(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedMarkAsRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkAllAsRead)
}

func (h *notificationHandler) ClearOldNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.ClearNotificationsRequest)
	if err := c.BodyParser(req); err != nil && len(c.Body()) > 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearNotifications, err)
	}

	cleared, err := h.notificationService.ClearOldNotifications(c.Context(), userID, req.OlderThanDays)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedClearNotifications, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"cleared": cleared}, fiber.StatusOK, domain.MessageSuccessClearNotifications)
}
