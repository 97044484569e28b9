package handlers

import (
	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/internal/api/presenters"
	"RecycleHub-Backend/pkg/request"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RequestHandler interface {
		CreateFromWishlist(c *fiber.Ctx) error
		CreateScheduled(c *fiber.Ctx) error
		GetRequests(c *fiber.Ctx) error
		GetRequestByID(c *fiber.Ctx) error
		UpdateStatus(c *fiber.Ctx) error
		CompleteRequest(c *fiber.Ctx) error
		CancelRequest(c *fiber.Ctx) error
		GetStats(c *fiber.Ctx) error
	}

	requestHandler struct {
		requestService request.RequestService
		validator      *validator.Validate
	}
)

func NewRequestHandler(requestService request.RequestService, validator *validator.Validate) RequestHandler {
	return &requestHandler{
		requestService: requestService,
		validator:      validator,
	}
}

func (h *requestHandler) CreateFromWishlist(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateFromWishlistRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRequest, err)
	}

	res, err := h.requestService.CreateFromWishlist(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRequest)
}

func (h *requestHandler) CreateScheduled(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateScheduledRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRequest, err)
	}

	res, err := h.requestService.CreateScheduled(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRequest)
}

func (h *requestHandler) GetRequests(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	page, limit := parsePagination(c, 10)

	requests, count, err := h.requestService.GetRequests(
		c.Context(), userID, role,
		c.Query("scope"), c.Query("status"), c.Query("type"),
		page, limit,
	)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRequests, err)
	}

	return presenters.PaginatedResponse(c, requests, fiber.StatusOK, domain.MessageSuccessGetRequests, presenters.NewPagination(page, limit, count))
}

func (h *requestHandler) GetRequestByID(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	res, err := h.requestService.GetRequestByID(c.Context(), c.Params("id"), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *requestHandler) UpdateStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.UpdateRequestStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStatus, err)
	}

	if err := h.requestService.UpdateStatus(c.Context(), c.Params("id"), *req, userID, role); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateStatus, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateStatus)
}

func (h *requestHandler) CompleteRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.CompleteRequestRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteRequest, err)
	}

	if err := h.requestService.Complete(c.Context(), c.Params("id"), *req, userID, role); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCompleteRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCompleteRequest)
}

func (h *requestHandler) CancelRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	if err := h.requestService.Cancel(c.Context(), c.Params("id"), userID, role); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCancelRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelRequest)
}

func (h *requestHandler) GetStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	stats, err := h.requestService.GetStats(c.Context(), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRequestStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetRequestStats)
}
