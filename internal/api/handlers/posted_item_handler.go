package handlers

import (
	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/internal/api/presenters"
	"RecycleHub-Backend/pkg/postitem"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PostedItemHandler interface {
		CreatePostedItem(c *fiber.Ctx) error
		GetUserItems(c *fiber.Ctx) error
		GetPostedItemByID(c *fiber.Ctx) error
		UpdatePostedItem(c *fiber.Ctx) error
		CancelPostedItem(c *fiber.Ctx) error
	}

	postedItemHandler struct {
		postedItemService postitem.PostedItemService
		validator         *validator.Validate
	}
)

func NewPostedItemHandler(postedItemService postitem.PostedItemService, validator *validator.Validate) PostedItemHandler {
	return &postedItemHandler{
		postedItemService: postedItemService,
		validator:         validator,
	}
}

func (h *postedItemHandler) CreatePostedItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreatePostedItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePostedItem, err)
	}

	item, err := h.postedItemService.CreatePostedItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreatePostedItem, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusCreated, domain.MessageSuccessCreatePostedItem)
}

func (h *postedItemHandler) GetUserItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := parsePagination(c, 10)
	status := c.Query("status")

	items, count, err := h.postedItemService.GetUserItems(c.Context(), userID, status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetPostedItems, err)
	}

	return presenters.PaginatedResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetPostedItems, presenters.NewPagination(page, limit, count))
}

func (h *postedItemHandler) GetPostedItemByID(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	item, err := h.postedItemService.GetPostedItemByID(c.Context(), c.Params("id"), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetPostedItems, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetPostedItems)
}

func (h *postedItemHandler) UpdatePostedItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.UpdatePostedItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePostedItem, err)
	}

	if err := h.postedItemService.UpdatePostedItem(c.Context(), c.Params("id"), *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdatePostedItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdatePostedItem)
}

func (h *postedItemHandler) CancelPostedItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	if err := h.postedItemService.CancelPostedItem(c.Context(), c.Params("id"), userID, role); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCancelPostedItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelPostedItem)
}
