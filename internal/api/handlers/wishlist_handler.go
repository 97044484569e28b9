package handlers

import (
	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/internal/api/presenters"
	"RecycleHub-Backend/pkg/wishlist"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WishlistHandler interface {
		AddItem(c *fiber.Ctx) error
		GetWishlist(c *fiber.Ctx) error
		UpdateEntry(c *fiber.Ctx) error
		RemoveEntry(c *fiber.Ctx) error
		ConvertToRequest(c *fiber.Ctx) error
	}

	wishlistHandler struct {
		wishlistService wishlist.WishlistService
		validator       *validator.Validate
	}
)

func NewWishlistHandler(wishlistService wishlist.WishlistService, validator *validator.Validate) WishlistHandler {
	return &wishlistHandler{
		wishlistService: wishlistService,
		validator:       validator,
	}
}

func (h *wishlistHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.AddWishlistRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWishlist, err)
	}

	entry, err := h.wishlistService.AddItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddWishlist, err)
	}

	return presenters.SuccessResponse(c, entry, fiber.StatusCreated, domain.MessageSuccessAddWishlist)
}

func (h *wishlistHandler) GetWishlist(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := parsePagination(c, 10)

	entries, count, err := h.wishlistService.GetUserWishlist(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetWishlist, err)
	}

	return presenters.PaginatedResponse(c, entries, fiber.StatusOK, domain.MessageSuccessGetWishlist, presenters.NewPagination(page, limit, count))
}

func (h *wishlistHandler) UpdateEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.UpdateWishlistRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateWishlist, err)
	}

	entry, err := h.wishlistService.UpdateEntry(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateWishlist, err)
	}

	return presenters.SuccessResponse(c, entry, fiber.StatusOK, domain.MessageSuccessUpdateWishlist)
}

func (h *wishlistHandler) RemoveEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.wishlistService.RemoveEntry(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedRemoveWishlist, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveWishlist)
}

func (h *wishlistHandler) ConvertToRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.ConvertWishlistRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConvertWishlist, err)
	}

	res, err := h.wishlistService.ConvertToRequest(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedConvertWishlist, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessConvertWishlist)
}
