package handlers

import (
	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/internal/api/presenters"
	"RecycleHub-Backend/internal/cache"
	"RecycleHub-Backend/pkg/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetRecyclingItems(c *fiber.Ctx) error
		GetRecyclingItemByID(c *fiber.Ctx) error
		CreateRecyclingItem(c *fiber.Ctx) error
		UpdateRecyclingItem(c *fiber.Ctx) error
		DeleteRecyclingItem(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		CreateCategory(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		cacheStore     *cache.Store
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, cacheStore *cache.Store, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		cacheStore:     cacheStore,
		validator:      validator,
	}
}

func (h *catalogHandler) GetRecyclingItems(c *fiber.Ctx) error {
	page, limit := parsePagination(c, 10)
	category := c.Query("category")

	items, count, err := h.catalogService.GetRecyclingItems(c.Context(), category, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecyclingItems, err)
	}

	return presenters.PaginatedResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetRecyclingItems, presenters.NewPagination(page, limit, count))
}

func (h *catalogHandler) GetRecyclingItemByID(c *fiber.Ctx) error {
	item, err := h.catalogService.GetRecyclingItemByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecyclingItems, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetRecyclingItems)
}

func (h *catalogHandler) CreateRecyclingItem(c *fiber.Ctx) error {
	req := new(domain.CreateRecyclingItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecyclingItem, err)
	}

	item, err := h.catalogService.CreateRecyclingItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateRecyclingItem, err)
	}

	h.cacheStore.InvalidateEntity(cache.EntityRecyclingItems)
	return presenters.SuccessResponse(c, item, fiber.StatusCreated, domain.MessageSuccessCreateRecyclingItem)
}

func (h *catalogHandler) UpdateRecyclingItem(c *fiber.Ctx) error {
	req := new(domain.UpdateRecyclingItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecyclingItem, err)
	}

	if err := h.catalogService.UpdateRecyclingItem(c.Context(), c.Params("id"), *req); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateRecyclingItem, err)
	}

	h.cacheStore.InvalidateEntity(cache.EntityRecyclingItems)
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateRecyclingItem)
}

func (h *catalogHandler) DeleteRecyclingItem(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteRecyclingItem(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteRecyclingItem, err)
	}

	h.cacheStore.InvalidateEntity(cache.EntityRecyclingItems)
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecyclingItem)
}

func (h *catalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, categories, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *catalogHandler) CreateCategory(c *fiber.Ctx) error {
	req := new(domain.CreateCategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedManageCategory, err)
	}

	category, err := h.catalogService.CreateCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedManageCategory, err)
	}

	h.cacheStore.InvalidateEntity(cache.EntityCategories)
	return presenters.SuccessResponse(c, category, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *catalogHandler) UpdateCategory(c *fiber.Ctx) error {
	req := new(domain.UpdateCategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedManageCategory, err)
	}

	if err := h.catalogService.UpdateCategory(c.Context(), c.Params("id"), *req); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedManageCategory, err)
	}

	h.cacheStore.InvalidateEntity(cache.EntityCategories)
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCategory)
}

func (h *catalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedManageCategory, err)
	}

	h.cacheStore.InvalidateEntity(cache.EntityCategories)
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}
