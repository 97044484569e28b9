package handlers

import (
	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/internal/api/presenters"
	"RecycleHub-Backend/pkg/payout"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PayoutHandler interface {
		RequestWithdrawal(c *fiber.Ctx) error
		GetWithdrawals(c *fiber.Ctx) error
		GetBalance(c *fiber.Ctx) error
		UpdateWithdrawalStatus(c *fiber.Ctx) error
	}

	payoutHandler struct {
		payoutService payout.PayoutService
		validator     *validator.Validate
	}
)

func NewPayoutHandler(payoutService payout.PayoutService, validator *validator.Validate) PayoutHandler {
	return &payoutHandler{
		payoutService: payoutService,
		validator:     validator,
	}
}

func (h *payoutHandler) RequestWithdrawal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.RequestWithdrawalRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestWithdrawal, err)
	}

	res, err := h.payoutService.RequestWithdrawal(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedRequestWithdrawal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRequestWithdrawal)
}

func (h *payoutHandler) GetWithdrawals(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := parsePagination(c, 10)

	withdrawals, count, err := h.payoutService.GetUserWithdrawals(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetWithdrawals, err)
	}

	return presenters.PaginatedResponse(c, withdrawals, fiber.StatusOK, domain.MessageSuccessGetWithdrawals, presenters.NewPagination(page, limit, count))
}

func (h *payoutHandler) GetBalance(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	balance, err := h.payoutService.GetBalance(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetWithdrawals, err)
	}

	return presenters.SuccessResponse(c, balance, fiber.StatusOK, domain.MessageSuccessGetWithdrawals)
}

func (h *payoutHandler) UpdateWithdrawalStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	req := new(domain.UpdateWithdrawalStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateWithdrawal, err)
	}

	if err := h.payoutService.UpdateWithdrawalStatus(c.Context(), id, *req); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateWithdrawal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateWithdrawal)
}
