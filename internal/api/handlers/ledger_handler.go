package handlers

import (
	"errors"
	"strconv"

	"github.com/MohsinEzaidi/GreenCoins/domain"
	"github.com/MohsinEzaidi/GreenCoins/internal/api/presenters"
	"github.com/MohsinEzaidi/GreenCoins/pkg/ledger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LedgerHandler interface {
		EarnAction(c *fiber.Ctx) error
		RedeemReward(c *fiber.Ctx) error
		GetBalance(c *fiber.Ctx) error
		GetTransactionHistory(c *fiber.Ctx) error
		GetUserStats(c *fiber.Ctx) error
		GetLeaderboard(c *fiber.Ctx) error
	}

	ledgerHandler struct {
		ledgerService ledger.LedgerService
		validator     *validator.Validate
	}
)

func NewLedgerHandler(ledgerService ledger.LedgerService, validator *validator.Validate) LedgerHandler {
	return &ledgerHandler{
		ledgerService: ledgerService,
		validator:     validator,
	}
}

func (h *ledgerHandler) EarnAction(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.EarnActionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEarnAction, err)
	}

	resp, err := h.ledgerService.EarnAction(c.Context(), *req, userID)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrUserNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedEarnAction, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessEarnAction)
}

func (h *ledgerHandler) RedeemReward(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.RedeemRewardRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRedeemReward, err)
	}

	resp, err := h.ledgerService.RedeemReward(c.Context(), *req, userID)
	if err != nil {
		status := fiber.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrRewardNotFound), errors.Is(err, domain.ErrUserNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, domain.ErrInsufficientBalance):
			status = fiber.StatusUnprocessableEntity
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedRedeemReward, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessRedeemReward)
}

func (h *ledgerHandler) GetBalance(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	balance, err := h.ledgerService.GetBalance(c.Context(), userID)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrUserNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetBalance, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"balance": balance}, fiber.StatusOK, domain.MessageSuccessGetBalance)
}

func (h *ledgerHandler) GetTransactionHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	// Parse pagination parameters
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	transactions, count, err := h.ledgerService.GetTransactionHistory(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *ledgerHandler) GetUserStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.ledgerService.GetUserStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStats)
}

func (h *ledgerHandler) GetLeaderboard(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}

	leaderboard, err := h.ledgerService.GetLeaderboard(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLeaderboard, err)
	}

	return presenters.SuccessResponse(c, leaderboard, fiber.StatusOK, domain.MessageSuccessGetLeaderboard)
}
