package handlers

import (
	"errors"

	"github.com/MohsinEzaidi/GreenCoins/domain"
	"github.com/MohsinEzaidi/GreenCoins/internal/api/presenters"
	"github.com/MohsinEzaidi/GreenCoins/pkg/charity"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CharityHandler interface {
		GetCharities(c *fiber.Ctx) error
		Donate(c *fiber.Ctx) error
	}

	charityHandler struct {
		charityService charity.CharityService
		validator      *validator.Validate
	}
)

func NewCharityHandler(charityService charity.CharityService, validator *validator.Validate) CharityHandler {
	return &charityHandler{
		charityService: charityService,
		validator:      validator,
	}
}

func (h *charityHandler) GetCharities(c *fiber.Ctx) error {
	charities, err := h.charityService.GetCharities(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCharities, err)
	}

	return presenters.SuccessResponse(c, charities, fiber.StatusOK, domain.MessageSuccessGetCharities)
}

func (h *charityHandler) Donate(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.DonateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDonate, err)
	}

	resp, err := h.charityService.Donate(c.Context(), *req, userID)
	if err != nil {
		status := fiber.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrCharityNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, domain.ErrInsufficientBalance):
			status = fiber.StatusUnprocessableEntity
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDonate, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessDonate)
}
