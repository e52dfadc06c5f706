package handlers

import (
	"github.com/MohsinEzaidi/GreenCoins/domain"
	"github.com/MohsinEzaidi/GreenCoins/internal/api/presenters"
	"github.com/MohsinEzaidi/GreenCoins/pkg/reward"
	"github.com/gofiber/fiber/v2"
)

type (
	RewardHandler interface {
		GetRewards(c *fiber.Ctx) error
	}

	rewardHandler struct {
		rewardService reward.RewardService
	}
)

func NewRewardHandler(rewardService reward.RewardService) RewardHandler {
	return &rewardHandler{rewardService: rewardService}
}

func (h *rewardHandler) GetRewards(c *fiber.Ctx) error {
	rewards, err := h.rewardService.GetRewards(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRewards, err)
	}

	return presenters.SuccessResponse(c, rewards, fiber.StatusOK, domain.MessageSuccessGetRewards)
}
