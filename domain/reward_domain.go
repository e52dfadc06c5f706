package domain

import (
	"errors"
)

var (
	MessageSuccessGetRewards = "rewards retrieved successfully"
	MessageFailedGetRewards  = "failed to retrieve rewards"

	ErrRewardNotFound = errors.New("reward not found")
)

type (
	Reward struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		CoinCost    int    `json:"coin_cost"`
		Icon        string `json:"icon"`
	}
)
