package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessEarnAction     = "action logged successfully"
	MessageSuccessRedeemReward   = "reward redeemed successfully"
	MessageSuccessGetBalance     = "balance retrieved successfully"
	MessageSuccessGetHistory     = "transaction history retrieved successfully"
	MessageSuccessGetStats       = "coin statistics retrieved successfully"
	MessageSuccessGetLeaderboard = "leaderboard retrieved successfully"

	MessageFailedEarnAction     = "failed to log action"
	MessageFailedRedeemReward   = "failed to redeem reward"
	MessageFailedGetBalance     = "failed to retrieve balance"
	MessageFailedGetHistory     = "failed to retrieve transaction history"
	MessageFailedGetStats       = "failed to retrieve coin statistics"
	MessageFailedGetLeaderboard = "failed to retrieve leaderboard"

	ErrInvalidQuantity     = errors.New("quantity must be greater than 0")
	ErrInvalidActionKind   = errors.New("unknown action kind")
	ErrInsufficientBalance = errors.New("insufficient coins")
)

const (
	// Rank thresholds over total coins earned
	RANK_SILVER_THRESHOLD = 500
	RANK_GOLD_THRESHOLD   = 1000

	RankBronze = "Bronze"
	RankSilver = "Silver"
	RankGold   = "Gold"
)

// ActionKind is one of the fixed eco-action catalog entries. Event-type
// actions award a flat rate regardless of quantity.
type ActionKind struct {
	Code         string
	Label        string
	CoinsPerItem int
	IsEvent      bool
}

var ActionCatalog = []ActionKind{
	{Code: "RecyclePlastic", Label: "Recycle Plastic", CoinsPerItem: 5},
	{Code: "RecyclePaper", Label: "Recycle Paper", CoinsPerItem: 3},
	{Code: "CleanupEvent", Label: "Clean-up Event", CoinsPerItem: 20, IsEvent: true},
}

func ActionKindByCode(code string) (ActionKind, bool) {
	for _, kind := range ActionCatalog {
		if kind.Code == code {
			return kind, true
		}
	}
	return ActionKind{}, false
}

type (
	EarnActionRequest struct {
		ActionKind string `json:"action_kind" validate:"required,oneof=RecyclePlastic RecyclePaper CleanupEvent"`
		Quantity   int    `json:"quantity" validate:"required,min=1"`
	}

	EarnActionResponse struct {
		CoinsEarned int `json:"coins_earned"`
		Balance     int `json:"balance"`
	}

	RedeemRewardRequest struct {
		RewardID string `json:"reward_id" validate:"required,uuid"`
	}

	RedeemRewardResponse struct {
		CoinsSpent int `json:"coins_spent"`
		Balance    int `json:"balance"`
	}

	Transaction struct {
		ID          string    `json:"id"`
		UserID      string    `json:"user_id"`
		Type        string    `json:"type"`
		Description string    `json:"description"`
		Amount      int       `json:"amount"`
		Balance     int       `json:"balance"`
		CreatedAt   time.Time `json:"created_at"`
	}

	UserCoinStats struct {
		Balance       int    `json:"balance"`
		TotalEarned   int    `json:"total_earned"`
		TotalRedeemed int    `json:"total_redeemed"`
		Rank          string `json:"rank"`
	}

	LeaderboardEntry struct {
		UserID      string `json:"user_id"`
		Name        string `json:"name"`
		TotalEarned int    `json:"total_earned"`
		Rank        string `json:"rank"`
	}

	// BalanceEvent is published to ledger subscribers after every
	// successful earn or redeem.
	BalanceEvent struct {
		UserID      string
		Type        string
		Amount      int
		Balance     int
		TotalEarned int
	}
)

// RankForTotalEarned maps lifetime earned coins to a display rank.
func RankForTotalEarned(totalEarned int) string {
	switch {
	case totalEarned > RANK_GOLD_THRESHOLD:
		return RankGold
	case totalEarned > RANK_SILVER_THRESHOLD:
		return RankSilver
	default:
		return RankBronze
	}
}
