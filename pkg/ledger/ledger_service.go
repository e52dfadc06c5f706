package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MohsinEzaidi/GreenCoins/domain"
	"github.com/MohsinEzaidi/GreenCoins/pkg/reward"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// LedgerService is the single authoritative ledger behind every
	// presentation front end. Subscribers registered with Subscribe are
	// notified after each successful earn or redeem.
	LedgerService interface {
		EarnAction(ctx context.Context, req domain.EarnActionRequest, userID string) (*domain.EarnActionResponse, error)
		RedeemReward(ctx context.Context, req domain.RedeemRewardRequest, userID string) (*domain.RedeemRewardResponse, error)
		SpendCoins(ctx context.Context, userID string, amount int, description string) (*domain.Transaction, error)
		GetBalance(ctx context.Context, userID string) (int, error)
		GetTransactionHistory(ctx context.Context, userID string, page, limit int) ([]*domain.Transaction, int64, error)
		GetUserStats(ctx context.Context, userID string) (*domain.UserCoinStats, error)
		GetLeaderboard(ctx context.Context, limit int) ([]*domain.LeaderboardEntry, error)
		Subscribe(subscriber func(domain.BalanceEvent))
	}

	ledgerService struct {
		ledgerRepository LedgerRepository
		rewardRepository reward.RewardRepository

		mu          sync.Mutex
		subscribers []func(domain.BalanceEvent)
	}
)

func NewLedgerService(ledgerRepository LedgerRepository, rewardRepository reward.RewardRepository) LedgerService {
	return &ledgerService{
		ledgerRepository: ledgerRepository,
		rewardRepository: rewardRepository,
	}
}

func (s *ledgerService) EarnAction(ctx context.Context, req domain.EarnActionRequest, userID string) (*domain.EarnActionResponse, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	kind, ok := domain.ActionKindByCode(req.ActionKind)
	if !ok {
		return nil, domain.ErrInvalidActionKind
	}

	// Event-type actions award a flat rate and ignore the quantity.
	quantity := req.Quantity
	coinsEarned := kind.CoinsPerItem * quantity
	if kind.IsEvent {
		quantity = 1
		coinsEarned = kind.CoinsPerItem
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	description := fmt.Sprintf("%s x%d", kind.Label, quantity)

	transaction, err := s.ledgerRepository.EarnCoins(ctx, userUUID, coinsEarned, description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	s.publish(ctx, domain.BalanceEvent{
		UserID:  userID,
		Type:    transaction.Type,
		Amount:  transaction.Amount,
		Balance: transaction.Balance,
	})

	return &domain.EarnActionResponse{
		CoinsEarned: coinsEarned,
		Balance:     transaction.Balance,
	}, nil
}

func (s *ledgerService) RedeemReward(ctx context.Context, req domain.RedeemRewardRequest, userID string) (*domain.RedeemRewardResponse, error) {
	rewardEntity, err := s.rewardRepository.GetRewardByID(ctx, req.RewardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRewardNotFound
		}
		return nil, err
	}

	transaction, err := s.SpendCoins(ctx, userID, rewardEntity.CoinCost, fmt.Sprintf("Redeemed: %s", rewardEntity.Name))
	if err != nil {
		return nil, err
	}

	return &domain.RedeemRewardResponse{
		CoinsSpent: transaction.Amount,
		Balance:    transaction.Balance,
	}, nil
}

func (s *ledgerService) SpendCoins(ctx context.Context, userID string, amount int, description string) (*domain.Transaction, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	transaction, err := s.ledgerRepository.SpendCoins(ctx, userUUID, amount, description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	s.publish(ctx, domain.BalanceEvent{
		UserID:  userID,
		Type:    transaction.Type,
		Amount:  transaction.Amount,
		Balance: transaction.Balance,
	})

	return &domain.Transaction{
		ID:          transaction.ID.String(),
		UserID:      transaction.UserID.String(),
		Type:        transaction.Type,
		Description: transaction.Description,
		Amount:      transaction.Amount,
		Balance:     transaction.Balance,
		CreatedAt:   transaction.CreatedAt,
	}, nil
}

func (s *ledgerService) GetBalance(ctx context.Context, userID string) (int, error) {
	balance, err := s.ledgerRepository.GetUserBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrUserNotFound
		}
		return 0, err
	}
	return balance, nil
}

func (s *ledgerService) GetTransactionHistory(ctx context.Context, userID string, page, limit int) ([]*domain.Transaction, int64, error) {
	transactions, count, err := s.ledgerRepository.GetUserTransactions(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		result = append(result, &domain.Transaction{
			ID:          tx.ID.String(),
			UserID:      tx.UserID.String(),
			Type:        tx.Type,
			Description: tx.Description,
			Amount:      tx.Amount,
			Balance:     tx.Balance,
			CreatedAt:   tx.CreatedAt,
		})
	}

	return result, count, nil
}

func (s *ledgerService) GetUserStats(ctx context.Context, userID string) (*domain.UserCoinStats, error) {
	stats, err := s.ledgerRepository.GetUserCoinStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.UserCoinStats{
		Balance:       stats["balance"],
		TotalEarned:   stats["total_earned"],
		TotalRedeemed: stats["total_redeemed"],
		Rank:          domain.RankForTotalEarned(stats["total_earned"]),
	}, nil
}

func (s *ledgerService) GetLeaderboard(ctx context.Context, limit int) ([]*domain.LeaderboardEntry, error) {
	rows, err := s.ledgerRepository.GetLeaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		result = append(result, &domain.LeaderboardEntry{
			UserID:      row.UserID,
			Name:        row.Name,
			TotalEarned: row.TotalEarned,
			Rank:        domain.RankForTotalEarned(row.TotalEarned),
		})
	}

	return result, nil
}

func (s *ledgerService) Subscribe(subscriber func(domain.BalanceEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, subscriber)
}

func (s *ledgerService) publish(ctx context.Context, event domain.BalanceEvent) {
	stats, err := s.ledgerRepository.GetUserCoinStats(ctx, event.UserID)
	if err == nil {
		event.TotalEarned = stats["total_earned"]
	}

	s.mu.Lock()
	subscribers := make([]func(domain.BalanceEvent), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, subscriber := range subscribers {
		subscriber(event)
	}
}
