package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/MohsinEzaidi/GreenCoins/domain"
	"github.com/MohsinEzaidi/GreenCoins/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	LedgerRepository interface {
		// Ledger writes. The balance update and the transaction append
		// run inside one database transaction.
		EarnCoins(ctx context.Context, userID uuid.UUID, amount int, description string) (*entities.Transaction, error)
		SpendCoins(ctx context.Context, userID uuid.UUID, amount int, description string) (*entities.Transaction, error)

		// Read-only projections
		GetUserBalance(ctx context.Context, userID string) (int, error)
		GetUserTransactions(ctx context.Context, userID string, page, limit int) ([]*entities.Transaction, int64, error)
		GetUserCoinStats(ctx context.Context, userID string) (map[string]int, error)
		GetLeaderboard(ctx context.Context, limit int) ([]*LeaderboardRow, error)
	}

	LeaderboardRow struct {
		UserID      string
		Name        string
		TotalEarned int
	}

	ledgerRepository struct {
		db *gorm.DB
	}
)

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) EarnCoins(ctx context.Context, userID uuid.UUID, amount int, description string) (*entities.Transaction, error) {
	var transaction *entities.Transaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entities.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}

		newBalance := user.CoinBalance + amount
		if err := tx.Model(&user).Update("coin_balance", newBalance).Error; err != nil {
			return err
		}

		transaction = &entities.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        entities.TransactionTypeEarn,
			Description: description,
			Amount:      amount,
			Balance:     newBalance,
			Timestamp: entities.Timestamp{
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
		}
		return tx.Create(transaction).Error
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

func (r *ledgerRepository) SpendCoins(ctx context.Context, userID uuid.UUID, amount int, description string) (*entities.Transaction, error) {
	var transaction *entities.Transaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entities.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}

		// The balance guard lives in the UPDATE itself so a redeem can
		// never drive the balance below zero.
		res := tx.Model(&entities.User{}).
			Where("id = ? AND coin_balance >= ?", userID, amount).
			Update("coin_balance", gorm.Expr("coin_balance - ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInsufficientBalance
		}

		transaction = &entities.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        entities.TransactionTypeRedeem,
			Description: description,
			Amount:      amount,
			Balance:     user.CoinBalance - amount,
			Timestamp: entities.Timestamp{
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
		}
		return tx.Create(transaction).Error
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

func (r *ledgerRepository) GetUserBalance(ctx context.Context, userID string) (int, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
		return 0, err
	}
	return user.CoinBalance, nil
}

func (r *ledgerRepository) GetUserTransactions(ctx context.Context, userID string, page, limit int) ([]*entities.Transaction, int64, error) {
	var transactions []*entities.Transaction
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Transaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, count, nil
}

func (r *ledgerRepository) GetUserCoinStats(ctx context.Context, userID string) (map[string]int, error) {
	var totalEarned int
	earnQuery := r.db.WithContext(ctx).
		Model(&entities.Transaction{}).
		Where("user_id = ? AND type = ?", userID, entities.TransactionTypeEarn).
		Select("COALESCE(SUM(amount), 0) as total")
	if err := earnQuery.Row().Scan(&totalEarned); err != nil {
		return nil, err
	}

	var totalRedeemed int
	redeemQuery := r.db.WithContext(ctx).
		Model(&entities.Transaction{}).
		Where("user_id = ? AND type = ?", userID, entities.TransactionTypeRedeem).
		Select("COALESCE(SUM(amount), 0) as total")
	if err := redeemQuery.Row().Scan(&totalRedeemed); err != nil {
		return nil, err
	}

	balance, err := r.GetUserBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return map[string]int{
		"balance":        balance,
		"total_earned":   totalEarned,
		"total_redeemed": totalRedeemed,
	}, nil
}

func (r *ledgerRepository) GetLeaderboard(ctx context.Context, limit int) ([]*LeaderboardRow, error) {
	var rows []*LeaderboardRow

	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Select("users.id as user_id, users.name, COALESCE(SUM(transactions.amount), 0) as total_earned").
		Joins("LEFT JOIN transactions ON transactions.user_id = users.id AND transactions.type = ?", entities.TransactionTypeEarn).
		Group("users.id, users.name").
		Order("total_earned DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
