package reward

import (
	"context"

	"github.com/MohsinEzaidi/GreenCoins/entities"
	"gorm.io/gorm"
)

type (
	RewardRepository interface {
		CreateReward(ctx context.Context, reward *entities.Reward) error
		GetRewards(ctx context.Context) ([]*entities.Reward, error)
		GetRewardByID(ctx context.Context, id string) (*entities.Reward, error)
	}

	rewardRepository struct {
		db *gorm.DB
	}
)

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) CreateReward(ctx context.Context, reward *entities.Reward) error {
	return r.db.WithContext(ctx).Create(reward).Error
}

func (r *rewardRepository) GetRewards(ctx context.Context) ([]*entities.Reward, error) {
	var rewards []*entities.Reward
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("coin_cost ASC").
		Find(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}

func (r *rewardRepository) GetRewardByID(ctx context.Context, id string) (*entities.Reward, error) {
	var reward entities.Reward
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&reward).Error; err != nil {
		return nil, err
	}
	return &reward, nil
}
