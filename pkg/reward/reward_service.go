package reward

import (
	"context"
	"errors"

	"github.com/MohsinEzaidi/GreenCoins/domain"
	"gorm.io/gorm"
)

type (
	RewardService interface {
		GetRewards(ctx context.Context) ([]*domain.Reward, error)
		GetRewardByID(ctx context.Context, id string) (*domain.Reward, error)
	}

	rewardService struct {
		rewardRepository RewardRepository
	}
)

func NewRewardService(rewardRepository RewardRepository) RewardService {
	return &rewardService{rewardRepository: rewardRepository}
}

func (s *rewardService) GetRewards(ctx context.Context) ([]*domain.Reward, error) {
	rewards, err := s.rewardRepository.GetRewards(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Reward, 0, len(rewards))
	for _, reward := range rewards {
		result = append(result, &domain.Reward{
			ID:          reward.ID.String(),
			Name:        reward.Name,
			Description: reward.Description,
			CoinCost:    reward.CoinCost,
			Icon:        reward.Icon,
		})
	}

	return result, nil
}

func (s *rewardService) GetRewardByID(ctx context.Context, id string) (*domain.Reward, error) {
	reward, err := s.rewardRepository.GetRewardByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRewardNotFound
		}
		return nil, err
	}

	return &domain.Reward{
		ID:          reward.ID.String(),
		Name:        reward.Name,
		Description: reward.Description,
		CoinCost:    reward.CoinCost,
		Icon:        reward.Icon,
	}, nil
}
