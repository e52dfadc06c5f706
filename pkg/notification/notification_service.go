package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MohsinEzaidi/GreenCoins/domain"
	"github.com/MohsinEzaidi/GreenCoins/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationService interface {
		Notify(ctx context.Context, userID string, title, message string) error
		GetUserNotifications(ctx context.Context, userID string) ([]*domain.Notification, error)
		MarkRead(ctx context.Context, id string, userID string) error

		// HandleBalanceEvent is the ledger subscriber. It records a rank
		// promotion notification whenever a successful earn crosses a
		// rank threshold.
		HandleBalanceEvent(event domain.BalanceEvent)
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{notificationRepository: notificationRepository}
}

func (s *notificationService) Notify(ctx context.Context, userID string, title, message string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.notificationRepository.CreateNotification(ctx, &entities.Notification{
		ID:      uuid.New(),
		UserID:  userUUID,
		Title:   title,
		Message: message,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	})
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID string) ([]*domain.Notification, error) {
	notifications, err := s.notificationRepository.GetUserNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Notification, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, &domain.Notification{
			ID:        n.ID.String(),
			Title:     n.Title,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}

	return result, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string, userID string) error {
	if err := s.notificationRepository.MarkNotificationRead(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *notificationService) HandleBalanceEvent(event domain.BalanceEvent) {
	if event.Type != entities.TransactionTypeEarn {
		return
	}

	previousRank := domain.RankForTotalEarned(event.TotalEarned - event.Amount)
	newRank := domain.RankForTotalEarned(event.TotalEarned)
	if newRank == previousRank {
		return
	}

	_ = s.Notify(
		context.Background(),
		event.UserID,
		"Achievement Unlocked!",
		fmt.Sprintf("You've reached the %s tier!", newRank),
	)
}
