package notification

import (
	"context"
	"testing"

	"github.com/MohsinEzaidi/GreenCoins/domain"
	"github.com/MohsinEzaidi/GreenCoins/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotificationRepository struct {
	notifications []*entities.Notification
}

func (r *fakeNotificationRepository) CreateNotification(_ context.Context, n *entities.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepository) GetUserNotifications(_ context.Context, userID string) ([]*entities.Notification, error) {
	var result []*entities.Notification
	for _, n := range r.notifications {
		if n.UserID.String() == userID {
			result = append(result, n)
		}
	}
	return result, nil
}

func (r *fakeNotificationRepository) MarkNotificationRead(_ context.Context, id string, userID string) error {
	for _, n := range r.notifications {
		if n.ID.String() == id && n.UserID.String() == userID {
			n.IsRead = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func TestHandleBalanceEvent_RecordsRankPromotion(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := NewNotificationService(repo)
	userID := uuid.NewString()

	// 480 -> 520 crosses the Silver threshold
	service.HandleBalanceEvent(domain.BalanceEvent{
		UserID:      userID,
		Type:        entities.TransactionTypeEarn,
		Amount:      40,
		Balance:     520,
		TotalEarned: 520,
	})

	require.Len(t, repo.notifications, 1)
	assert.Equal(t, "Achievement Unlocked!", repo.notifications[0].Title)
	assert.Contains(t, repo.notifications[0].Message, domain.RankSilver)
}

func TestHandleBalanceEvent_IgnoresNonPromotions(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := NewNotificationService(repo)
	userID := uuid.NewString()

	service.HandleBalanceEvent(domain.BalanceEvent{
		UserID:      userID,
		Type:        entities.TransactionTypeEarn,
		Amount:      10,
		Balance:     110,
		TotalEarned: 110,
	})
	service.HandleBalanceEvent(domain.BalanceEvent{
		UserID:      userID,
		Type:        entities.TransactionTypeRedeem,
		Amount:      600,
		Balance:     10,
		TotalEarned: 610,
	})

	assert.Empty(t, repo.notifications)
}

func TestMarkRead(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := NewNotificationService(repo)
	userID := uuid.NewString()

	require.NoError(t, service.Notify(context.Background(), userID, "Welcome!", "Thanks for joining GreenCoins."))
	require.Len(t, repo.notifications, 1)

	id := repo.notifications[0].ID.String()
	require.NoError(t, service.MarkRead(context.Background(), id, userID))
	assert.True(t, repo.notifications[0].IsRead)

	err := service.MarkRead(context.Background(), uuid.NewString(), userID)
	require.ErrorIs(t, err, domain.ErrNotificationNotFound)
}
