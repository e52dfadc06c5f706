package ledger

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/MohsinEzaidi/GreenCoins/domain"
	"github.com/MohsinEzaidi/GreenCoins/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLedgerRepository struct {
	names        map[string]string
	balances     map[string]int
	transactions []*entities.Transaction
}

func newFakeLedgerRepository() *fakeLedgerRepository {
	return &fakeLedgerRepository{
		names:    make(map[string]string),
		balances: make(map[string]int),
	}
}

func (r *fakeLedgerRepository) addUser(name string) uuid.UUID {
	id := uuid.New()
	r.names[id.String()] = name
	r.balances[id.String()] = 0
	return id
}

func (r *fakeLedgerRepository) EarnCoins(_ context.Context, userID uuid.UUID, amount int, description string) (*entities.Transaction, error) {
	balance, ok := r.balances[userID.String()]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	newBalance := balance + amount
	r.balances[userID.String()] = newBalance
	tx := &entities.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        entities.TransactionTypeEarn,
		Description: description,
		Amount:      amount,
		Balance:     newBalance,
		Timestamp:   entities.Timestamp{CreatedAt: time.Now()},
	}
	r.transactions = append([]*entities.Transaction{tx}, r.transactions...)
	return tx, nil
}

func (r *fakeLedgerRepository) SpendCoins(_ context.Context, userID uuid.UUID, amount int, description string) (*entities.Transaction, error) {
	balance, ok := r.balances[userID.String()]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if balance < amount {
		return nil, domain.ErrInsufficientBalance
	}

	newBalance := balance - amount
	r.balances[userID.String()] = newBalance
	tx := &entities.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        entities.TransactionTypeRedeem,
		Description: description,
		Amount:      amount,
		Balance:     newBalance,
		Timestamp:   entities.Timestamp{CreatedAt: time.Now()},
	}
	r.transactions = append([]*entities.Transaction{tx}, r.transactions...)
	return tx, nil
}

func (r *fakeLedgerRepository) GetUserBalance(_ context.Context, userID string) (int, error) {
	balance, ok := r.balances[userID]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	return balance, nil
}

func (r *fakeLedgerRepository) GetUserTransactions(_ context.Context, userID string, page, limit int) ([]*entities.Transaction, int64, error) {
	var all []*entities.Transaction
	for _, tx := range r.transactions {
		if tx.UserID.String() == userID {
			all = append(all, tx)
		}
	}

	offset := (page - 1) * limit
	if offset >= len(all) {
		return nil, int64(len(all)), nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], int64(len(all)), nil
}

func (r *fakeLedgerRepository) GetUserCoinStats(_ context.Context, userID string) (map[string]int, error) {
	balance, ok := r.balances[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	totalEarned, totalRedeemed := 0, 0
	for _, tx := range r.transactions {
		if tx.UserID.String() != userID {
			continue
		}
		if tx.Type == entities.TransactionTypeEarn {
			totalEarned += tx.Amount
		} else {
			totalRedeemed += tx.Amount
		}
	}

	return map[string]int{
		"balance":        balance,
		"total_earned":   totalEarned,
		"total_redeemed": totalRedeemed,
	}, nil
}

func (r *fakeLedgerRepository) GetLeaderboard(_ context.Context, limit int) ([]*LeaderboardRow, error) {
	var rows []*LeaderboardRow
	for id, name := range r.names {
		stats, _ := r.GetUserCoinStats(context.Background(), id)
		rows = append(rows, &LeaderboardRow{UserID: id, Name: name, TotalEarned: stats["total_earned"]})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].TotalEarned > rows[j].TotalEarned })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

type fakeRewardRepository struct {
	rewards map[string]*entities.Reward
}

func newFakeRewardRepository() *fakeRewardRepository {
	return &fakeRewardRepository{rewards: make(map[string]*entities.Reward)}
}

func (r *fakeRewardRepository) addReward(name string, cost int) uuid.UUID {
	id := uuid.New()
	r.rewards[id.String()] = &entities.Reward{ID: id, Name: name, CoinCost: cost, IsActive: true}
	return id
}

func (r *fakeRewardRepository) CreateReward(_ context.Context, reward *entities.Reward) error {
	r.rewards[reward.ID.String()] = reward
	return nil
}

func (r *fakeRewardRepository) GetRewards(_ context.Context) ([]*entities.Reward, error) {
	var rewards []*entities.Reward
	for _, reward := range r.rewards {
		rewards = append(rewards, reward)
	}
	return rewards, nil
}

func (r *fakeRewardRepository) GetRewardByID(_ context.Context, id string) (*entities.Reward, error) {
	reward, ok := r.rewards[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return reward, nil
}

func TestEarnAction_RejectsInvalidQuantity(t *testing.T) {
	repo := newFakeLedgerRepository()
	service := NewLedgerService(repo, newFakeRewardRepository())
	userID := repo.addUser("Mohsine")

	_, err := service.EarnAction(context.Background(), domain.EarnActionRequest{
		ActionKind: "RecyclePlastic",
		Quantity:   0,
	}, userID.String())

	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Empty(t, repo.transactions)
	assert.Equal(t, 0, repo.balances[userID.String()])
}

func TestEarnAction_RejectsUnknownActionKind(t *testing.T) {
	repo := newFakeLedgerRepository()
	service := NewLedgerService(repo, newFakeRewardRepository())
	userID := repo.addUser("Mohsine")

	_, err := service.EarnAction(context.Background(), domain.EarnActionRequest{
		ActionKind: "PlantTree",
		Quantity:   1,
	}, userID.String())

	require.ErrorIs(t, err, domain.ErrInvalidActionKind)
	assert.Empty(t, repo.transactions)
}

func TestEarnAction_RejectsUnknownUser(t *testing.T) {
	repo := newFakeLedgerRepository()
	service := NewLedgerService(repo, newFakeRewardRepository())

	_, err := service.EarnAction(context.Background(), domain.EarnActionRequest{
		ActionKind: "RecyclePaper",
		Quantity:   2,
	}, uuid.NewString())

	require.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, repo.transactions)
}

func TestEarnAction_EventIgnoresQuantity(t *testing.T) {
	repo := newFakeLedgerRepository()
	service := NewLedgerService(repo, newFakeRewardRepository())
	userID := repo.addUser("Mohsine")

	resp, err := service.EarnAction(context.Background(), domain.EarnActionRequest{
		ActionKind: "CleanupEvent",
		Quantity:   7,
	}, userID.String())

	require.NoError(t, err)
	assert.Equal(t, 20, resp.CoinsEarned)
	assert.Equal(t, 20, resp.Balance)
	require.Len(t, repo.transactions, 1)
	assert.Equal(t, "Clean-up Event x1", repo.transactions[0].Description)
}

func TestRedeemReward_InsufficientBalance(t *testing.T) {
	repo := newFakeLedgerRepository()
	rewards := newFakeRewardRepository()
	service := NewLedgerService(repo, rewards)
	userID := repo.addUser("Mohsine")
	rewardID := rewards.addReward("Free Coffee", 50)

	_, err := service.EarnAction(context.Background(), domain.EarnActionRequest{
		ActionKind: "RecyclePaper",
		Quantity:   3,
	}, userID.String())
	require.NoError(t, err)

	_, err = service.RedeemReward(context.Background(), domain.RedeemRewardRequest{
		RewardID: rewardID.String(),
	}, userID.String())

	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, 9, repo.balances[userID.String()])
	require.Len(t, repo.transactions, 1) // only the earn
}

func TestRedeemReward_UnknownReward(t *testing.T) {
	repo := newFakeLedgerRepository()
	service := NewLedgerService(repo, newFakeRewardRepository())
	userID := repo.addUser("Mohsine")

	_, err := service.RedeemReward(context.Background(), domain.RedeemRewardRequest{
		RewardID: uuid.NewString(),
	}, userID.String())

	require.ErrorIs(t, err, domain.ErrRewardNotFound)
}

// Full end-to-end scenario: earn, rejected redeem, flat-rate event earn,
// successful redeem, newest-first history.
func TestLedgerScenario(t *testing.T) {
	repo := newFakeLedgerRepository()
	rewards := newFakeRewardRepository()
	service := NewLedgerService(repo, rewards)
	userID := repo.addUser("Mohsine")
	rewardID := rewards.addReward("10% Discount", 30)

	ctx := context.Background()

	resp, err := service.EarnAction(ctx, domain.EarnActionRequest{
		ActionKind: "RecyclePlastic",
		Quantity:   4,
	}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 20, resp.CoinsEarned)
	assert.Equal(t, 20, resp.Balance)

	_, err = service.RedeemReward(ctx, domain.RedeemRewardRequest{RewardID: rewardID.String()}, userID.String())
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	balance, err := service.GetBalance(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 20, balance)

	resp, err = service.EarnAction(ctx, domain.EarnActionRequest{
		ActionKind: "CleanupEvent",
		Quantity:   1,
	}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 40, resp.Balance)

	redeemResp, err := service.RedeemReward(ctx, domain.RedeemRewardRequest{RewardID: rewardID.String()}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 30, redeemResp.CoinsSpent)
	assert.Equal(t, 10, redeemResp.Balance)

	history, count, err := service.GetTransactionHistory(ctx, userID.String(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	require.Len(t, history, 3)
	assert.Equal(t, entities.TransactionTypeRedeem, history[0].Type)
	assert.Equal(t, "Redeemed: 10% Discount", history[0].Description)
	assert.Equal(t, "Clean-up Event x1", history[1].Description)
	assert.Equal(t, "Recycle Plastic x4", history[2].Description)

	stats, err := service.GetUserStats(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Balance)
	assert.Equal(t, 40, stats.TotalEarned)
	assert.Equal(t, 30, stats.TotalRedeemed)
	assert.Equal(t, domain.RankBronze, stats.Rank)
}

// The stored balance must always equal sum(EARN) - sum(REDEEM).
func TestBalanceMatchesTransactionSums(t *testing.T) {
	repo := newFakeLedgerRepository()
	rewards := newFakeRewardRepository()
	service := NewLedgerService(repo, rewards)
	userID := repo.addUser("Mohsine")
	rewardID := rewards.addReward("Free Coffee", 50)

	ctx := context.Background()
	steps := []domain.EarnActionRequest{
		{ActionKind: "RecyclePlastic", Quantity: 10},
		{ActionKind: "RecyclePaper", Quantity: 7},
		{ActionKind: "CleanupEvent", Quantity: 1},
		{ActionKind: "RecyclePlastic", Quantity: 2},
	}
	for _, step := range steps {
		_, err := service.EarnAction(ctx, step, userID.String())
		require.NoError(t, err)
	}

	_, err := service.RedeemReward(ctx, domain.RedeemRewardRequest{RewardID: rewardID.String()}, userID.String())
	require.NoError(t, err)

	stats, err := service.GetUserStats(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, stats.TotalEarned-stats.TotalRedeemed, stats.Balance)

	balance, err := service.GetBalance(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, stats.Balance, balance)
}

func TestSubscribersReceiveBalanceEvents(t *testing.T) {
	repo := newFakeLedgerRepository()
	service := NewLedgerService(repo, newFakeRewardRepository())
	userID := repo.addUser("Mohsine")

	var events []domain.BalanceEvent
	service.Subscribe(func(event domain.BalanceEvent) {
		events = append(events, event)
	})

	_, err := service.EarnAction(context.Background(), domain.EarnActionRequest{
		ActionKind: "RecyclePlastic",
		Quantity:   3,
	}, userID.String())
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, userID.String(), events[0].UserID)
	assert.Equal(t, entities.TransactionTypeEarn, events[0].Type)
	assert.Equal(t, 15, events[0].Amount)
	assert.Equal(t, 15, events[0].Balance)
	assert.Equal(t, 15, events[0].TotalEarned)
}

func TestGetLeaderboardRanksByTotalEarned(t *testing.T) {
	repo := newFakeLedgerRepository()
	service := NewLedgerService(repo, newFakeRewardRepository())
	first := repo.addUser("Aya")
	second := repo.addUser("Karim")

	ctx := context.Background()
	for i := 0; i < 30; i++ {
		_, err := service.EarnAction(ctx, domain.EarnActionRequest{ActionKind: "CleanupEvent", Quantity: 1}, first.String())
		require.NoError(t, err)
	}
	_, err := service.EarnAction(ctx, domain.EarnActionRequest{ActionKind: "RecyclePaper", Quantity: 5}, second.String())
	require.NoError(t, err)

	leaderboard, err := service.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, leaderboard, 2)
	assert.Equal(t, "Aya", leaderboard[0].Name)
	assert.Equal(t, 600, leaderboard[0].TotalEarned)
	assert.Equal(t, domain.RankSilver, leaderboard[0].Rank)
	assert.Equal(t, "Karim", leaderboard[1].Name)
	assert.Equal(t, domain.RankBronze, leaderboard[1].Rank)
}
