package charity

import (
	"context"
	"testing"
	"time"

	"github.com/MohsinEzaidi/GreenCoins/domain"
	"github.com/MohsinEzaidi/GreenCoins/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCharityRepository struct {
	charities map[string]*entities.Charity
	donations []*entities.Donation
}

func newFakeCharityRepository() *fakeCharityRepository {
	return &fakeCharityRepository{charities: make(map[string]*entities.Charity)}
}

func (r *fakeCharityRepository) addCharity(name string, minDonation int) uuid.UUID {
	id := uuid.New()
	r.charities[id.String()] = &entities.Charity{
		ID:          id,
		Name:        name,
		Target:      100000,
		MinDonation: minDonation,
		IsActive:    true,
	}
	return id
}

func (r *fakeCharityRepository) CreateCharity(_ context.Context, charity *entities.Charity) error {
	r.charities[charity.ID.String()] = charity
	return nil
}

func (r *fakeCharityRepository) GetCharities(_ context.Context) ([]*entities.Charity, error) {
	var charities []*entities.Charity
	for _, c := range r.charities {
		charities = append(charities, c)
	}
	return charities, nil
}

func (r *fakeCharityRepository) GetCharityByID(_ context.Context, id string) (*entities.Charity, error) {
	c, ok := r.charities[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeCharityRepository) RecordDonation(_ context.Context, donation *entities.Donation) error {
	r.donations = append(r.donations, donation)
	r.charities[donation.CharityID.String()].Current += donation.Amount
	return nil
}

// fakeLedgerService tracks a single balance; only the spend path matters here.
type fakeLedgerService struct {
	balance      int
	descriptions []string
}

func (s *fakeLedgerService) SpendCoins(_ context.Context, userID string, amount int, description string) (*domain.Transaction, error) {
	if s.balance < amount {
		return nil, domain.ErrInsufficientBalance
	}
	s.balance -= amount
	s.descriptions = append(s.descriptions, description)
	return &domain.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        entities.TransactionTypeRedeem,
		Description: description,
		Amount:      amount,
		Balance:     s.balance,
		CreatedAt:   time.Now(),
	}, nil
}

func (s *fakeLedgerService) EarnAction(context.Context, domain.EarnActionRequest, string) (*domain.EarnActionResponse, error) {
	return nil, nil
}
func (s *fakeLedgerService) RedeemReward(context.Context, domain.RedeemRewardRequest, string) (*domain.RedeemRewardResponse, error) {
	return nil, nil
}
func (s *fakeLedgerService) GetBalance(context.Context, string) (int, error) { return s.balance, nil }
func (s *fakeLedgerService) GetTransactionHistory(context.Context, string, int, int) ([]*domain.Transaction, int64, error) {
	return nil, 0, nil
}
func (s *fakeLedgerService) GetUserStats(context.Context, string) (*domain.UserCoinStats, error) {
	return nil, nil
}
func (s *fakeLedgerService) GetLeaderboard(context.Context, int) ([]*domain.LeaderboardEntry, error) {
	return nil, nil
}
func (s *fakeLedgerService) Subscribe(func(domain.BalanceEvent)) {}

func TestDonate_SpendsCoinsAndAdvancesProgress(t *testing.T) {
	repo := newFakeCharityRepository()
	ledgerService := &fakeLedgerService{balance: 1000}
	service := NewCharityService(repo, ledgerService)
	charityID := repo.addCharity("Ocean Plastic Cleanup", 250)
	userID := uuid.NewString()

	resp, err := service.Donate(context.Background(), domain.DonateRequest{
		CharityID: charityID.String(),
		Amount:    250,
	}, userID)

	require.NoError(t, err)
	assert.Equal(t, "Ocean Plastic Cleanup", resp.CharityName)
	assert.Equal(t, 750, resp.Balance)
	assert.Equal(t, 250, repo.charities[charityID.String()].Current)
	require.Len(t, ledgerService.descriptions, 1)
	assert.Equal(t, "Donated: Ocean Plastic Cleanup", ledgerService.descriptions[0])
	require.Len(t, repo.donations, 1)
}

func TestDonate_RejectsBelowMinimum(t *testing.T) {
	repo := newFakeCharityRepository()
	ledgerService := &fakeLedgerService{balance: 1000}
	service := NewCharityService(repo, ledgerService)
	charityID := repo.addCharity("Coral Reef Recovery", 500)

	_, err := service.Donate(context.Background(), domain.DonateRequest{
		CharityID: charityID.String(),
		Amount:    100,
	}, uuid.NewString())

	require.ErrorIs(t, err, domain.ErrInvalidDonationAmount)
	assert.Equal(t, 1000, ledgerService.balance)
	assert.Empty(t, repo.donations)
}

func TestDonate_InsufficientBalance(t *testing.T) {
	repo := newFakeCharityRepository()
	ledgerService := &fakeLedgerService{balance: 100}
	service := NewCharityService(repo, ledgerService)
	charityID := repo.addCharity("Amazon Reforestation", 100)

	_, err := service.Donate(context.Background(), domain.DonateRequest{
		CharityID: charityID.String(),
		Amount:    500,
	}, uuid.NewString())

	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Empty(t, repo.donations)
	assert.Equal(t, 0, repo.charities[charityID.String()].Current)
}

func TestDonate_UnknownCharity(t *testing.T) {
	service := NewCharityService(newFakeCharityRepository(), &fakeLedgerService{balance: 1000})

	_, err := service.Donate(context.Background(), domain.DonateRequest{
		CharityID: uuid.NewString(),
		Amount:    500,
	}, uuid.NewString())

	require.ErrorIs(t, err, domain.ErrCharityNotFound)
}
