package charity

import (
	"context"
	"errors"
	"fmt"

	"github.com/MohsinEzaidi/GreenCoins/domain"
	"github.com/MohsinEzaidi/GreenCoins/entities"
	"github.com/MohsinEzaidi/GreenCoins/pkg/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CharityService interface {
		GetCharities(ctx context.Context) ([]*domain.Charity, error)
		Donate(ctx context.Context, req domain.DonateRequest, userID string) (*domain.DonateResponse, error)
	}

	charityService struct {
		charityRepository CharityRepository
		ledgerService     ledger.LedgerService
	}
)

func NewCharityService(charityRepository CharityRepository, ledgerService ledger.LedgerService) CharityService {
	return &charityService{
		charityRepository: charityRepository,
		ledgerService:     ledgerService,
	}
}

func (s *charityService) GetCharities(ctx context.Context) ([]*domain.Charity, error) {
	charities, err := s.charityRepository.GetCharities(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Charity, 0, len(charities))
	for _, c := range charities {
		result = append(result, toCharityResponse(c))
	}

	return result, nil
}

func (s *charityService) Donate(ctx context.Context, req domain.DonateRequest, userID string) (*domain.DonateResponse, error) {
	charity, err := s.charityRepository.GetCharityByID(ctx, req.CharityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCharityNotFound
		}
		return nil, err
	}

	if req.Amount < charity.MinDonation {
		return nil, domain.ErrInvalidDonationAmount
	}

	// The coin spend goes through the ledger so the donation shows up in
	// the transaction history like any other redeem.
	transaction, err := s.ledgerService.SpendCoins(ctx, userID, req.Amount, fmt.Sprintf("Donated: %s", charity.Name))
	if err != nil {
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if err := s.charityRepository.RecordDonation(ctx, &entities.Donation{
		UserID:    userUUID,
		CharityID: charity.ID,
		Amount:    req.Amount,
	}); err != nil {
		return nil, err
	}

	return &domain.DonateResponse{
		CharityName: charity.Name,
		Amount:      req.Amount,
		Balance:     transaction.Balance,
		DonatedAt:   transaction.CreatedAt,
	}, nil
}

func toCharityResponse(c *entities.Charity) *domain.Charity {
	return &domain.Charity{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Target:      c.Target,
		Current:     c.Current,
		MinDonation: c.MinDonation,
		Impact:      c.Impact,
		ImageURL:    c.ImageURL,
	}
}
