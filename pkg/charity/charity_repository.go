package charity

import (
	"context"
	"time"

	"github.com/MohsinEzaidi/GreenCoins/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CharityRepository interface {
		CreateCharity(ctx context.Context, charity *entities.Charity) error
		GetCharities(ctx context.Context) ([]*entities.Charity, error)
		GetCharityByID(ctx context.Context, id string) (*entities.Charity, error)
		RecordDonation(ctx context.Context, donation *entities.Donation) error
	}

	charityRepository struct {
		db *gorm.DB
	}
)

func NewCharityRepository(db *gorm.DB) CharityRepository {
	return &charityRepository{db: db}
}

func (r *charityRepository) CreateCharity(ctx context.Context, charity *entities.Charity) error {
	return r.db.WithContext(ctx).Create(charity).Error
}

func (r *charityRepository) GetCharities(ctx context.Context) ([]*entities.Charity, error) {
	var charities []*entities.Charity
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&charities).Error; err != nil {
		return nil, err
	}
	return charities, nil
}

func (r *charityRepository) GetCharityByID(ctx context.Context, id string) (*entities.Charity, error) {
	var charity entities.Charity
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&charity).Error; err != nil {
		return nil, err
	}
	return &charity, nil
}

// RecordDonation appends the donation row and advances the charity's
// funding progress in one database transaction.
func (r *charityRepository) RecordDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if donation.ID == uuid.Nil {
			donation.ID = uuid.New()
		}
		donation.CreatedAt = time.Now()
		donation.UpdatedAt = time.Now()

		if err := tx.Create(donation).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Charity{}).
			Where("id = ?", donation.CharityID).
			Update("current", gorm.Expr("current + ?", donation.Amount)).Error
	})
}
