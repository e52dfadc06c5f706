package migration

import (
	"fmt"
	"log"

	"github.com/MohsinEzaidi/GreenCoins/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Transaction{}); err != nil {
		log.Fatalf("Error migrating transaction database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Reward{}); err != nil {
		log.Fatalf("Error migrating reward database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Charity{}); err != nil {
		log.Fatalf("Error migrating charity database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Notification{}); err != nil {
		log.Fatalf("Error migrating notification database: %v", err)
		return err
	}

	if err := seedRewards(db); err != nil {
		log.Fatalf("Error seeding rewards: %v", err)
		return err
	}
	if err := seedCharities(db); err != nil {
		log.Fatalf("Error seeding charities: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

func seedRewards(db *gorm.DB) error {
	rewards := []entities.Reward{
		{
			Name:        "Free Coffee",
			Description: "Redeem a free coffee at participating cafes",
			CoinCost:    50,
			Icon:        "☕",
			IsActive:    true,
		},
		{
			Name:        "10% Discount",
			Description: "Get 10% off on your next eco-product purchase",
			CoinCost:    30,
			Icon:        "🎫",
			IsActive:    true,
		},
		{
			Name:        "Mobile Recharge",
			Description: "₹100 mobile recharge voucher",
			CoinCost:    100,
			Icon:        "📱",
			IsActive:    true,
		},
	}

	for _, reward := range rewards {
		if err := db.Where("name = ?", reward.Name).FirstOrCreate(&reward).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCharities(db *gorm.DB) error {
	charities := []entities.Charity{
		{
			Name:        "Amazon Reforestation",
			Description: "Planting native trees to restore critical biodiversity in the Amazon rainforest.",
			Target:      500000,
			MinDonation: 100,
			Impact:      "1 Tree / 500 GC",
			IsActive:    true,
		},
		{
			Name:        "Ocean Plastic Cleanup",
			Description: "Using advanced boom technology to remove Great Pacific Garbage Patch plastics.",
			Target:      250000,
			MinDonation: 250,
			Impact:      "1kg Plastic / 250 GC",
			IsActive:    true,
		},
		{
			Name:        "Coral Reef Recovery",
			Description: "3D printing coral structures to revive dying reefs in the Great Barrier Reef.",
			Target:      100000,
			MinDonation: 500,
			Impact:      "1 Coral / 1000 GC",
			IsActive:    true,
		},
	}

	for _, charity := range charities {
		if err := db.Where("name = ?", charity.Name).FirstOrCreate(&charity).Error; err != nil {
			return err
		}
	}
	return nil
}
