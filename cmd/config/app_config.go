package config

import (
	"os"
	"time"

	"github.com/MohsinEzaidi/GreenCoins/internal/api/handlers"
	"github.com/MohsinEzaidi/GreenCoins/internal/api/routes"
	"github.com/MohsinEzaidi/GreenCoins/internal/middleware"
	"github.com/MohsinEzaidi/GreenCoins/internal/utils"
	"github.com/MohsinEzaidi/GreenCoins/internal/utils/storage"
	"github.com/MohsinEzaidi/GreenCoins/pkg/charity"
	"github.com/MohsinEzaidi/GreenCoins/pkg/jwt"
	"github.com/MohsinEzaidi/GreenCoins/pkg/ledger"
	"github.com/MohsinEzaidi/GreenCoins/pkg/notification"
	"github.com/MohsinEzaidi/GreenCoins/pkg/reward"
	"github.com/MohsinEzaidi/GreenCoins/pkg/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	ledgerRepository := ledger.NewLedgerRepository(db)
	rewardRepository := reward.NewRewardRepository(db)
	charityRepository := charity.NewCharityRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	notificationService := notification.NewNotificationService(notificationRepository)
	userService := user.NewUserService(userRepository, jwtService, notificationService, s3)
	ledgerService := ledger.NewLedgerService(ledgerRepository, rewardRepository)
	rewardService := reward.NewRewardService(rewardRepository)
	charityService := charity.NewCharityService(charityRepository, ledgerService)

	// The notification service observes the ledger for rank promotions.
	ledgerService.Subscribe(notificationService.HandleBalanceEvent)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService, validator)
	rewardHandler := handlers.NewRewardHandler(rewardService)
	charityHandler := handlers.NewCharityHandler(charityService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		LedgerHandler:       ledgerHandler,
		RewardHandler:       rewardHandler,
		CharityHandler:      charityHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
