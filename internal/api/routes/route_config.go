package routes

import (
	"github.com/MohsinEzaidi/GreenCoins/internal/api/handlers"
	"github.com/MohsinEzaidi/GreenCoins/internal/middleware"
	"github.com/MohsinEzaidi/GreenCoins/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	LedgerHandler       handlers.LedgerHandler
	RewardHandler       handlers.RewardHandler
	CharityHandler      handlers.CharityHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Ledger()
	c.Rewards()
	c.Charities()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Patch("/preferences", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdatePreferences)
	}
}

func (c *Config) Ledger() {
	coins := c.App.Group("/api/v1/coins", c.Middleware.AuthMiddleware(c.JWTService))
	coins.Post("/earn", c.LedgerHandler.EarnAction)
	coins.Post("/redeem", c.LedgerHandler.RedeemReward)
	coins.Get("/balance", c.LedgerHandler.GetBalance)
	coins.Get("/history", c.LedgerHandler.GetTransactionHistory)
	coins.Get("/stats", c.LedgerHandler.GetUserStats)

	c.App.Get("/api/v1/leaderboard", c.Middleware.AuthMiddleware(c.JWTService), c.LedgerHandler.GetLeaderboard)
}

func (c *Config) Rewards() {
	c.App.Get("/api/v1/rewards", c.Middleware.AuthMiddleware(c.JWTService), c.RewardHandler.GetRewards)
}

func (c *Config) Charities() {
	charities := c.App.Group("/api/v1/charities", c.Middleware.AuthMiddleware(c.JWTService))
	charities.Get("", c.CharityHandler.GetCharities)
	charities.Post("/donate", c.CharityHandler.Donate)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	notifications.Get("", c.NotificationHandler.GetNotifications)
	notifications.Patch("/:id/read", c.NotificationHandler.MarkRead)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
