package routes

import (
	"RecycleHub-Backend/domain"
	"RecycleHub-Backend/internal/api/handlers"
	"RecycleHub-Backend/internal/cache"
	"RecycleHub-Backend/internal/middleware"
	"RecycleHub-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	CatalogHandler      handlers.CatalogHandler
	PostedItemHandler   handlers.PostedItemHandler
	RequestHandler      handlers.RequestHandler
	ReviewHandler       handlers.ReviewHandler
	NotificationHandler handlers.NotificationHandler
	WishlistHandler     handlers.WishlistHandler
	PayoutHandler       handlers.PayoutHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
	CacheStore          *cache.Store
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.HelmetMiddleware())

	c.User()
	c.Catalog()
	c.PostedItems()
	c.Requests()
	c.Reviews()
	c.Notifications()
	c.Wishlist()
	c.Payout()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Get("/me", auth, c.UserHandler.Me)
		user.Patch("/update", auth, c.UserHandler.UpdateProfile)
	}

	admin := c.App.Group("/api/v1/admin/users", auth, c.Middleware.RoleMiddleware(domain.RoleAdmin))
	{
		admin.Get("", c.UserHandler.GetUsers)
		admin.Patch("/:id/active", c.UserHandler.SetUserActive)
		admin.Patch("/:id/role", c.UserHandler.UpdateUserRole)
	}
}

func (c *Config) Catalog() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	items := c.App.Group("/api/v1/recycling-items")
	{
		items.Get("", c.Middleware.CacheMiddleware(c.CacheStore, cache.EntityRecyclingItems), c.CatalogHandler.GetRecyclingItems)
		items.Get("/:id", c.Middleware.CacheMiddleware(c.CacheStore, cache.EntityRecyclingItems), c.CatalogHandler.GetRecyclingItemByID)
	}

	categories := c.App.Group("/api/v1/categories")
	{
		categories.Get("", c.Middleware.CacheMiddleware(c.CacheStore, cache.EntityCategories), c.CatalogHandler.GetCategories)
	}

	admin := c.App.Group("/api/v1/admin", auth, c.Middleware.RoleMiddleware(domain.RoleAdmin))
	{
		admin.Post("/recycling-items", c.CatalogHandler.CreateRecyclingItem)
		admin.Put("/recycling-items/:id", c.CatalogHandler.UpdateRecyclingItem)
		admin.Delete("/recycling-items/:id", c.CatalogHandler.DeleteRecyclingItem)
		admin.Post("/categories", c.CatalogHandler.CreateCategory)
		admin.Put("/categories/:id", c.CatalogHandler.UpdateCategory)
		admin.Delete("/categories/:id", c.CatalogHandler.DeleteCategory)
	}
}

func (c *Config) PostedItems() {
	items := c.App.Group("/api/v1/posted-items", c.Middleware.AuthMiddleware(c.JWTService))
	{
		items.Post("", c.PostedItemHandler.CreatePostedItem)
		items.Get("", c.PostedItemHandler.GetUserItems)
		items.Get("/:id", c.PostedItemHandler.GetPostedItemByID)
		items.Put("/:id", c.PostedItemHandler.UpdatePostedItem)
		items.Post("/:id/cancel", c.PostedItemHandler.CancelPostedItem)
	}
}

func (c *Config) Requests() {
	requests := c.App.Group("/api/v1/collection-requests", c.Middleware.AuthMiddleware(c.JWTService))
	{
		requests.Post("", c.RequestHandler.CreateFromWishlist)
		requests.Post("/scheduled", c.RequestHandler.CreateScheduled)
		requests.Get("", c.RequestHandler.GetRequests)
		requests.Get("/stats", c.RequestHandler.GetStats)
		requests.Get("/:id", c.RequestHandler.GetRequestByID)
		requests.Patch("/:id/status", c.Middleware.RoleMiddleware(domain.RoleCollector, domain.RoleAdmin), c.RequestHandler.UpdateStatus)
		requests.Post("/:id/complete", c.Middleware.RoleMiddleware(domain.RoleCollector, domain.RoleAdmin), c.RequestHandler.CompleteRequest)
		requests.Post("/:id/cancel", c.RequestHandler.CancelRequest)
	}
}

func (c *Config) Reviews() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	reviews := c.App.Group("/api/v1/reviews")
	{
		reviews.Get("/collector/:id", c.ReviewHandler.GetCollectorReviews)
		reviews.Post("", auth, c.ReviewHandler.CreateReview)
		reviews.Get("/mine", auth, c.ReviewHandler.GetMyReviews)
		reviews.Put("/:id", auth, c.ReviewHandler.UpdateReview)
		reviews.Delete("/:id", auth, c.ReviewHandler.DeleteReview)
	}
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	{
		notifications.Get("", c.NotificationHandler.GetNotifications)
		notifications.Get("/unread-count", c.NotificationHandler.GetUnreadCount)
		notifications.Patch("/:id/read", c.NotificationHandler.MarkAsRead)
		notifications.Patch("/read-all", c.NotificationHandler.MarkAllAsRead)
		notifications.Post("/clear", c.NotificationHandler.ClearOldNotifications)
	}
}

func (c *Config) Wishlist() {
	wishlist := c.App.Group("/api/v1/wishlist", c.Middleware.AuthMiddleware(c.JWTService))
	{
		wishlist.Post("", c.WishlistHandler.AddItem)
		wishlist.Get("", c.WishlistHandler.GetWishlist)
		wishlist.Put("/:id", c.WishlistHandler.UpdateEntry)
		wishlist.Delete("/:id", c.WishlistHandler.RemoveEntry)
		wishlist.Post("/convert", c.WishlistHandler.ConvertToRequest)
	}
}

func (c *Config) Payout() {
	payouts := c.App.Group("/api/v1/payouts", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.RoleMiddleware(domain.RoleCollector, domain.RoleAdmin))
	{
		payouts.Post("/withdrawals", c.PayoutHandler.RequestWithdrawal)
		payouts.Get("/withdrawals", c.PayoutHandler.GetWithdrawals)
		payouts.Get("/balance", c.PayoutHandler.GetBalance)
	}

	admin := c.App.Group("/api/v1/admin/withdrawals", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.RoleMiddleware(domain.RoleAdmin))
	{
		admin.Patch("/:id/status", c.PayoutHandler.UpdateWithdrawalStatus)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
