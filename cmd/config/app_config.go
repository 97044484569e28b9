package config

import (
	"os"
	"strconv"
	"time"

	"RecycleHub-Backend/internal/api/handlers"
	"RecycleHub-Backend/internal/api/routes"
	"RecycleHub-Backend/internal/cache"
	"RecycleHub-Backend/internal/middleware"
	"RecycleHub-Backend/internal/utils"
	"RecycleHub-Backend/internal/utils/storage"
	"RecycleHub-Backend/pkg/catalog"
	"RecycleHub-Backend/pkg/jwt"
	"RecycleHub-Backend/pkg/notification"
	"RecycleHub-Backend/pkg/payout"
	"RecycleHub-Backend/pkg/postitem"
	"RecycleHub-Backend/pkg/request"
	"RecycleHub-Backend/pkg/review"
	"RecycleHub-Backend/pkg/user"
	"RecycleHub-Backend/pkg/wishlist"

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
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        configInt("RATE_LIMIT_MAX", 10),
		Expiration: time.Duration(configInt("RATE_LIMIT_WINDOW_SEC", 1)) * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	cacheStore := cache.NewStore(time.Duration(configInt("CACHE_TTL_MINUTES", 5)) * time.Minute)

	// Repository
	userRepository := user.NewUserRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)
	postedItemRepository := postitem.NewPostedItemRepository(db)
	requestRepository := request.NewRequestRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	wishlistRepository := wishlist.NewWishlistRepository(db)
	payoutRepository := payout.NewPayoutRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	catalogService := catalog.NewCatalogService(catalogRepository, s3)
	postedItemService := postitem.NewPostedItemService(postedItemRepository, userRepository, s3)
	requestService := request.NewRequestService(requestRepository, catalogRepository, userRepository)
	reviewService := review.NewReviewService(reviewRepository, userRepository)
	notificationService := notification.NewNotificationService(notificationRepository)
	wishlistService := wishlist.NewWishlistService(wishlistRepository, catalogRepository, requestService)
	payoutService := payout.NewPayoutService(payoutRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, cacheStore, validator)
	postedItemHandler := handlers.NewPostedItemHandler(postedItemService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService, validator)
	payoutHandler := handlers.NewPayoutHandler(payoutService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		CatalogHandler:      catalogHandler,
		PostedItemHandler:   postedItemHandler,
		RequestHandler:      requestHandler,
		ReviewHandler:       reviewHandler,
		NotificationHandler: notificationHandler,
		WishlistHandler:     wishlistHandler,
		PayoutHandler:       payoutHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
		CacheStore:          cacheStore,
	}
	routesConfig.Setup()
	return app, nil
}

func configInt(key string, fallback int) int {
	v, err := strconv.Atoi(utils.GetConfig(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
