package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/muhbabelli/BidBay/controllers"
	"github.com/muhbabelli/BidBay/database"
	"github.com/muhbabelli/BidBay/logger"
	"github.com/muhbabelli/BidBay/models"
	"github.com/muhbabelli/BidBay/repository"
	"github.com/muhbabelli/BidBay/routes"
	"github.com/muhbabelli/BidBay/services"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.Connect(); err != nil {
		logger.Log.Fatal("Database connection failed", zap.Error(err))
	}
	if err := models.Migrate(database.DB); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}
	if cfg.Seed {
		if err := database.Seed(database.DB); err != nil {
			logger.Log.Fatal("Seeding failed", zap.Error(err))
		}
	}

	db := database.DB
	userRepo := repository.NewGormUserRepository(db)
	addressRepo := repository.NewGormAddressRepository(db)
	categoryRepo := repository.NewGormCategoryRepository(db)
	productRepo := repository.NewGormProductRepository(db)
	bidRepo := repository.NewGormBidRepository(db)
	favoriteRepo := repository.NewGormFavoriteRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	analyticsRepo := repository.NewGormAnalyticsRepository(db)

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authService := services.NewAuthService(userRepo, tokenService)
	addressService := services.NewAddressService(addressRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo, categoryRepo, bidRepo, favoriteRepo, userRepo)
	bidService := services.NewBidService(db)
	favoriteService := services.NewFavoriteService(favoriteRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, userRepo)
	paymentService := services.NewPaymentService(db)
	analyticsService := services.NewAnalyticsService(analyticsRepo)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	routes.Register(r, routes.Controllers{
		Auth:      controllers.NewAuthController(authService),
		Address:   controllers.NewAddressController(addressService),
		Category:  controllers.NewCategoryController(categoryService),
		Product:   controllers.NewProductController(productService),
		Bid:       controllers.NewBidController(bidService),
		Favorite:  controllers.NewFavoriteController(favoriteService),
		Order:     controllers.NewOrderController(orderService),
		Payment:   controllers.NewPaymentController(paymentService),
		Analytics: controllers.NewAnalyticsController(analyticsService),
	}, tokenService, userRepo)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Log.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Error starting server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Forced shutdown", zap.Error(err))
	}
}
