package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campushub/pkg/config"
	"campushub/pkg/jwt"
	"campushub/pkg/logger"
	"campushub/pkg/middleware"
	"campushub/pkg/queue"
	"campushub/pkg/storage"
	auctionHTTP "campushub/services/auction/internal/controller/http"
	"campushub/services/auction/internal/repo/persistent"
	"campushub/services/auction/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, storageClient *storage.Client, queueClient *queue.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	listingRepo := persistent.NewListingRepository(db)

	// Initialize use cases
	auctionUseCase := usecase.NewAuctionUseCase(listingRepo, storageClient, queueClient, log)

	// Initialize HTTP handlers
	auctionHandler := auctionHTTP.NewAuctionHandler(auctionUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	// Public routes
	{
		api.GET("/listings", auctionHandler.ListActive)
		api.GET("/listings/:id", auctionHandler.GetListing)
		api.GET("/categories", auctionHandler.ListCategories)
		api.GET("/categories/:id/listings", auctionHandler.ListByCategory)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		protected.POST("/listings", auctionHandler.CreateListing)
		protected.POST("/listings/images", auctionHandler.UploadImage)
		protected.POST("/listings/:id/bids", auctionHandler.PlaceBid)
		protected.POST("/listings/:id/close", auctionHandler.CloseAuction)
		protected.POST("/listings/:id/watch", auctionHandler.ToggleWatch)
		protected.POST("/listings/:id/comments", auctionHandler.AddComment)
		protected.GET("/watchlist", auctionHandler.Watchlist)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Auction service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down auction service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection if it was initialized
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection if it was initialized
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Auction service exited")
}
