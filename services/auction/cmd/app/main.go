package main

import (
	"campushub/pkg/cache"
	"campushub/pkg/config"
	"campushub/pkg/database"
	"campushub/pkg/logger"
	"campushub/pkg/queue"
	"campushub/pkg/storage"
	auctionApp "campushub/services/auction/internal/app"
	"campushub/services/auction/internal/model"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Auction Service API
// @version         1.0
// @description     Auction listings, bids, comments and watchlists

// @host      localhost:8003
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg,
		&model.ListingModel{},
		&model.BidModel{},
		&model.CommentModel{},
		&model.WatchlistModel{},
		&model.CategoryModel{},
	)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	storageClient, err := storage.NewClient(cfg, cfg.MediaBucketName)
	if err != nil {
		log.Error("Failed to connect to object storage: %v", err)
		panic(err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}

	auctionApp.Run(cfg, log, db, redisClient, storageClient, queueClient)
}
