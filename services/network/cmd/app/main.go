package main

import (
	"campushub/pkg/cache"
	"campushub/pkg/config"
	"campushub/pkg/database"
	"campushub/pkg/logger"
	"campushub/pkg/queue"
	networkApp "campushub/services/network/internal/app"
	"campushub/services/network/internal/model"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Network Service API
// @version         1.0
// @description     Posts, follows, likes and paginated feeds

// @host      localhost:8005
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
		&model.PostModel{},
		&model.LikeModel{},
		&model.FollowModel{},
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

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}

	networkApp.Run(cfg, log, db, redisClient, queueClient)
}
