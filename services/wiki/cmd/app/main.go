package main

import (
	"campushub/pkg/cache"
	"campushub/pkg/config"
	"campushub/pkg/logger"
	"campushub/pkg/storage"
	wikiApp "campushub/services/wiki/internal/app"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Wiki Service API
// @version         1.0
// @description     Markdown encyclopedia backed by object storage

// @host      localhost:8002
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

	storageClient, err := storage.NewClient(cfg, cfg.WikiBucketName)
	if err != nil {
		log.Error("Failed to connect to object storage: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	wikiApp.Run(cfg, log, storageClient, redisClient)
}
