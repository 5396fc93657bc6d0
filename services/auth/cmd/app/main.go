package main

import (
	"campushub/pkg/cache"
	"campushub/pkg/config"
	"campushub/pkg/database"
	"campushub/pkg/logger"
	authApp "campushub/services/auth/internal/app"
	"campushub/services/auth/internal/model"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Auth Service API
// @version         1.0
// @description     Shared identity service: registration, login and profiles

// @host      localhost:8001
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
	db, err := database.NewPostgresDB(cfg, &model.UserModel{})
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	authApp.Run(cfg, log, db, redisClient)
}
