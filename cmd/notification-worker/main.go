package main

import (
	"os"
	"os/signal"
	"syscall"

	"campushub/pkg/config"
	"campushub/pkg/logger"
	"campushub/pkg/queue"
)

// Drains the notification queue and dispatches each task. Delivery is just
// structured logging for now; a mail or push sender slots in behind the same
// handler.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	err = queueClient.ConsumeNotificationTasks(func(task map[string]interface{}) error {
		taskType, _ := task["type"].(string)
		userID, _ := task["user_id"].(string)

		switch taskType {
		case queue.TaskOutbid:
			log.Info("Notify %s: outbid on listing %v at %v", userID, task["listing_id"], task["amount"])
		case queue.TaskAuctionWon:
			log.Info("Notify %s: won listing %v at %v", userID, task["listing_id"], task["amount"])
		case queue.TaskNewFollower:
			log.Info("Notify %s: new follower %v", userID, task["follower_id"])
		case queue.TaskPostLiked:
			log.Info("Notify %s: post %v liked by %v", userID, task["post_id"], task["liker_id"])
		default:
			log.Warn("Unknown notification task type %q, dropping", taskType)
		}
		return nil
	})
	if err != nil {
		log.Error("Failed to start consumer: %v", err)
		panic(err)
	}

	log.Info("Notification worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Notification worker exited")
}
