package main

import (
	"fmt"

	"campushub/pkg/config"
	"campushub/pkg/database"
	"campushub/pkg/logger"
	"campushub/pkg/storage"
	auctionModel "campushub/services/auction/internal/model"
	authModel "campushub/services/auth/internal/model"
	networkModel "campushub/services/network/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var wikiEntries = map[string]string{
	"Python": "# Python\n\nPython is a high-level programming language known for readable syntax.\n",
	"Go":     "# Go\n\nGo is a statically typed language designed for building simple, reliable software.\n",
	"HTML":   "# HTML\n\nHTML is the standard markup language for documents on the web.\n",
	"CSS":    "# CSS\n\nCSS describes how HTML elements are displayed.\n",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	wikiStorage, err := storage.NewClient(cfg, cfg.WikiBucketName)
	if err != nil {
		log.Error("Failed to create storage client: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, wikiStorage, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, wikiStorage *storage.Client, log *logger.Logger) error {
	testUsers := []struct {
		email    string
		username string
		password string
	}{
		{"alice@test.com", "alice", "password123"},
		{"bob@test.com", "bob", "password123"},
		{"charlie@test.com", "charlie", "password123"},
		{"diana@test.com", "diana", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		user := &authModel.UserModel{
			Email:    userData.email,
			Username: userData.username,
			Password: string(hashedPassword),
			Role:     "member",
			Cash:     decimal.RequireFromString("10000.00"),
			IsActive: true,
		}

		var existingUser authModel.UserModel
		result := db.Where("email = ? OR username = ?", user.Email, user.Username).First(&existingUser)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.Username)
			userIDs = append(userIDs, existingUser.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}

		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)
	}

	if len(userIDs) == 0 {
		return fmt.Errorf("no users available for seeding")
	}

	for title, content := range wikiEntries {
		if err := wikiStorage.PutText(title+".md", content, "text/markdown"); err != nil {
			log.Error("Failed to seed wiki entry %s: %v", title, err)
			continue
		}
		log.Info("Seeded wiki entry: %s", title)
	}

	if err := seedListings(db, userIDs, log); err != nil {
		return err
	}

	return seedPosts(db, userIDs, log)
}

func seedListings(db *gorm.DB, userIDs []string, log *logger.Logger) error {
	category := &auctionModel.CategoryModel{Name: "Electronics"}
	var existing auctionModel.CategoryModel
	if err := db.Where("name = ?", category.Name).First(&existing).Error; err == nil {
		category = &existing
	} else if err := db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	listings := []struct {
		title       string
		description string
		price       string
	}{
		{"Mechanical keyboard", "Lightly used, browns.", "45.00"},
		{"Desk lamp", "Adjustable arm, warm light.", "10.00"},
		{"Monitor stand", "Fits up to 27 inches.", "15.50"},
	}

	for i, data := range listings {
		creatorID := userIDs[i%len(userIDs)]
		price := decimal.RequireFromString(data.price)

		var count int64
		db.Model(&auctionModel.ListingModel{}).Where("title = ?", data.title).Count(&count)
		if count > 0 {
			continue
		}

		listing := &auctionModel.ListingModel{
			Title:        data.title,
			Description:  data.description,
			StartingBid:  price,
			CurrentPrice: price,
			CategoryID:   &category.ID,
			CreatorID:    creatorID,
			Active:       true,
		}
		if err := db.Create(listing).Error; err != nil {
			log.Error("Failed to create listing %s: %v", data.title, err)
			continue
		}
		log.Info("Created listing: %s", data.title)
	}

	return nil
}

func seedPosts(db *gorm.DB, userIDs []string, log *logger.Logger) error {
	for i, userID := range userIDs {
		post := &networkModel.PostModel{
			AuthorID: userID,
			Content:  fmt.Sprintf("Hello from seed user %d!", i+1),
		}
		if err := db.Create(post).Error; err != nil {
			log.Error("Failed to create post: %v", err)
		}
	}

	// Everyone follows everyone earlier in the list.
	for i := 0; i < len(userIDs); i++ {
		for j := i + 1; j < len(userIDs); j++ {
			var count int64
			db.Model(&networkModel.FollowModel{}).
				Where("follower_id = ? AND followee_id = ?", userIDs[j], userIDs[i]).Count(&count)
			if count > 0 {
				continue
			}

			follow := &networkModel.FollowModel{
				FollowerID: userIDs[j],
				FolloweeID: userIDs[i],
			}
			if err := db.Create(follow).Error; err != nil {
				log.Error("Failed to create follow: %v", err)
			}
		}
	}

	log.Info("Created seed posts and follows")
	return nil
}
