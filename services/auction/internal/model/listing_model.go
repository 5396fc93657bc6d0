package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListingModel struct {
	ID           string          `gorm:"type:uuid;primary_key" json:"id"`
	Title        string          `gorm:"type:varchar(200);not null" json:"title"`
	Description  string          `gorm:"type:text" json:"description"`
	StartingBid  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"starting_bid"`
	CurrentPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"current_price"`
	ImageURL     string          `gorm:"type:varchar(500)" json:"image_url"`
	CategoryID   *string         `gorm:"type:uuid;index" json:"category_id"`
	CreatorID    string          `gorm:"type:uuid;not null;index" json:"creator_id"`
	Active       bool            `gorm:"default:true;index" json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (ListingModel) TableName() string {
	return "listings"
}

func (l *ListingModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type BidModel struct {
	ID        string          `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string          `gorm:"type:uuid;not null;index" json:"user_id"`
	ListingID string          `gorm:"type:uuid;not null;index" json:"listing_id"`
	Amount    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (BidModel) TableName() string {
	return "bids"
}

func (b *BidModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

type CommentModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string         `gorm:"type:uuid;not null;index" json:"user_id"`
	ListingID string         `gorm:"type:uuid;not null;index" json:"listing_id"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type WatchlistModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string         `gorm:"type:uuid;not null;uniqueIndex:idx_watch_user_listing" json:"user_id"`
	ListingID string         `gorm:"type:uuid;not null;uniqueIndex:idx_watch_user_listing" json:"listing_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (WatchlistModel) TableName() string {
	return "watchlist"
}

func (w *WatchlistModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}

type CategoryModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (c *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
