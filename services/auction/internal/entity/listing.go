package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing is an auction item. CurrentPrice starts at StartingBid and only
// moves up through accepted bids; once Active is false it is frozen.
type Listing struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	StartingBid  decimal.Decimal `json:"starting_bid"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	ImageURL     string          `json:"image_url,omitempty"`
	CategoryID   string          `json:"category_id,omitempty"`
	CreatorID    string          `json:"creator_id"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
}

type Bid struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	ListingID string          `json:"listing_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ListingID string    `json:"listing_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListingDetail bundles everything the listing page needs.
type ListingDetail struct {
	Listing   *Listing   `json:"listing"`
	Bids      []*Bid     `json:"bids"`
	Comments  []*Comment `json:"comments"`
	BidCount  int        `json:"bid_count"`
	IsWatched bool       `json:"is_watched"`
	Winner    *Bid       `json:"winner,omitempty"`
}
