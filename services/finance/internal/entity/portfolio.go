package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a point-in-time price for a stock symbol.
type Quote struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

// Transaction is one executed trade. Shares is positive for buys and
// negative for sells, so a user's position in a symbol is the plain sum.
type Transaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Symbol    string          `json:"symbol"`
	Shares    int             `json:"shares"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// Holding is a user's aggregate position in one symbol, priced at the
// latest quote.
type Holding struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Shares int             `json:"shares"`
	Price  decimal.Decimal `json:"price"`
	Value  decimal.Decimal `json:"value"`
}

// Portfolio is the full account view: open positions, uninvested cash and
// the grand total of both.
type Portfolio struct {
	Holdings   []*Holding      `json:"holdings"`
	Cash       decimal.Decimal `json:"cash"`
	TotalValue decimal.Decimal `json:"total_value"`
}
