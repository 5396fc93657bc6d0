package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campushub/pkg/logger"
	"campushub/services/finance/internal/entity"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// ErrSymbolNotFound is returned when the quote provider does not know the
// requested symbol.
var ErrSymbolNotFound = errors.New("unknown stock symbol")

const quoteCacheTTL = 60 * time.Second

type QuoteClient interface {
	Lookup(ctx context.Context, symbol string) (*entity.Quote, error)
}

type quoteClient struct {
	baseURL     string
	httpClient  *http.Client
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewQuoteClient(baseURL string, redisClient *redis.Client, logger *logger.Logger) QuoteClient {
	return &quoteClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		redisClient: redisClient,
		logger:      logger,
	}
}

type quoteResponse struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Price  string `json:"price"`
}

// Lookup fetches the latest price for symbol, serving from the Redis cache
// when a fresh entry exists. Cache failures are logged and ignored; the
// provider remains the source of truth.
func (c *quoteClient) Lookup(ctx context.Context, symbol string) (*entity.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrSymbolNotFound
	}

	cacheKey := "quote:" + symbol
	if c.redisClient != nil {
		if cached, err := c.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var quote entity.Quote
			if err := json.Unmarshal([]byte(cached), &quote); err == nil {
				return &quote, nil
			}
		}
	}

	reqURL := fmt.Sprintf("%s/quote?symbol=%s", c.baseURL, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrSymbolNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote provider returned status %d", resp.StatusCode)
	}

	var body quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode quote response: %w", err)
	}
	if body.Symbol == "" || body.Price == "" {
		return nil, ErrSymbolNotFound
	}

	price, err := decimal.NewFromString(body.Price)
	if err != nil {
		return nil, fmt.Errorf("quote provider returned malformed price %q", body.Price)
	}

	quote := &entity.Quote{
		Symbol: body.Symbol,
		Name:   body.Name,
		Price:  price,
	}

	if c.redisClient != nil {
		if payload, err := json.Marshal(quote); err == nil {
			if err := c.redisClient.Set(ctx, cacheKey, payload, quoteCacheTTL).Err(); err != nil {
				c.logger.Warn("Failed to cache quote for %s: %v", symbol, err)
			}
		}
	}

	return quote, nil
}
