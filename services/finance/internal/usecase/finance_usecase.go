package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"campushub/pkg/apperrors"
	"campushub/pkg/logger"
	"campushub/services/finance/internal/client"
	"campushub/services/finance/internal/entity"
	"campushub/services/finance/internal/repo/persistent"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSymbol      = fmt.Errorf("%w: unknown stock symbol", apperrors.ErrValidation)
	ErrInvalidShares      = fmt.Errorf("%w: shares must be a positive whole number", apperrors.ErrValidation)
	ErrInsufficientFunds  = fmt.Errorf("%w: not enough cash for this purchase", apperrors.ErrBusinessRule)
	ErrInsufficientShares = fmt.Errorf("%w: you do not own enough shares", apperrors.ErrBusinessRule)
	ErrAccountNotFound    = fmt.Errorf("%w: account not found", apperrors.ErrNotFound)
)

type FinanceUseCase interface {
	Quote(ctx context.Context, symbol string) (*entity.Quote, error)
	Buy(ctx context.Context, userID, symbol string, shares int) (*entity.Transaction, error)
	Sell(ctx context.Context, userID, symbol string, shares int) (*entity.Transaction, error)
	Portfolio(ctx context.Context, userID string) (*entity.Portfolio, error)
	History(userID string) ([]*entity.Transaction, error)
}

type financeUseCase struct {
	tradeRepo   persistent.TradeRepository
	quoteClient client.QuoteClient
	logger      *logger.Logger
}

func NewFinanceUseCase(tradeRepo persistent.TradeRepository, quoteClient client.QuoteClient, logger *logger.Logger) FinanceUseCase {
	return &financeUseCase{
		tradeRepo:   tradeRepo,
		quoteClient: quoteClient,
		logger:      logger,
	}
}

func (uc *financeUseCase) Quote(ctx context.Context, symbol string) (*entity.Quote, error) {
	quote, err := uc.quoteClient.Lookup(ctx, symbol)
	if err != nil {
		if errors.Is(err, client.ErrSymbolNotFound) {
			return nil, ErrInvalidSymbol
		}
		uc.logger.Error("Quote lookup failed for %s: %v", symbol, err)
		return nil, fmt.Errorf("%w: quote lookup failed", apperrors.ErrInternal)
	}
	return quote, nil
}

// Buy executes a market purchase at the latest quote. The cash debit is
// guarded at the storage layer, so a concurrent purchase that drains the
// balance first surfaces here as ErrInsufficientFunds.
func (uc *financeUseCase) Buy(ctx context.Context, userID, symbol string, shares int) (*entity.Transaction, error) {
	if shares <= 0 {
		return nil, ErrInvalidShares
	}

	quote, err := uc.Quote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	transaction, err := uc.tradeRepo.Buy(userID, quote.Symbol, shares, quote.Price)
	if err != nil {
		switch {
		case errors.Is(err, persistent.ErrInsufficientCash):
			return nil, ErrInsufficientFunds
		case errors.Is(err, persistent.ErrAccountNotFound):
			return nil, ErrAccountNotFound
		}
		uc.logger.Error("Buy failed for user %s symbol %s: %v", userID, symbol, err)
		return nil, fmt.Errorf("%w: failed to execute purchase", apperrors.ErrInternal)
	}

	return transaction, nil
}

func (uc *financeUseCase) Sell(ctx context.Context, userID, symbol string, shares int) (*entity.Transaction, error) {
	if shares <= 0 {
		return nil, ErrInvalidShares
	}

	quote, err := uc.Quote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	transaction, err := uc.tradeRepo.Sell(userID, quote.Symbol, shares, quote.Price)
	if err != nil {
		switch {
		case errors.Is(err, persistent.ErrInsufficientShares):
			return nil, ErrInsufficientShares
		case errors.Is(err, persistent.ErrAccountNotFound):
			return nil, ErrAccountNotFound
		}
		uc.logger.Error("Sell failed for user %s symbol %s: %v", userID, symbol, err)
		return nil, fmt.Errorf("%w: failed to execute sale", apperrors.ErrInternal)
	}

	return transaction, nil
}

// Portfolio prices every open position at the latest quote and adds
// uninvested cash for the account total.
func (uc *financeUseCase) Portfolio(ctx context.Context, userID string) (*entity.Portfolio, error) {
	cash, err := uc.tradeRepo.GetCash(userID)
	if err != nil {
		if errors.Is(err, persistent.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		uc.logger.Error("Failed to load cash for user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to load account", apperrors.ErrInternal)
	}

	positions, err := uc.tradeRepo.HoldingsForUser(userID)
	if err != nil {
		uc.logger.Error("Failed to load holdings for user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to load holdings", apperrors.ErrInternal)
	}

	portfolio := &entity.Portfolio{
		Holdings:   make([]*entity.Holding, 0, len(positions)),
		Cash:       cash,
		TotalValue: cash,
	}

	for symbol, shares := range positions {
		quote, err := uc.Quote(ctx, symbol)
		if err != nil {
			uc.logger.Error("Failed to price holding %s for user %s: %v", symbol, userID, err)
			return nil, fmt.Errorf("%w: failed to price holdings", apperrors.ErrInternal)
		}

		value := quote.Price.Mul(decimal.NewFromInt(int64(shares)))
		portfolio.Holdings = append(portfolio.Holdings, &entity.Holding{
			Symbol: quote.Symbol,
			Name:   quote.Name,
			Shares: shares,
			Price:  quote.Price,
			Value:  value,
		})
		portfolio.TotalValue = portfolio.TotalValue.Add(value)
	}

	sort.Slice(portfolio.Holdings, func(i, j int) bool {
		return portfolio.Holdings[i].Symbol < portfolio.Holdings[j].Symbol
	})
	return portfolio, nil
}

func (uc *financeUseCase) History(userID string) ([]*entity.Transaction, error) {
	transactions, err := uc.tradeRepo.HistoryForUser(userID)
	if err != nil {
		uc.logger.Error("Failed to load history for user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to load history", apperrors.ErrInternal)
	}
	return transactions, nil
}
