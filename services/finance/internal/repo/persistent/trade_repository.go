package persistent

import (
	"errors"

	"campushub/services/finance/internal/entity"
	"campushub/services/finance/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrInsufficientCash is returned when the guarded debit matched no row:
	// the account balance is below the purchase total.
	ErrInsufficientCash = errors.New("account balance below purchase total")

	// ErrInsufficientShares is returned when a sell asks for more shares
	// than the user's summed position holds.
	ErrInsufficientShares = errors.New("position smaller than requested sale")

	ErrAccountNotFound = errors.New("account not found")
)

type TradeRepository interface {
	GetCash(userID string) (decimal.Decimal, error)
	Buy(userID, symbol string, shares int, price decimal.Decimal) (*entity.Transaction, error)
	Sell(userID, symbol string, shares int, price decimal.Decimal) (*entity.Transaction, error)
	SharesOwned(userID, symbol string) (int, error)
	HoldingsForUser(userID string) (map[string]int, error)
	HistoryForUser(userID string) ([]*entity.Transaction, error)
}

type tradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db: db}
}

func (r *tradeRepository) GetCash(userID string) (decimal.Decimal, error) {
	var account model.AccountModel
	if err := r.db.Select("id", "cash").Where("id = ?", userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, ErrAccountNotFound
		}
		return decimal.Zero, err
	}
	return account.Cash, nil
}

// Buy debits the purchase total and records the trade in one transaction.
// The debit is guarded on the current balance so two concurrent purchases
// cannot overdraw the account; when the guard matches no row nothing is
// written and ErrInsufficientCash is returned.
func (r *tradeRepository) Buy(userID, symbol string, shares int, price decimal.Decimal) (*entity.Transaction, error) {
	total := price.Mul(decimal.NewFromInt(int64(shares)))

	txModel := &model.TransactionModel{
		ID:     uuid.New().String(),
		UserID: userID,
		Symbol: symbol,
		Shares: shares,
		Price:  price,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.AccountModel{}).
			Where("id = ? AND cash >= ?", userID, total).
			Update("cash", gorm.Expr("cash - ?", total))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientCash
		}

		return tx.Create(txModel).Error
	})
	if err != nil {
		return nil, err
	}

	return toTransactionEntity(txModel), nil
}

// Sell credits the sale total and records a negative-share trade. The
// account row is locked for the duration so the position sum cannot change
// between the check and the insert.
func (r *tradeRepository) Sell(userID, symbol string, shares int, price decimal.Decimal) (*entity.Transaction, error) {
	total := price.Mul(decimal.NewFromInt(int64(shares)))

	txModel := &model.TransactionModel{
		ID:     uuid.New().String(),
		UserID: userID,
		Symbol: symbol,
		Shares: -shares,
		Price:  price,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var account model.AccountModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "cash").Where("id = ?", userID).First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return err
		}

		owned, err := sharesOwned(tx, userID, symbol)
		if err != nil {
			return err
		}
		if owned < shares {
			return ErrInsufficientShares
		}

		if err := tx.Create(txModel).Error; err != nil {
			return err
		}

		return tx.Model(&model.AccountModel{}).Where("id = ?", userID).
			Update("cash", gorm.Expr("cash + ?", total)).Error
	})
	if err != nil {
		return nil, err
	}

	return toTransactionEntity(txModel), nil
}

func (r *tradeRepository) SharesOwned(userID, symbol string) (int, error) {
	return sharesOwned(r.db, userID, symbol)
}

func sharesOwned(db *gorm.DB, userID, symbol string) (int, error) {
	var owned int64
	err := db.Model(&model.TransactionModel{}).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Select("COALESCE(SUM(shares), 0)").Scan(&owned).Error
	return int(owned), err
}

func (r *tradeRepository) HoldingsForUser(userID string) (map[string]int, error) {
	type row struct {
		Symbol string
		Shares int64
	}

	var rows []row
	err := r.db.Model(&model.TransactionModel{}).
		Where("user_id = ?", userID).
		Select("symbol, SUM(shares) AS shares").
		Group("symbol").
		Having("SUM(shares) > 0").
		Order("symbol ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	holdings := make(map[string]int, len(rows))
	for _, r := range rows {
		holdings[r.Symbol] = int(r.Shares)
	}
	return holdings, nil
}

func (r *tradeRepository) HistoryForUser(userID string) ([]*entity.Transaction, error) {
	var txModels []model.TransactionModel
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&txModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(txModels))
	for i := range txModels {
		transactions[i] = toTransactionEntity(&txModels[i])
	}
	return transactions, nil
}

func toTransactionEntity(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}

	return &entity.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Symbol:    m.Symbol,
		Shares:    m.Shares,
		Price:     m.Price,
		CreatedAt: m.CreatedAt,
	}
}
