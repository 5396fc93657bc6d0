package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionModel struct {
	ID        string          `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Symbol    string          `gorm:"type:varchar(10);not null;index" json:"symbol"`
	Shares    int             `gorm:"not null" json:"shares"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

func (t *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// AccountModel is the finance service's view of the shared users table;
// only the cash column is touched here.
type AccountModel struct {
	ID   string          `gorm:"type:uuid;primary_key" json:"id"`
	Cash decimal.Decimal `gorm:"type:numeric(10,2)" json:"cash"`
}

func (AccountModel) TableName() string {
	return "users"
}
