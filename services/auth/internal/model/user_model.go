package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UserModel struct {
	ID        string          `gorm:"type:uuid;primary_key" json:"id"`
	Email     string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username  string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Password  string          `gorm:"type:varchar(255);not null" json:"-"`
	Role      string          `gorm:"type:varchar(20);default:'member'" json:"role"`
	Cash      decimal.Decimal `gorm:"type:numeric(10,2);default:10000.00" json:"cash"`
	IsActive  bool            `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
