package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserRole string

const (
	RoleMember    UserRole = "member"
	RoleModerator UserRole = "moderator"
)

// User is the shared identity for all campushub services. Cash is the
// trading balance the finance service draws against.
type User struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Username  string          `json:"username"`
	Password  string          `json:"-"`
	Role      UserRole        `json:"role"`
	Cash      decimal.Decimal `json:"cash"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
