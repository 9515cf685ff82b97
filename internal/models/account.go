package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account holds a user's ledger identity and current balance.
// Balance is maintained by the ledger engine and always equals the
// signed sum of the account's recorded transactions.
type Account struct {
	ID        int64           `json:"id" db:"id"`
	Username  string          `json:"username" db:"username"`
	PIN       string          `json:"-" db:"pin"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// CreateAccountRequest carries the raw signup input. The PIN is kept as a
// string so leading zeros survive validation ("0042" is a valid PIN).
type CreateAccountRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	PIN      string `json:"pin" validate:"required,len=4,numeric"`
}
