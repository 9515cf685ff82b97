package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OperationKind is the closed set of balance-affecting operations.
type OperationKind string

const (
	KindDeposit     OperationKind = "deposit"
	KindWithdrawal  OperationKind = "withdrawal"
	KindBillPayment OperationKind = "bill_payment"
)

// Operation is a tagged variant over the operation kind. Bill payments carry
// a free-text bill type ("rent", "fees", ...) as a subcategory; the other
// kinds ignore it.
type Operation struct {
	Kind     OperationKind
	BillType string
}

// TypeString renders the persisted transaction type. Bill payments keep the
// historical pay_<billType>_bill form so existing rows stay readable.
func (o Operation) TypeString() string {
	if o.Kind == KindBillPayment {
		return fmt.Sprintf("pay_%s_bill", o.BillType)
	}
	return string(o.Kind)
}

// CategoryName maps the operation kind to its seeded category.
func (o Operation) CategoryName() string {
	switch o.Kind {
	case KindDeposit:
		return CategoryDeposit
	case KindWithdrawal:
		return CategoryWithdrawal
	default:
		return CategoryBillPayment
	}
}

// Signed returns the operation's effect on the balance: positive for
// deposits, negative for everything else.
func (o Operation) Signed(amount decimal.Decimal) decimal.Decimal {
	if o.Kind == KindDeposit {
		return amount
	}
	return amount.Neg()
}

// Transaction is an immutable record of a balance-affecting event.
// Rows are append-only; they are removed only when the owning account is
// deleted.
type Transaction struct {
	ID         int64           `json:"id" db:"id"`
	Reference  string          `json:"reference" db:"reference"`
	AccountID  int64           `json:"account_id" db:"account_id"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	Type       string          `json:"type" db:"type"`
	CategoryID int64           `json:"category_id" db:"category_id"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}

// TransactionDetail is a Transaction joined with its category name for
// display.
type TransactionDetail struct {
	Transaction
	Category string `json:"category" db:"category"`
}
