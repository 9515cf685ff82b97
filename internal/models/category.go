package models

// Default category names seeded at startup. Every transaction references one
// of these (or an operator-created category) by id.
const (
	CategoryDeposit     = "Deposit"
	CategoryWithdrawal  = "Withdrawal"
	CategoryBillPayment = "Bill Payment"
)

// Category classifies transactions for display and reporting.
type Category struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}
