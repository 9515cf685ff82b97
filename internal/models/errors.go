package models

import "errors"

var (
	// ErrInvalidPIN indicates the PIN is not exactly 4 digits.
	ErrInvalidPIN = errors.New("pin must be exactly 4 digits")
	// ErrInvalidAmount indicates a non-positive operation amount.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrUsernameTaken indicates the username is already registered.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrAccountNotFound indicates the account does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrTransactionNotFound indicates the transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInsufficientFunds indicates a withdrawal or bill payment exceeding
	// the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidCredentials is returned on any login failure. Unknown
	// username and PIN mismatch are deliberately not distinguished; this is
	// a constant-response policy, not a security control.
	ErrInvalidCredentials = errors.New("invalid username or pin")
	// ErrCategoryNotFound indicates a missing seeded category. Categories
	// are provisioned at startup, so hitting this means the store is in an
	// inconsistent state.
	ErrCategoryNotFound = errors.New("category not found")
)
