package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JohnMutemi/revised-banking-cli/internal/models"
)

// AccountService persists user accounts.
type AccountService struct {
	db         *sql.DB
	validation *ValidationHelper
}

func NewAccountService(db *sql.DB) *AccountService {
	return &AccountService{
		db:         db,
		validation: NewValidationHelper(),
	}
}

// Create registers a new account with a zero balance. The username must be
// unused and the PIN exactly 4 digits. Uniqueness is enforced by the storage
// layer's constraint, so a duplicate insert fails atomically instead of
// landing a second row.
func (s *AccountService) Create(username, pin string) (*models.Account, error) {
	req := models.CreateAccountRequest{Username: username, PIN: pin}
	if err := s.validation.ValidateStruct(req); err != nil {
		if FieldFailed(err, "PIN") {
			return nil, models.ErrInvalidPIN
		}
		return nil, fmt.Errorf("invalid account request: %w", err)
	}

	now := time.Now().UTC()
	result, err := s.db.Exec(`
		INSERT INTO accounts (username, pin, balance, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		username, pin, decimal.Zero, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrUsernameTaken
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("error reading new account id: %w", err)
	}

	return &models.Account{
		ID:        id,
		Username:  username,
		PIN:       pin,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// FindByID returns the account or models.ErrAccountNotFound.
func (s *AccountService) FindByID(id int64) (*models.Account, error) {
	return s.scanAccount(s.db.QueryRow(`
		SELECT id, username, pin, balance, created_at, updated_at
		FROM accounts WHERE id = ?`, id))
}

// FindByUsername returns the account or models.ErrAccountNotFound.
func (s *AccountService) FindByUsername(username string) (*models.Account, error) {
	return s.scanAccount(s.db.QueryRow(`
		SELECT id, username, pin, balance, created_at, updated_at
		FROM accounts WHERE username = ?`, username))
}

// ListAll returns every account ordered by id.
func (s *AccountService) ListAll() ([]models.Account, error) {
	rows, err := s.db.Query(`
		SELECT id, username, pin, balance, created_at, updated_at
		FROM accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Username, &a.PIN, &a.Balance, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// AdjustBalance applies delta to the account's balance inside the caller's
// transaction and returns the new balance. The balance may never go
// negative; an over-draw fails with models.ErrInsufficientFunds before any
// write. Callers must record the matching transaction in the same *sql.Tx.
func (s *AccountService) AdjustBalance(tx *sql.Tx, id int64, delta decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := tx.QueryRow(`SELECT balance FROM accounts WHERE id = ?`, id).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, models.ErrAccountNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("error reading balance: %w", err)
	}

	newBalance := balance.Add(delta)
	if newBalance.IsNegative() {
		return decimal.Zero, models.ErrInsufficientFunds
	}

	if _, err := tx.Exec(`UPDATE accounts SET balance = ?, updated_at = ? WHERE id = ?`,
		newBalance, time.Now().UTC(), id); err != nil {
		return decimal.Zero, fmt.Errorf("error updating balance: %w", err)
	}
	return newBalance, nil
}

// Delete removes the account row inside the caller's transaction. The
// account's transactions must already have been deleted in the same *sql.Tx
// to satisfy the foreign key.
func (s *AccountService) Delete(tx *sql.Tx, id int64) error {
	result, err := tx.Exec(`DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting account: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrAccountNotFound
	}
	return nil
}

func (s *AccountService) scanAccount(row *sql.Row) (*models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.Username, &a.PIN, &a.Balance, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning account: %w", err)
	}
	return &a, nil
}

// isUniqueViolation matches SQLite's unique constraint failure. The driver
// has no exported error type for it, so the message is the contract.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
