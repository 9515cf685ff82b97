package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JohnMutemi/revised-banking-cli/internal/models"
)

// TransactionService is the append-only ledger of monetary events. Records
// are immutable once written; there is deliberately no update operation, and
// deletion happens only as part of the account deletion cascade.
type TransactionService struct {
	db *sql.DB
}

func NewTransactionService(db *sql.DB) *TransactionService {
	return &TransactionService{db: db}
}

// Record appends a transaction inside the caller's storage transaction.
// amount is a positive magnitude; direction is carried by the operation
// kind. A UUID reference and creation timestamp are assigned here.
func (s *TransactionService) Record(tx *sql.Tx, accountID int64, amount decimal.Decimal, op models.Operation, categoryID int64) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}

	t := models.Transaction{
		Reference:  uuid.NewString(),
		AccountID:  accountID,
		Amount:     amount,
		Type:       op.TypeString(),
		CategoryID: categoryID,
		CreatedAt:  time.Now().UTC(),
	}

	result, err := tx.Exec(`
		INSERT INTO transactions (reference, account_id, amount, type, category_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.Reference, t.AccountID, t.Amount, t.Type, t.CategoryID, t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error recording transaction: %w", err)
	}

	t.ID, err = result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("error reading new transaction id: %w", err)
	}
	return &t, nil
}

// FindByID returns the transaction or models.ErrTransactionNotFound.
func (s *TransactionService) FindByID(id int64) (*models.Transaction, error) {
	var t models.Transaction
	err := s.db.QueryRow(`
		SELECT id, reference, account_id, amount, type, category_id, created_at
		FROM transactions WHERE id = ?`, id).
		Scan(&t.ID, &t.Reference, &t.AccountID, &t.Amount, &t.Type, &t.CategoryID, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning transaction: %w", err)
	}
	return &t, nil
}

// ListByAccount returns the account's transactions newest first, joined with
// the category name for display. The id tiebreak keeps same-timestamp rows
// in reverse insertion order.
func (s *TransactionService) ListByAccount(accountID int64) ([]models.TransactionDetail, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.reference, t.account_id, t.amount, t.type, t.category_id, t.created_at, c.name
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.account_id = ?
		ORDER BY t.created_at DESC, t.id DESC`, accountID)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	defer rows.Close()

	var details []models.TransactionDetail
	for rows.Next() {
		var d models.TransactionDetail
		if err := rows.Scan(&d.ID, &d.Reference, &d.AccountID, &d.Amount, &d.Type,
			&d.CategoryID, &d.CreatedAt, &d.Category); err != nil {
			return nil, fmt.Errorf("error scanning transaction: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// DeleteByAccount removes all of an account's transactions inside the
// caller's storage transaction. Used only by the account deletion cascade.
func (s *TransactionService) DeleteByAccount(tx *sql.Tx, accountID int64) error {
	if _, err := tx.Exec(`DELETE FROM transactions WHERE account_id = ?`, accountID); err != nil {
		return fmt.Errorf("error deleting transactions: %w", err)
	}
	return nil
}
