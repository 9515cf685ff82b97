package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JohnMutemi/revised-banking-cli/internal/audit"
	"github.com/JohnMutemi/revised-banking-cli/internal/models"
)

// ATMService orchestrates accounts, transactions and categories to implement
// the authenticated ledger operations. It is the only writer of monetary
// state: every balance change is paired with a transaction record in a
// single storage transaction, so the two can never diverge.
type ATMService struct {
	db           *sql.DB
	accounts     *AccountService
	transactions *TransactionService
	categories   *CategoryService
	audit        *audit.Logger
	log          *zap.Logger
}

func NewATMService(db *sql.DB, log *zap.Logger) *ATMService {
	return &ATMService{
		db:           db,
		accounts:     NewAccountService(db),
		transactions: NewTransactionService(db),
		categories:   NewCategoryService(db),
		audit:        audit.NewLogger(log),
		log:          log,
	}
}

// Setup prepares the category registry. Must run once after the schema is
// initialized, before any monetary operation.
func (s *ATMService) Setup() error {
	return s.categories.SeedDefaults()
}

// Login authenticates a user and returns the account id. An unknown
// username and a PIN mismatch produce the same error on purpose; the plain
// equality check is illustrative, not a security control.
func (s *ATMService) Login(username, pin string) (int64, error) {
	account, err := s.accounts.FindByUsername(username)
	if errors.Is(err, models.ErrAccountNotFound) {
		return 0, models.ErrInvalidCredentials
	}
	if err != nil {
		return 0, err
	}
	if account.PIN != pin {
		return 0, models.ErrInvalidCredentials
	}
	s.log.Debug("login", zap.Int64("account_id", account.ID))
	return account.ID, nil
}

// CreateAccount registers a new user with a zero balance.
func (s *ATMService) CreateAccount(username, pin string) (*models.Account, error) {
	account, err := s.accounts.Create(username, pin)
	if err != nil {
		return nil, err
	}
	s.audit.AccountEvent("account created", account.ID, account.Username)
	return account, nil
}

// Deposit adds amount to the account and records a deposit transaction.
// Returns the new balance.
func (s *ATMService) Deposit(accountID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.apply(accountID, amount, models.Operation{Kind: models.KindDeposit})
}

// Withdraw removes amount from the account and records a withdrawal
// transaction. Fails with models.ErrInsufficientFunds when amount exceeds
// the current balance; the balance and history are left untouched.
func (s *ATMService) Withdraw(accountID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.apply(accountID, amount, models.Operation{Kind: models.KindWithdrawal})
}

// PayBill pays amount towards the given bill type, under the same
// sufficiency rule as Withdraw.
func (s *ATMService) PayBill(accountID int64, billType string, amount decimal.Decimal) (decimal.Decimal, error) {
	billType = strings.ToLower(strings.TrimSpace(billType))
	if billType == "" {
		return decimal.Zero, fmt.Errorf("bill type is required")
	}
	return s.apply(accountID, amount, models.Operation{Kind: models.KindBillPayment, BillType: billType})
}

// ViewBalance returns the account's current balance.
func (s *ATMService) ViewBalance(accountID int64) (decimal.Decimal, error) {
	account, err := s.accounts.FindByID(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// ViewTransactions returns the account's history, newest first.
func (s *ATMService) ViewTransactions(accountID int64) ([]models.TransactionDetail, error) {
	if _, err := s.accounts.FindByID(accountID); err != nil {
		return nil, err
	}
	return s.transactions.ListByAccount(accountID)
}

// DeleteAccount removes the account and all of its transactions in a single
// storage transaction.
func (s *ATMService) DeleteAccount(accountID int64) error {
	account, err := s.accounts.FindByID(accountID)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting delete: %w", err)
	}
	defer tx.Rollback()

	if err := s.transactions.DeleteByAccount(tx, accountID); err != nil {
		return err
	}
	if err := s.accounts.Delete(tx, accountID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing delete: %w", err)
	}

	s.audit.AccountEvent("account deleted", accountID, account.Username)
	return nil
}

// apply performs one monetary operation: the balance update and the
// transaction record are committed together or not at all.
func (s *ATMService) apply(accountID int64, amount decimal.Decimal, op models.Operation) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, models.ErrInvalidAmount
	}

	categoryID, err := s.categories.IDForName(op.CategoryName())
	if err != nil {
		return decimal.Zero, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return decimal.Zero, fmt.Errorf("error starting operation: %w", err)
	}
	defer tx.Rollback()

	newBalance, err := s.accounts.AdjustBalance(tx, accountID, op.Signed(amount))
	if err != nil {
		s.audit.Failure(op.TypeString(), accountID, err)
		return decimal.Zero, err
	}

	record, err := s.transactions.Record(tx, accountID, amount, op, categoryID)
	if err != nil {
		s.audit.Failure(op.TypeString(), accountID, err)
		return decimal.Zero, err
	}

	if err := tx.Commit(); err != nil {
		return decimal.Zero, fmt.Errorf("error committing operation: %w", err)
	}

	s.audit.Operation(record.Reference, record.Type, accountID, amount, newBalance)
	return newBalance, nil
}
