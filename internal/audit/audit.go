// Package audit records an event for every monetary operation the ledger
// engine performs.
package audit

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Logger struct {
	log *zap.Logger
}

func NewLogger(log *zap.Logger) *Logger {
	return &Logger{log: log.Named("audit")}
}

// Operation records a committed balance-affecting operation.
func (a *Logger) Operation(reference, txType string, accountID int64, amount, balance decimal.Decimal) {
	a.log.Info("operation",
		zap.String("reference", reference),
		zap.String("type", txType),
		zap.Int64("account_id", accountID),
		zap.String("amount", amount.String()),
		zap.String("balance", balance.String()),
		zap.String("status", "SUCCESS"),
	)
}

// Failure records an operation that was rejected or rolled back.
func (a *Logger) Failure(txType string, accountID int64, err error) {
	a.log.Warn("operation failed",
		zap.String("type", txType),
		zap.Int64("account_id", accountID),
		zap.String("status", "FAILED"),
		zap.Error(err),
	)
}

// AccountEvent records account lifecycle changes (creation, deletion).
func (a *Logger) AccountEvent(event string, accountID int64, username string) {
	a.log.Info(event,
		zap.Int64("account_id", accountID),
		zap.String("username", username),
	)
}
