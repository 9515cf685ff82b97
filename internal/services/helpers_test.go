package services

import (
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func accountRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "pin", "balance", "created_at", "updated_at"})
}

func transactionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "reference", "account_id", "amount", "type", "category_id", "created_at", "name"})
}

func now() time.Time {
	return time.Now().UTC()
}
