package database

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		Path:         filepath.Join(t.TempDir(), "bank.db"),
		BusyTimeout:  time.Second,
		MaxOpenConns: 1,
	}
}

func openAndInit(t *testing.T, config *Config) *sql.DB {
	t.Helper()
	db, err := Open(config)
	require.NoError(t, err)
	require.NoError(t, Init(db))
	return db
}

func TestInit_Idempotent(t *testing.T) {
	db := openAndInit(t, testConfig(t))
	defer db.Close()

	// Re-running schema creation must not fail or clobber data.
	_, err := db.Exec(`INSERT INTO accounts (username, pin, balance, created_at, updated_at)
		VALUES ('alice', '1234', 0, ?, ?)`, time.Now().UTC(), time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, Init(db))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM accounts`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestOpen_ForeignKeysEnforced(t *testing.T) {
	db := openAndInit(t, testConfig(t))
	defer db.Close()

	_, err := db.Exec(`INSERT INTO transactions (reference, account_id, amount, type, category_id, created_at)
		VALUES ('ref-1', 999, 10, 'deposit', 999, ?)`, time.Now().UTC())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
}

func TestOpen_UsernameUnique(t *testing.T) {
	db := openAndInit(t, testConfig(t))
	defer db.Close()

	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO accounts (username, pin, balance, created_at, updated_at)
		VALUES ('alice', '1234', 0, ?, ?)`, now, now)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO accounts (username, pin, balance, created_at, updated_at)
		VALUES ('alice', '5678', 0, ?, ?)`, now, now)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
}

func TestOpen_SurvivesRestart(t *testing.T) {
	config := testConfig(t)

	db := openAndInit(t, config)
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO accounts (username, pin, balance, created_at, updated_at)
		VALUES ('alice', '1234', 70, ?, ?)`, now, now)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened := openAndInit(t, config)
	defer reopened.Close()

	var balance int
	require.NoError(t, reopened.QueryRow(
		`SELECT balance FROM accounts WHERE username = 'alice'`).Scan(&balance))
	assert.Equal(t, 70, balance)
}
