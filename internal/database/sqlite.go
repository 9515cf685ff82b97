package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/viper"
	_ "modernc.org/sqlite"
)

// Config holds storage configuration.
type Config struct {
	Path         string
	BusyTimeout  time.Duration
	MaxOpenConns int
}

// GetConfig returns storage configuration with defaults.
func GetConfig() *Config {
	viper.SetDefault("database.path", "bank.db")
	viper.SetDefault("database.busy_timeout", 5*time.Second)
	// The ledger is single-session; one connection keeps SQLite writes
	// strictly serialized.
	viper.SetDefault("database.max_open_conns", 1)

	return &Config{
		Path:         viper.GetString("database.path"),
		BusyTimeout:  viper.GetDuration("database.busy_timeout"),
		MaxOpenConns: viper.GetInt("database.max_open_conns"),
	}
}

// Open opens (creating if necessary) the SQLite database file with foreign
// key enforcement on. The same file is reused across process restarts.
func Open(config *Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)",
		config.Path, config.BusyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)

	return db, nil
}

// Init creates the schema if it does not exist. Safe to call on every start.
func Init(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			pin TEXT NOT NULL,
			balance NUMERIC NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			reference TEXT UNIQUE NOT NULL,
			account_id INTEGER NOT NULL REFERENCES accounts(id),
			amount NUMERIC NOT NULL,
			type TEXT NOT NULL,
			category_id INTEGER NOT NULL REFERENCES categories(id),
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_account_id ON transactions(account_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions(created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("error creating schema: %w", err)
		}
	}

	return nil
}
