package helpers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func OpenDB(cfg DBConfig, logger *slog.Logger) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
	)

	var db *sql.DB
	var err error
	for i := 0; i < 5; i++ {
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			if err = db.Ping(); err == nil {
				break
			}
		}
		logger.Info("waiting for database", "attempt", i+1, "of", 5)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("could not reach database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	logger.Info("database connection established")

	if err := RunMigrations(db, logger); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates tables, constraints, and indexes idempotently.
func RunMigrations(db *sql.DB, logger *slog.Logger) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id       BIGSERIAL    PRIMARY KEY,
			name     VARCHAR(255) NOT NULL,
			email    VARCHAR(255) NOT NULL,
			password VARCHAR(255) NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email
			ON users(email)`,
		`CREATE TABLE IF NOT EXISTS wallets (
			id       BIGSERIAL     PRIMARY KEY,
			name     VARCHAR(255)  NOT NULL,
			balance  NUMERIC(20,2) NOT NULL CHECK (balance > 0),
			currency VARCHAR(3)    NOT NULL,
			user_id  BIGINT        NOT NULL REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id                    BIGSERIAL     PRIMARY KEY,
			amount                NUMERIC(20,2) NOT NULL CHECK (amount > 0),
			commission_percent    NUMERIC(20,2) NOT NULL DEFAULT 0,
			commission_amount     NUMERIC(20,2) NOT NULL DEFAULT 0,
			currency              VARCHAR(3)    NOT NULL,
			created_at            TIMESTAMP     NOT NULL,
			source_wallet_id      BIGINT        NOT NULL REFERENCES wallets(id),
			destination_wallet_id BIGINT        NOT NULL REFERENCES wallets(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_source_wallet
			ON transactions(source_wallet_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_destination_wallet
			ON transactions(destination_wallet_id)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	logger.Info("migrations completed")
	return nil
}
