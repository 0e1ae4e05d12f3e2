package repository

import (
	"context"
	"database/sql"
	"fmt"

	"payamigo/internal/model"
)

type WalletRepository struct {
	db *sql.DB
}

func NewWalletRepository(db *sql.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) Save(ctx context.Context, w *model.Wallet) (*model.Wallet, error) {
	var err error
	if w.ID == 0 {
		err = r.db.QueryRowContext(ctx,
			`INSERT INTO wallets (name, balance, currency, user_id)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			w.Name, w.Balance, string(w.Currency), w.UserID,
		).Scan(&w.ID)
	} else {
		_, err = r.db.ExecContext(ctx,
			`UPDATE wallets SET name = $1, balance = $2, currency = $3, user_id = $4 WHERE id = $5`,
			w.Name, w.Balance, string(w.Currency), w.UserID, w.ID,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save wallet: %w", err)
	}
	return w, nil
}

func (r *WalletRepository) FindAll(ctx context.Context) ([]model.Wallet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, balance, currency, user_id FROM wallets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallets: %w", err)
	}
	defer rows.Close()

	var wallets []model.Wallet
	for rows.Next() {
		var w model.Wallet
		if err := rows.Scan(&w.ID, &w.Name, &w.Balance, &w.Currency, &w.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}

func (r *WalletRepository) FindByID(ctx context.Context, id int64) (*model.Wallet, error) {
	var w model.Wallet
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, balance, currency, user_id FROM wallets WHERE id = $1`, id,
	).Scan(&w.ID, &w.Name, &w.Balance, &w.Currency, &w.UserID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find wallet: %w", err)
	}
	return &w, nil
}

func (r *WalletRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM wallets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete wallet: %w", err)
	}
	return nil
}
