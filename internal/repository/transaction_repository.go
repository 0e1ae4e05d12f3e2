package repository

import (
	"context"
	"database/sql"
	"fmt"

	"payamigo/internal/apperr"
	"payamigo/internal/model"

	"github.com/shopspring/decimal"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `
	t.id, t.amount, t.commission_percent, t.commission_amount, t.currency, t.created_at,
	sw.id, sw.name, sw.balance, sw.currency, sw.user_id,
	dw.id, dw.name, dw.balance, dw.currency, dw.user_id`

// Save writes the transaction inside one DB transaction, locking the source
// wallet row and re-checking sufficiency under the lock so two concurrent
// writes cannot both pass the balance check against a stale read. Balances
// themselves are never touched.
func (r *TransactionRepository) Save(ctx context.Context, t *model.Transaction) (*model.Transaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var balance decimal.Decimal
	err = tx.QueryRowContext(ctx,
		`SELECT balance FROM wallets WHERE id = $1 FOR UPDATE`,
		t.SourceWallet.ID,
	).Scan(&balance)
	if err == sql.ErrNoRows {
		return nil, apperr.NewNotFound("wallet", t.SourceWallet.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock source wallet: %w", err)
	}
	if t.Amount.GreaterThan(balance) {
		return nil, apperr.NewValidation("Transaction amount higher than source wallet balance")
	}

	if t.ID == 0 {
		err = tx.QueryRowContext(ctx,
			`INSERT INTO transactions
				(amount, commission_percent, commission_amount, currency, created_at,
				 source_wallet_id, destination_wallet_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			t.Amount, t.CommissionPercent, t.CommissionAmount, string(t.Currency), t.CreatedAt,
			t.SourceWallet.ID, t.DestinationWallet.ID,
		).Scan(&t.ID)
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE transactions SET
				amount = $1, commission_percent = $2, commission_amount = $3,
				currency = $4, created_at = $5, source_wallet_id = $6, destination_wallet_id = $7
			 WHERE id = $8`,
			t.Amount, t.CommissionPercent, t.CommissionAmount, string(t.Currency), t.CreatedAt,
			t.SourceWallet.ID, t.DestinationWallet.ID, t.ID,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return t, nil
}

func (r *TransactionRepository) FindAll(ctx context.Context) ([]model.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT`+transactionColumns+`
		 FROM transactions t
		 JOIN wallets sw ON t.source_wallet_id = sw.id
		 JOIN wallets dw ON t.destination_wallet_id = dw.id
		 ORDER BY t.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindByID(ctx context.Context, id int64) (*model.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT`+transactionColumns+`
		 FROM transactions t
		 JOIN wallets sw ON t.source_wallet_id = sw.id
		 JOIN wallets dw ON t.destination_wallet_id = dw.id
		 WHERE t.id = $1`, id)

	t, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TransactionRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var t model.Transaction
	var src, dst model.Wallet
	err := row.Scan(
		&t.ID, &t.Amount, &t.CommissionPercent, &t.CommissionAmount, &t.Currency, &t.CreatedAt,
		&src.ID, &src.Name, &src.Balance, &src.Currency, &src.UserID,
		&dst.ID, &dst.Name, &dst.Balance, &dst.Currency, &dst.UserID,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}
	t.SourceWallet = &src
	t.DestinationWallet = &dst
	return &t, nil
}
