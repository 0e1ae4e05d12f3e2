package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Wallet holds a balance in a single currency and belongs to exactly one user.
type Wallet struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Currency Currency        `json:"currency"`
	UserID   int64           `json:"user_id"`
}

// Transaction records a movement of value from a source wallet to a
// destination wallet. Wallets are carried as full records so validation can
// read the source balance without another lookup; persistence stores them as
// ids. Creating a transaction does not debit or credit either wallet.
type Transaction struct {
	ID                int64           `json:"id"`
	Amount            decimal.Decimal `json:"amount"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	CommissionAmount  decimal.Decimal `json:"commission_amount"`
	Currency          Currency        `json:"currency"`
	CreatedAt         time.Time       `json:"created_at"`
	SourceWallet      *Wallet         `json:"source_wallet"`
	DestinationWallet *Wallet         `json:"destination_wallet"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
