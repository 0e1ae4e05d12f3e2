package service

import (
	"context"

	"payamigo/internal/model"
)

// Store interfaces describe the persistence boundary the services consume.
// The repository package provides the Postgres implementations; tests use
// in-memory fakes. Save assigns an id on insert and overwrites on update;
// FindByID returns nil without error when no record exists.

type UserStore interface {
	Save(ctx context.Context, u *model.User) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	DeleteByID(ctx context.Context, id int64) error
}

type WalletStore interface {
	Save(ctx context.Context, w *model.Wallet) (*model.Wallet, error)
	FindAll(ctx context.Context) ([]model.Wallet, error)
	FindByID(ctx context.Context, id int64) (*model.Wallet, error)
	DeleteByID(ctx context.Context, id int64) error
}

type TransactionStore interface {
	Save(ctx context.Context, t *model.Transaction) (*model.Transaction, error)
	FindAll(ctx context.Context) ([]model.Transaction, error)
	FindByID(ctx context.Context, id int64) (*model.Transaction, error)
	DeleteByID(ctx context.Context, id int64) error
}
