package service

import (
	"context"

	"payamigo/internal/model"
)

// In-memory stores standing in for the Postgres repositories. Save mirrors
// the repository contract: assign an id on insert, overwrite on update.

type fakeUserStore struct {
	users  []model.User
	nextID int64
}

func (s *fakeUserStore) Save(_ context.Context, u *model.User) (*model.User, error) {
	if u.ID == 0 {
		s.nextID++
		u.ID = s.nextID
		s.users = append(s.users, *u)
		return u, nil
	}
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = *u
			return u, nil
		}
	}
	s.users = append(s.users, *u)
	return u, nil
}

func (s *fakeUserStore) FindAll(_ context.Context) ([]model.User, error) {
	return append([]model.User(nil), s.users...), nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id int64) (*model.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) DeleteByID(_ context.Context, id int64) error {
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeWalletStore struct {
	wallets []model.Wallet
	nextID  int64
}

func (s *fakeWalletStore) Save(_ context.Context, w *model.Wallet) (*model.Wallet, error) {
	if w.ID == 0 {
		s.nextID++
		w.ID = s.nextID
		s.wallets = append(s.wallets, *w)
		return w, nil
	}
	for i := range s.wallets {
		if s.wallets[i].ID == w.ID {
			s.wallets[i] = *w
			return w, nil
		}
	}
	s.wallets = append(s.wallets, *w)
	return w, nil
}

func (s *fakeWalletStore) FindAll(_ context.Context) ([]model.Wallet, error) {
	return append([]model.Wallet(nil), s.wallets...), nil
}

func (s *fakeWalletStore) FindByID(_ context.Context, id int64) (*model.Wallet, error) {
	for i := range s.wallets {
		if s.wallets[i].ID == id {
			w := s.wallets[i]
			return &w, nil
		}
	}
	return nil, nil
}

func (s *fakeWalletStore) DeleteByID(_ context.Context, id int64) error {
	for i := range s.wallets {
		if s.wallets[i].ID == id {
			s.wallets = append(s.wallets[:i], s.wallets[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeTransactionStore struct {
	transactions []model.Transaction
	nextID       int64
}

func (s *fakeTransactionStore) Save(_ context.Context, t *model.Transaction) (*model.Transaction, error) {
	if t.ID == 0 {
		s.nextID++
		t.ID = s.nextID
		s.transactions = append(s.transactions, *t)
		return t, nil
	}
	for i := range s.transactions {
		if s.transactions[i].ID == t.ID {
			s.transactions[i] = *t
			return t, nil
		}
	}
	s.transactions = append(s.transactions, *t)
	return t, nil
}

func (s *fakeTransactionStore) FindAll(_ context.Context) ([]model.Transaction, error) {
	return append([]model.Transaction(nil), s.transactions...), nil
}

func (s *fakeTransactionStore) FindByID(_ context.Context, id int64) (*model.Transaction, error) {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			t := s.transactions[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (s *fakeTransactionStore) DeleteByID(_ context.Context, id int64) error {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}
