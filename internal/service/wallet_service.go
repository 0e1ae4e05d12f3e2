package service

import (
	"context"
	"strings"

	"payamigo/internal/apperr"
	"payamigo/internal/events"
	"payamigo/internal/model"
)

// WalletService manages wallet records. A wallet must always name its owner
// and hold a strictly positive balance; zero is treated as invalid, not as
// an empty wallet.
type WalletService struct {
	store  WalletStore
	events *events.Publisher
}

func NewWalletService(store WalletStore, events *events.Publisher) *WalletService {
	return &WalletService{store: store, events: events}
}

func (s *WalletService) validate(w *model.Wallet) error {
	if strings.TrimSpace(w.Name) == "" {
		return apperr.NewValidation("Wallet name is required")
	}
	if !w.Balance.IsPositive() {
		return apperr.NewValidation("Balance cannot be negative or null")
	}
	if w.Currency == "" {
		return apperr.NewValidation("Currency is required")
	}
	if w.UserID == 0 {
		return apperr.NewValidation("User is required")
	}
	return nil
}

func (s *WalletService) Create(ctx context.Context, w *model.Wallet) (*model.Wallet, error) {
	if err := s.validate(w); err != nil {
		return nil, err
	}
	created, err := s.store.Save(ctx, w)
	if err != nil {
		return nil, err
	}
	s.events.Publish("wallet.created", created)
	return created, nil
}

func (s *WalletService) GetAll(ctx context.Context) ([]model.Wallet, error) {
	return s.store.FindAll(ctx)
}

// GetByID returns nil when no wallet exists at id.
func (s *WalletService) GetByID(ctx context.Context, id int64) (*model.Wallet, error) {
	return s.store.FindByID(ctx, id)
}

func (s *WalletService) Update(ctx context.Context, id int64, newData *model.Wallet) (*model.Wallet, error) {
	if err := s.validate(newData); err != nil {
		return nil, err
	}
	w, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, apperr.NewNotFound("wallet", id)
	}
	w.Name = newData.Name
	w.Balance = newData.Balance
	w.Currency = newData.Currency
	w.UserID = newData.UserID
	updated, err := s.store.Save(ctx, w)
	if err != nil {
		return nil, err
	}
	s.events.Publish("wallet.updated", updated)
	return updated, nil
}

// Delete removes the wallet; deleting an absent id is a no-op.
func (s *WalletService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.events.Publish("wallet.deleted", map[string]int64{"id": id})
	return nil
}
