package service

import (
	"context"
	"time"

	"payamigo/internal/apperr"
	"payamigo/internal/events"
	"payamigo/internal/model"
)

// dateGrace is how far in the past a transaction date may sit and still
// count as "now". It absorbs the clock skew between the caller stamping the
// transaction and this service validating it.
const dateGrace = time.Second

// TransactionService validates and persists money movements between two
// wallets. Persisting a transaction records it only; neither wallet balance
// is debited or credited.
type TransactionService struct {
	store  TransactionStore
	events *events.Publisher
	now    func() time.Time
}

func NewTransactionService(store TransactionStore, events *events.Publisher) *TransactionService {
	return &TransactionService{store: store, events: events, now: time.Now}
}

// Validate applies the movement rules in a fixed order; only the first
// failing rule's message reaches the caller, so the order is part of the
// contract. The balance check runs only when a source wallet is attached,
// leaving the missing-source failure to its own later rule.
func (s *TransactionService) Validate(t *model.Transaction) error {
	if !t.Amount.IsPositive() {
		return apperr.NewValidation("Transaction amount cannot be negative or null")
	}
	if t.SourceWallet != nil && t.Amount.GreaterThan(t.SourceWallet.Balance) {
		return apperr.NewValidation("Transaction amount higher than source wallet balance")
	}
	if t.CommissionPercent.IsNegative() {
		return apperr.NewValidation("Commission percent cannot be negative")
	}
	if t.CommissionAmount.IsNegative() {
		return apperr.NewValidation("Commission amount cannot be negative")
	}
	if t.Currency == "" {
		return apperr.NewValidation("Currency is required")
	}
	if t.CreatedAt.IsZero() {
		return apperr.NewValidation("Transaction date is required")
	}
	if t.CreatedAt.Before(s.now().Add(-dateGrace)) {
		return apperr.NewValidation("Transaction date cannot be in the past")
	}
	if t.SourceWallet == nil {
		return apperr.NewValidation("Source wallet is required")
	}
	if t.DestinationWallet == nil {
		return apperr.NewValidation("Destination wallet is required")
	}
	// Identity comparison: two wallet records with equal fields but
	// different ids are different wallets.
	if t.DestinationWallet.ID == t.SourceWallet.ID {
		return apperr.NewValidation("User cannot pay itself")
	}
	return nil
}

func (s *TransactionService) Create(ctx context.Context, t *model.Transaction) (*model.Transaction, error) {
	if err := s.Validate(t); err != nil {
		return nil, err
	}
	created, err := s.store.Save(ctx, t)
	if err != nil {
		return nil, err
	}
	s.events.Publish("transaction.created", created)
	return created, nil
}

func (s *TransactionService) GetAll(ctx context.Context) ([]model.Transaction, error) {
	return s.store.FindAll(ctx)
}

// GetByID returns nil when no transaction exists at id.
func (s *TransactionService) GetByID(ctx context.Context, id int64) (*model.Transaction, error) {
	return s.store.FindByID(ctx, id)
}

func (s *TransactionService) Update(ctx context.Context, id int64, newData *model.Transaction) (*model.Transaction, error) {
	if err := s.Validate(newData); err != nil {
		return nil, err
	}
	t, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NewNotFound("transaction", id)
	}
	t.Amount = newData.Amount
	t.CommissionPercent = newData.CommissionPercent
	t.CommissionAmount = newData.CommissionAmount
	t.Currency = newData.Currency
	t.CreatedAt = newData.CreatedAt
	t.SourceWallet = newData.SourceWallet
	t.DestinationWallet = newData.DestinationWallet
	updated, err := s.store.Save(ctx, t)
	if err != nil {
		return nil, err
	}
	s.events.Publish("transaction.updated", updated)
	return updated, nil
}

// Delete removes the transaction; deleting an absent id is a no-op.
func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.events.Publish("transaction.deleted", map[string]int64{"id": id})
	return nil
}
