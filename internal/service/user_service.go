package service

import (
	"context"
	"strings"

	"payamigo/internal/apperr"
	"payamigo/internal/events"
	"payamigo/internal/model"
)

// UserService manages user records and enforces their field and
// email-uniqueness rules.
type UserService struct {
	store  UserStore
	events *events.Publisher
}

func NewUserService(store UserStore, events *events.Publisher) *UserService {
	return &UserService{store: store, events: events}
}

// validate checks field presence and email uniqueness. The uniqueness check
// runs against every stored user, including the record an update targets:
// an update that keeps its own email is rejected as a duplicate.
func (s *UserService) validate(ctx context.Context, u *model.User) error {
	if strings.TrimSpace(u.Name) == "" {
		return apperr.NewValidation("Username is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return apperr.NewValidation("Email is required")
	}
	if strings.TrimSpace(u.Password) == "" {
		return apperr.NewValidation("Password is required")
	}
	existing, err := s.store.FindByEmail(ctx, u.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.NewValidation("Email is already in use")
	}
	return nil
}

func (s *UserService) Create(ctx context.Context, u *model.User) (*model.User, error) {
	if err := s.validate(ctx, u); err != nil {
		return nil, err
	}
	created, err := s.store.Save(ctx, u)
	if err != nil {
		return nil, err
	}
	s.events.Publish("user.created", created)
	return created, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]model.User, error) {
	return s.store.FindAll(ctx)
}

// GetByID returns nil when no user exists at id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.store.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int64, newData *model.User) (*model.User, error) {
	if err := s.validate(ctx, newData); err != nil {
		return nil, err
	}
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NewNotFound("user", id)
	}
	u.Name = newData.Name
	u.Email = newData.Email
	u.Password = newData.Password
	updated, err := s.store.Save(ctx, u)
	if err != nil {
		return nil, err
	}
	s.events.Publish("user.updated", updated)
	return updated, nil
}

// Delete removes the user; deleting an absent id is a no-op.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.events.Publish("user.deleted", map[string]int64{"id": id})
	return nil
}
