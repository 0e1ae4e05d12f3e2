package service

import (
	"context"
	"testing"

	"payamigo/internal/apperr"
	"payamigo/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService() (*UserService, *fakeUserStore) {
	store := &fakeUserStore{}
	return NewUserService(store, nil), store
}

func requireValidationError(t *testing.T, err error, message string) {
	t.Helper()
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, message, validationErr.Message)
}

func TestCreateUser(t *testing.T) {
	svc, store := newUserService()

	created, err := svc.Create(context.Background(), &model.User{
		Name: "Daniel", Email: "daniel@gmail.com", Password: "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Len(t, store.users, 1)
}

func TestCreateUserMissingFields(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.User{Name: "  ", Email: "a@b.c", Password: "x"})
	requireValidationError(t, err, "Username is required")

	_, err = svc.Create(ctx, &model.User{Name: "Daniel", Email: "", Password: "x"})
	requireValidationError(t, err, "Email is required")

	_, err = svc.Create(ctx, &model.User{Name: "Daniel", Email: "a@b.c", Password: " "})
	requireValidationError(t, err, "Password is required")
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, store := newUserService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.User{Name: "Daniel", Email: "daniel@gmail.com", Password: "1234"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &model.User{Name: "Mihai", Email: "daniel@gmail.com", Password: "5678"})
	requireValidationError(t, err, "Email is already in use")
	assert.Len(t, store.users, 1, "second user must not be persisted")
}

func TestGetUserByIDAbsent(t *testing.T) {
	svc, _ := newUserService()

	user, err := svc.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetAllUsers(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.User{Name: "Daniel", Email: "daniel@gmail.com", Password: "1234"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &model.User{Name: "Mihai", Email: "mihai@gmail.com", Password: "5678"})
	require.NoError(t, err)

	users, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUpdateUser(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.User{Name: "Daniel", Email: "daniel@gmail.com", Password: "1234"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &model.User{
		Name: "Daniel M", Email: "daniel.m@gmail.com", Password: "abcd",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Daniel M", updated.Name)
	assert.Equal(t, "daniel.m@gmail.com", updated.Email)

	stored, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Daniel M", stored.Name)
}

// The uniqueness check on update runs against every stored user, including
// the record being updated: keeping the same email is rejected.
func TestUpdateUserKeepingEmailIsSelfConflict(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.User{Name: "Daniel", Email: "daniel@gmail.com", Password: "1234"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, &model.User{
		Name: "Daniel M", Email: "daniel@gmail.com", Password: "1234",
	})
	requireValidationError(t, err, "Email is already in use")
}

func TestUpdateUserNotFound(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Update(context.Background(), 99, &model.User{
		Name: "Daniel", Email: "daniel@gmail.com", Password: "1234",
	})
	var notFoundErr *apperr.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "user", notFoundErr.Kind)
	assert.Equal(t, int64(99), notFoundErr.ID)
}

func TestDeleteUser(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.User{Name: "Daniel", Email: "daniel@gmail.com", Password: "1234"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	user, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, user)

	// Deleting an absent id is a no-op.
	require.NoError(t, svc.Delete(ctx, created.ID))
}
