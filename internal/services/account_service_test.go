package services

import (
	"context"
	"testing"

	"chatbox-backend/internal/domain/account"
	chatbox_errors "chatbox-backend/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup_CreatesUserRoleAccount(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	created, err := svc.Signup(context.Background(), SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, account.RoleUser, created.Role)
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.NoError(t, comparePassword(created.PasswordHash, "secret123"))
}

func TestSignup_DuplicateEmailNeverOverwrites(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	first, err := svc.Signup(context.Background(), SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), SignupInput{
		Username: "mallory",
		Email:    "alice@example.com",
		Password: "other456",
	})
	assert.ErrorIs(t, err, chatbox_errors.ErrAlreadyExists)

	assert.Equal(t, 1, repo.count())
	kept, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, kept.ID)
	assert.Equal(t, "alice", kept.Username)
}

func TestSignup_MissingFields(t *testing.T) {
	t.Parallel()

	svc := NewAccountService(newFakeAccountRepo())

	_, err := svc.Signup(context.Background(), SignupInput{Email: "x@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, chatbox_errors.ErrInvalidInput)

	_, err = svc.Signup(context.Background(), SignupInput{Username: "x", Email: "x@example.com"})
	assert.ErrorIs(t, err, chatbox_errors.ErrInvalidInput)
}

func TestCreate_AllowsRoleSelection(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	created, err := svc.Create(context.Background(), CreateInput{
		Username: "root",
		Email:    "root@example.com",
		Password: "secret123",
		Role:     account.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, account.RoleAdmin, created.Role)

	_, err = svc.Create(context.Background(), CreateInput{
		Username: "bad",
		Email:    "bad@example.com",
		Password: "secret123",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, chatbox_errors.ErrInvalidInput)
}

func TestEdit_NotFoundLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	_, err := svc.Edit(context.Background(), uuid.New(), EditInput{Username: "ghost"})
	assert.ErrorIs(t, err, chatbox_errors.ErrNotFound)
	assert.Equal(t, 0, repo.count())
}

func TestEdit_OverwritesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	created, err := svc.Signup(context.Background(), SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	updated, err := svc.Edit(context.Background(), created.ID, EditInput{Username: "alice2"})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.NoError(t, comparePassword(updated.PasswordHash, "secret123"))

	updated, err = svc.Edit(context.Background(), created.ID, EditInput{Password: "newpass789"})
	require.NoError(t, err)
	assert.NoError(t, comparePassword(updated.PasswordHash, "newpass789"))
	assert.Error(t, comparePassword(updated.PasswordHash, "secret123"))
}

func TestEdit_DuplicateEmailRejected(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{Username: "a", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)
	b, err := svc.Signup(context.Background(), SignupInput{Username: "b", Email: "b@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Edit(context.Background(), b.ID, EditInput{Email: "a@example.com"})
	assert.ErrorIs(t, err, chatbox_errors.ErrAlreadyExists)
}

func TestDelete_NotFoundLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	created, err := svc.Signup(context.Background(), SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, chatbox_errors.ErrNotFound)
	assert.Equal(t, 1, repo.count())

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Equal(t, 0, repo.count())
}

func TestList_ReturnsAllAccounts(t *testing.T) {
	t.Parallel()

	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.Signup(context.Background(), SignupInput{Username: "u", Email: email, Password: "secret123"})
		require.NoError(t, err)
	}

	accounts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, 3)
}
