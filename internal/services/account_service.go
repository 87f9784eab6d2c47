package services

import (
	"context"
	"errors"
	"time"

	"chatbox-backend/internal/domain/account"
	"chatbox-backend/internal/repository"
	chatbox_errors "chatbox-backend/pkg/errors"

	"github.com/google/uuid"
)

// AccountService covers signup plus the admin-gated CRUD over accounts.
type AccountService struct {
	accounts repository.AccountRepository
}

func NewAccountService(accounts repository.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

type SignupInput struct {
	Username string
	Email    string
	Password string
}

type CreateInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// EditInput carries a partial field set; empty fields are left unchanged.
type EditInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// Signup registers a new account with role user. The email pre-check is
// best-effort; the unique index on accounts.email catches concurrent racers.
func (s *AccountService) Signup(ctx context.Context, in SignupInput) (account.Account, error) {
	return s.create(ctx, CreateInput{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		Role:     account.RoleUser,
	})
}

// Create registers an account with an admin-chosen role.
func (s *AccountService) Create(ctx context.Context, in CreateInput) (account.Account, error) {
	if in.Role == "" {
		in.Role = account.RoleUser
	}
	if !account.ValidRole(in.Role) {
		return account.Account{}, chatbox_errors.ErrInvalidInput
	}
	return s.create(ctx, in)
}

func (s *AccountService) create(ctx context.Context, in CreateInput) (account.Account, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return account.Account{}, chatbox_errors.ErrInvalidInput
	}

	if _, err := s.accounts.GetByEmail(ctx, in.Email); err == nil {
		return account.Account{}, chatbox_errors.ErrAlreadyExists
	} else if !errors.Is(err, chatbox_errors.ErrNotFound) {
		return account.Account{}, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return account.Account{}, err
	}

	acc := account.Account{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.accounts.Create(ctx, &acc); err != nil {
		return account.Account{}, err
	}

	return acc, nil
}

func (s *AccountService) List(ctx context.Context) ([]account.Account, error) {
	return s.accounts.GetAll(ctx)
}

func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (account.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// Edit overwrites the provided fields of an existing account. A changed
// email goes through the same uniqueness pre-check as creation; a changed
// password is re-hashed before it is stored.
func (s *AccountService) Edit(ctx context.Context, id uuid.UUID, in EditInput) (account.Account, error) {
	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return account.Account{}, err
	}

	if in.Username != "" {
		acc.Username = in.Username
	}
	if in.Email != "" && in.Email != acc.Email {
		if _, err := s.accounts.GetByEmail(ctx, in.Email); err == nil {
			return account.Account{}, chatbox_errors.ErrAlreadyExists
		} else if !errors.Is(err, chatbox_errors.ErrNotFound) {
			return account.Account{}, err
		}
		acc.Email = in.Email
	}
	if in.Password != "" {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return account.Account{}, err
		}
		acc.PasswordHash = hash
	}
	if in.Role != "" {
		if !account.ValidRole(in.Role) {
			return account.Account{}, chatbox_errors.ErrInvalidInput
		}
		acc.Role = in.Role
	}
	acc.UpdatedAt = time.Now()

	if err := s.accounts.Update(ctx, acc); err != nil {
		return account.Account{}, err
	}

	return acc, nil
}

func (s *AccountService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.accounts.Delete(ctx, id)
}
