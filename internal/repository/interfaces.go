package repository

import (
	"context"

	"github.com/google/uuid"

	"chatbox-backend/internal/domain/account"
	"chatbox-backend/internal/domain/chat"
)

type AccountRepository interface {
	Create(ctx context.Context, a *account.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (account.Account, error)
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	GetAll(ctx context.Context) ([]account.Account, error)
	Update(ctx context.Context, a account.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ChatRepository interface {
	Create(ctx context.Context, m *chat.Message) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]chat.Message, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
}
