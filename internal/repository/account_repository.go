package repository

import (
	"context"
	"errors"

	"chatbox-backend/internal/domain/account"
	chatbox_errors "chatbox-backend/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresAccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, a *account.Account) error {
	res := r.db.WithContext(ctx).Create(a)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return chatbox_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	var a account.Account
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Account{}, chatbox_errors.ErrNotFound
		}
		return account.Account{}, err
	}
	return a, nil
}

func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	var a account.Account
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Account{}, chatbox_errors.ErrNotFound
		}
		return account.Account{}, err
	}
	return a, nil
}

func (r *PostgresAccountRepository) GetAll(ctx context.Context) ([]account.Account, error) {
	var accounts []account.Account
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *PostgresAccountRepository) Update(ctx context.Context, a account.Account) error {
	res := r.db.WithContext(ctx).Save(&a)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return chatbox_errors.ErrAlreadyExists
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return chatbox_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&account.Account{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return chatbox_errors.ErrNotFound
	}
	return nil
}
