package database

import (
	"context"
	"errors"
	"time"

	"chatbox-backend/config"
	"chatbox-backend/internal/domain/account"
	"chatbox-backend/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the bootstrap admin account if it does not exist yet.
// Skipped entirely when no admin password is configured.
func SeedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config, l *logger.Logger) error {
	if cfg.AdminPassword == "" {
		l.Warnf("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing account.Account
	err := db.WithContext(ctx).Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := account.Account{
		ID:           uuid.New(),
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         account.RoleAdmin,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return err
	}

	l.Infof("Seeded admin account %s", cfg.AdminEmail)
	return nil
}
