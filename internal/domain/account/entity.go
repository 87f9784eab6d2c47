package account

import (
	"time"

	"github.com/google/uuid"
)

// Roles an account can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account represents the accounts table
type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string // user, admin
	Messages     string // legacy free-form buffer kept for old clients, unused by new flows
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Account) TableName() string {
	return "accounts"
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
