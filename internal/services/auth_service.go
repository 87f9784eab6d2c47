package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"chatbox-backend/config"
	"chatbox-backend/internal/repository"
	chatbox_errors "chatbox-backend/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and verifies session tokens. Tokens are stateless and
// self-verifying; no session state is persisted.
type AuthService struct {
	accounts  repository.AccountRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(accounts repository.AccountRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		accounts:  accounts,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  time.Duration(cfg.JWTExpiryHours) * time.Hour,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type AccessClaims struct {
	AccountID string `json:"sub"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Login validates credentials and returns a signed token. An unknown email
// and a wrong password fail identically so account existence never leaks.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	if in.Email == "" || in.Password == "" {
		return "", chatbox_errors.ErrInvalidCredentials
	}

	acc, err := s.accounts.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, chatbox_errors.ErrNotFound) {
			return "", chatbox_errors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := comparePassword(acc.PasswordHash, in.Password); err != nil {
		return "", chatbox_errors.ErrInvalidCredentials
	}

	return s.newAccessToken(acc.ID, acc.Role)
}

func (s *AuthService) ParseAccessToken(tokenString string) (AccessClaims, error) {
	if tokenString == "" {
		return AccessClaims{}, chatbox_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, chatbox_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return AccessClaims{}, chatbox_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return AccessClaims{}, chatbox_errors.ErrUnauthorized
	}

	return *claims, nil
}

func (s *AuthService) newAccessToken(accountID uuid.UUID, role string) (string, error) {
	now := time.Now()

	claims := AccessClaims{
		AccountID: accountID.String(),
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// HTTPStatus maps service errors to response status codes in one place.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, chatbox_errors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, chatbox_errors.ErrAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, chatbox_errors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, chatbox_errors.ErrUnauthorized), errors.Is(err, chatbox_errors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, chatbox_errors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type ctxKey string

var accountIDKey ctxKey = "account_id"
var roleKey ctxKey = "role"

func WithIdentityContext(ctx context.Context, accountID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, accountIDKey, accountID)
	ctx = context.WithValue(ctx, roleKey, role)
	return ctx
}

func AccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	value := ctx.Value(accountIDKey)
	if value == nil {
		return uuid.Nil, false
	}
	accountID, ok := value.(uuid.UUID)
	return accountID, ok
}

func RoleFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(roleKey)
	if value == nil {
		return "", false
	}
	role, ok := value.(string)
	return role, ok
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
