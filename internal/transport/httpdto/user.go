package httpdto

import (
	"time"

	"chatbox-backend/internal/domain/account"
)

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AddUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type EditUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AccountDTO is the external view of an account. The password hash is
// deliberately absent.
type AccountDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromAccount(a account.Account) AccountDTO {
	return AccountDTO{
		ID:        a.ID.String(),
		Username:  a.Username,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func FromAccountSlice(accounts []account.Account) []AccountDTO {
	result := make([]AccountDTO, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, FromAccount(a))
	}
	return result
}

type SignupResponse struct {
	Message  string     `json:"message"`
	UserData AccountDTO `json:"userData"`
}

type ListUsersResponse struct {
	AllUsers []AccountDTO `json:"allUsers"`
}

type UserDataResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
