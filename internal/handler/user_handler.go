package handler

import (
	"net/http"

	"chatbox-backend/internal/services"
	"chatbox-backend/internal/transport/httpdto"
	chatbox_errors "chatbox-backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// UserHandler handles the public signup and the caller's own data endpoint.
type UserHandler struct {
	service *services.AccountService
}

func NewUserHandler(service *services.AccountService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Signup(c *gin.Context) {
	var req httpdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, chatbox_errors.ErrInvalidInput)
		return
	}

	created, err := h.service.Signup(c.Request.Context(), services.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.SignupResponse{
		Message:  "User added successfully.",
		UserData: httpdto.FromAccount(created),
	})
}

func (h *UserHandler) Data(c *gin.Context) {
	accountID, ok := services.AccountIDFromContext(c.Request.Context())
	if !ok {
		writeError(c, chatbox_errors.ErrForbidden)
		return
	}

	acc, err := h.service.Get(c.Request.Context(), accountID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.UserDataResponse{
		Username: acc.Username,
		Email:    acc.Email,
	})
}
