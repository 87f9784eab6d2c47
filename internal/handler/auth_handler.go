// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"net/http"

	"chatbox-backend/internal/services"
	"chatbox-backend/internal/transport/httpdto"
	chatbox_errors "chatbox-backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login authenticates by email and password and returns a signed token.
// A malformed body, an unknown email and a wrong password all answer the
// same way.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, chatbox_errors.ErrInvalidCredentials)
		return
	}

	token, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.LoginResponse{AdminToken: token})
}
