package handler

import (
	"net/http"

	"chatbox-backend/internal/services"
	"chatbox-backend/internal/transport/httpdto"
	chatbox_errors "chatbox-backend/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles the admin-gated account management endpoints.
type AdminHandler struct {
	service *services.AccountService
}

func NewAdminHandler(service *services.AccountService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) AllUsers(c *gin.Context) {
	accounts, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.ListUsersResponse{
		AllUsers: httpdto.FromAccountSlice(accounts),
	})
}

func (h *AdminHandler) AddUser(c *gin.Context) {
	var req httpdto.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, chatbox_errors.ErrInvalidInput)
		return
	}

	created, err := h.service.Create(c.Request.Context(), services.CreateInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
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

func (h *AdminHandler) EditUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, chatbox_errors.ErrNotFound)
		return
	}

	var req httpdto.EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, chatbox_errors.ErrInvalidInput)
		return
	}

	if _, err := h.service.Edit(c.Request.Context(), id, services.EditInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.MessageResponse{Message: "User updated successfully."})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, chatbox_errors.ErrNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.MessageResponse{Message: "User deleted successfully."})
}
