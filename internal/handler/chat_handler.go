package handler

import (
	"net/http"

	"chatbox-backend/internal/services"
	"chatbox-backend/internal/transport/httpdto"
	chatbox_errors "chatbox-backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles the chat proxy endpoint.
type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chatbox forwards the prompt to the completion API and returns the reply.
func (h *ChatHandler) Chatbox(c *gin.Context) {
	var req httpdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, chatbox_errors.ErrInvalidInput)
		return
	}

	accountID, ok := services.AccountIDFromContext(c.Request.Context())
	if !ok {
		writeError(c, chatbox_errors.ErrForbidden)
		return
	}

	text, err := h.service.Complete(c.Request.Context(), &accountID, req.Prompt)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.ChatResponse{Text: text})
}
