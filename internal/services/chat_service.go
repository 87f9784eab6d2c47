package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chatbox-backend/internal/completion"
	"chatbox-backend/internal/domain/chat"
	"chatbox-backend/internal/repository"
	chatbox_errors "chatbox-backend/pkg/errors"

	"github.com/google/uuid"
)

// ChatService forwards prompts to the completion API and persists both
// turns of the exchange.
type ChatService struct {
	messages  repository.ChatRepository
	completer completion.Completer
}

func NewChatService(messages repository.ChatRepository, completer completion.Completer) *ChatService {
	return &ChatService{messages: messages, completer: completer}
}

// Complete persists the prompt, calls the completion API and persists the
// reply. The prompt row is written before the external call; if that call
// fails the prompt row stays with no reply and nothing is retried.
func (s *ChatService) Complete(ctx context.Context, accountID *uuid.UUID, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", chatbox_errors.ErrInvalidInput
	}

	promptMsg := &chat.Message{
		ID:        uuid.New(),
		AccountID: accountID,
		Text:      prompt,
		CreatedAt: time.Now(),
	}
	if err := s.messages.Create(ctx, promptMsg); err != nil {
		return "", err
	}

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %s", chatbox_errors.ErrUpstream, err)
	}

	replyMsg := &chat.Message{
		ID:        uuid.New(),
		AccountID: nil,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.messages.Create(ctx, replyMsg); err != nil {
		return "", err
	}

	return text, nil
}
