package services

import (
	"context"
	"errors"
	"testing"

	chatbox_errors "chatbox-backend/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete_PersistsPromptAndReplyInOrder(t *testing.T) {
	t.Parallel()

	repo := &fakeChatRepo{}
	svc := NewChatService(repo, &fakeCompleter{reply: "Hi there"})
	accountID := uuid.New()

	text, err := svc.Complete(context.Background(), &accountID, "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi there", text)

	messages := repo.all()
	require.Len(t, messages, 2)

	prompt := messages[0]
	require.NotNil(t, prompt.AccountID)
	assert.Equal(t, accountID, *prompt.AccountID)
	assert.Equal(t, "Hello", prompt.Text)

	reply := messages[1]
	assert.Nil(t, reply.AccountID)
	assert.Equal(t, "Hi there", reply.Text)

	assert.Less(t, prompt.Seq, reply.Seq)
}

func TestComplete_UpstreamFailureKeepsOrphanedPrompt(t *testing.T) {
	t.Parallel()

	repo := &fakeChatRepo{}
	svc := NewChatService(repo, &fakeCompleter{err: errors.New("quota exceeded")})
	accountID := uuid.New()

	_, err := svc.Complete(context.Background(), &accountID, "Hello")
	assert.ErrorIs(t, err, chatbox_errors.ErrUpstream)

	messages := repo.all()
	require.Len(t, messages, 1)
	assert.Equal(t, "Hello", messages[0].Text)
}

func TestComplete_EmptyPromptRejectedBeforePersisting(t *testing.T) {
	t.Parallel()

	repo := &fakeChatRepo{}
	svc := NewChatService(repo, &fakeCompleter{reply: "unused"})
	accountID := uuid.New()

	_, err := svc.Complete(context.Background(), &accountID, "   ")
	assert.ErrorIs(t, err, chatbox_errors.ErrInvalidInput)
	assert.Empty(t, repo.all())
}

func TestChatLog_ListAndCountByAccount(t *testing.T) {
	t.Parallel()

	repo := &fakeChatRepo{}
	svc := NewChatService(repo, &fakeCompleter{reply: "ok"})
	alice := uuid.New()
	bob := uuid.New()

	for _, turn := range []struct {
		who    *uuid.UUID
		prompt string
	}{
		{&alice, "first"},
		{&bob, "second"},
		{&alice, "third"},
	} {
		_, err := svc.Complete(context.Background(), turn.who, turn.prompt)
		require.NoError(t, err)
	}

	aliceMessages, err := repo.ListByAccount(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, aliceMessages, 2)
	assert.Equal(t, "first", aliceMessages[0].Text)
	assert.Equal(t, "third", aliceMessages[1].Text)
	assert.Less(t, aliceMessages[0].Seq, aliceMessages[1].Seq)

	aliceCount, err := repo.CountByAccount(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, int64(2), aliceCount)

	bobCount, err := repo.CountByAccount(context.Background(), bob)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bobCount)
}

func TestComplete_AnonymousPromptAllowed(t *testing.T) {
	t.Parallel()

	repo := &fakeChatRepo{}
	svc := NewChatService(repo, &fakeCompleter{reply: "ok"})

	_, err := svc.Complete(context.Background(), nil, "Hello")
	require.NoError(t, err)

	messages := repo.all()
	require.Len(t, messages, 2)
	assert.Nil(t, messages[0].AccountID)
}
