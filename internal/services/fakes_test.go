package services

import (
	"context"
	"sync"

	"chatbox-backend/internal/domain/account"
	"chatbox-backend/internal/domain/chat"
	chatbox_errors "chatbox-backend/pkg/errors"

	"github.com/google/uuid"
)

// fakeAccountRepo is an in-memory AccountRepository with the same
// duplicate-email and not-found semantics as the Postgres one.
type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]account.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]account.Account)}
}

func (f *fakeAccountRepo) Create(_ context.Context, a *account.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.accounts {
		if existing.Email == a.Email {
			return chatbox_errors.ErrAlreadyExists
		}
	}
	f.accounts[a.ID] = *a
	return nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id uuid.UUID) (account.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return account.Account{}, chatbox_errors.ErrNotFound
	}
	return a, nil
}

func (f *fakeAccountRepo) GetByEmail(_ context.Context, email string) (account.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return account.Account{}, chatbox_errors.ErrNotFound
}

func (f *fakeAccountRepo) GetAll(_ context.Context) ([]account.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]account.Account, 0, len(f.accounts))
	for _, a := range f.accounts {
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAccountRepo) Update(_ context.Context, a account.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.accounts[a.ID]; !ok {
		return chatbox_errors.ErrNotFound
	}
	for id, existing := range f.accounts {
		if id != a.ID && existing.Email == a.Email {
			return chatbox_errors.ErrAlreadyExists
		}
	}
	f.accounts[a.ID] = a
	return nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.accounts[id]; !ok {
		return chatbox_errors.ErrNotFound
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakeAccountRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.accounts)
}

// fakeChatRepo records messages in insertion order and assigns seq the way
// the database would.
type fakeChatRepo struct {
	mu       sync.Mutex
	messages []chat.Message
}

func (f *fakeChatRepo) Create(_ context.Context, m *chat.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m.Seq = int64(len(f.messages) + 1)
	f.messages = append(f.messages, *m)
	return nil
}

func (f *fakeChatRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]chat.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []chat.Message
	for _, m := range f.messages {
		if m.AccountID != nil && *m.AccountID == accountID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeChatRepo) CountByAccount(_ context.Context, accountID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, m := range f.messages {
		if m.AccountID != nil && *m.AccountID == accountID {
			count++
		}
	}
	return count, nil
}

func (f *fakeChatRepo) all() []chat.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]chat.Message(nil), f.messages...)
}

type fakeCompleter struct {
	reply string
	err   error
}

func (f *fakeCompleter) Complete(_ context.Context, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
