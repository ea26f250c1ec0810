package mocks

import (
	"context"
	"database/sql"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/fitlog/fittrack-api/internal/domain"
	"github.com/fitlog/fittrack-api/internal/store"
)

// MockAccountStore implements store.AccountStore for testing
type MockAccountStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, account *domain.Account) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.Account, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.Account, error)
	UpdateFn        func(ctx context.Context, account *domain.Account) error

	// Data for default implementation, keyed by account ID
	Accounts map[uuid.UUID]*domain.Account

	// Error injection for default implementation
	CreateError error
	GetError    error
	UpdateError error

	// Call tracking for verification
	mu                 sync.Mutex
	CreateCallCount    int
	GetByIDCallCount   int
	UpdateCallCount    int
	LastUpdatedAccount *domain.Account
}

// NewMockAccountStore creates a new mock store with initialized defaults
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{
		Accounts: make(map[uuid.UUID]*domain.Account),
	}
}

// Create implements the AccountStore interface
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	m.mu.Lock()
	m.CreateCallCount++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	for _, existing := range m.Accounts {
		if strings.EqualFold(existing.Username, account.Username) {
			return store.ErrUsernameTaken
		}
		if strings.EqualFold(existing.Email, account.Email) {
			return store.ErrEmailTaken
		}
	}

	copied := *account
	m.Accounts[account.ID] = &copied
	return nil
}

// GetByID implements the AccountStore interface
func (m *MockAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	m.mu.Lock()
	m.GetByIDCallCount++
	m.mu.Unlock()

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	account, exists := m.Accounts[id]
	if !exists {
		return nil, store.ErrAccountNotFound
	}

	copied := *account
	return &copied, nil
}

// GetByUsername implements the AccountStore interface
func (m *MockAccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	for _, account := range m.Accounts {
		if strings.EqualFold(account.Username, username) {
			copied := *account
			return &copied, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

// GetByEmail implements the AccountStore interface
func (m *MockAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	for _, account := range m.Accounts {
		if strings.EqualFold(account.Email, email) {
			copied := *account
			return &copied, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

// Update implements the AccountStore interface
func (m *MockAccountStore) Update(ctx context.Context, account *domain.Account) error {
	m.mu.Lock()
	m.UpdateCallCount++
	copied := *account
	m.LastUpdatedAccount = &copied
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, account)
	}

	if m.UpdateError != nil {
		return m.UpdateError
	}

	if _, exists := m.Accounts[account.ID]; !exists {
		return store.ErrAccountNotFound
	}

	stored := *account
	m.Accounts[account.ID] = &stored
	return nil
}

// WithTx implements the AccountStore interface. The mock has no real
// transaction, so it returns itself.
func (m *MockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return m
}
