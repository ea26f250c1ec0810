package store

import (
	"context"
	"database/sql"

	"github.com/fitlog/fittrack-api/internal/domain"
	"github.com/google/uuid"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account to the store.
	// The account must already carry a hashed password; plaintext is never stored.
	// Returns ErrUsernameTaken or ErrEmailTaken on a uniqueness violation.
	// Returns validation errors from the domain Account if data is invalid.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID.
	// Soft-deleted accounts are returned with the Deleted flag set; they are
	// retained in storage and remain lookupable.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// GetByUsername retrieves an account by its username.
	// The lookup is case-insensitive; stored usernames are lowercased.
	// Returns ErrAccountNotFound if no account has the username.
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)

	// GetByEmail retrieves an account by its email address.
	// The lookup is case-insensitive; stored emails are lowercased.
	// Returns ErrAccountNotFound if no account has the email.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)

	// Update modifies an existing account's details. The caller provides a
	// complete account object; soft deletion is an Update that sets Deleted.
	// Returns ErrAccountNotFound if the account does not exist.
	// Returns ErrUsernameTaken or ErrEmailTaken if updating to a taken value.
	Update(ctx context.Context, account *domain.Account) error

	// WithTx returns a new AccountStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) AccountStore
}
