package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/fitlog/fittrack-api/internal/domain"
	"github.com/fitlog/fittrack-api/internal/platform/logger"
	"github.com/fitlog/fittrack-api/internal/store"
	"github.com/google/uuid"
)

// AccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type AccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAccountStore creates a new PostgreSQL implementation of the AccountStore interface.
// It accepts a database connection or transaction that should be initialized and managed
// by the caller. If logger is nil, a default logger will be used.
func NewAccountStore(db store.DBTX, logger *slog.Logger) *AccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure AccountStore implements store.AccountStore interface
var _ store.AccountStore = (*AccountStore)(nil)

const accountColumns = `id, full_name, username, password_hash, email, age,
	weight, height, metric_system, is_deleted, created_at, updated_at`

// Create implements store.AccountStore.Create
// It saves a new account to the database, handling domain validation.
// Returns store.ErrUsernameTaken or store.ErrEmailTaken on a uniqueness
// race the application-level pre-checks did not catch.
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	query := `
		INSERT INTO accounts (id, full_name, username, password_hash, email, age,
			weight, height, metric_system, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.FullName,
		account.Username,
		account.HashedPassword,
		account.Email,
		account.Age,
		account.Weight,
		account.Height,
		account.MetricSystem,
		account.Deleted,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return mapped
	}

	log.Info("account created successfully",
		slog.String("account_id", account.ID.String()),
		slog.String("username", account.Username))
	return nil
}

// GetByID implements store.AccountStore.GetByID
// Soft-deleted accounts are returned like any other; the Deleted flag tells
// them apart. Returns store.ErrAccountNotFound if the id does not resolve.
func (s *AccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE id = $1`, accountColumns)
	return s.scanAccount(ctx, s.db.QueryRowContext(ctx, query, id))
}

// GetByUsername implements store.AccountStore.GetByUsername
// The comparison is case-insensitive: stored usernames are lowercased and
// the argument is normalized the same way before the lookup.
func (s *AccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE username = $1`, accountColumns)
	return s.scanAccount(ctx, s.db.QueryRowContext(ctx, query, domain.NormalizeUsername(username)))
}

// GetByEmail implements store.AccountStore.GetByEmail
func (s *AccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE email = $1`, accountColumns)
	return s.scanAccount(ctx, s.db.QueryRowContext(ctx, query, domain.NormalizeEmail(email)))
}

// Update implements store.AccountStore.Update
// The caller provides the complete account; soft deletion is an Update with
// the Deleted flag set. Returns store.ErrAccountNotFound for an unknown id.
func (s *AccountStore) Update(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during update",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	query := `
		UPDATE accounts
		SET full_name = $2, username = $3, password_hash = $4, email = $5,
			age = $6, weight = $7, height = $8, metric_system = $9,
			is_deleted = $10, updated_at = $11
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.FullName,
		account.Username,
		account.HashedPassword,
		account.Email,
		account.Age,
		account.Weight,
		account.Height,
		account.MetricSystem,
		account.Deleted,
		account.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		log.Error("failed to update account",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return mapped
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return store.ErrAccountNotFound
	}

	log.Debug("account updated successfully",
		slog.String("account_id", account.ID.String()))
	return nil
}

// WithTx implements store.AccountStore.WithTx
func (s *AccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &AccountStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanAccount maps a single account row, translating sql.ErrNoRows into
// the account-specific not-found sentinel.
func (s *AccountStore) scanAccount(ctx context.Context, row *sql.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID,
		&account.FullName,
		&account.Username,
		&account.HashedPassword,
		&account.Email,
		&account.Age,
		&account.Weight,
		&account.Height,
		&account.MetricSystem,
		&account.Deleted,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrAccountNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to scan account row",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return &account, nil
}
