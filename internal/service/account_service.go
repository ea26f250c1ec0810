package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitlog/fittrack-api/internal/domain"
	"github.com/fitlog/fittrack-api/internal/service/auth"
	"github.com/fitlog/fittrack-api/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest carries the input for account registration.
// Weight and height are optional; omitted values default to zero, not null.
type CreateAccountRequest struct {
	FullName     string
	Username     string
	Password     string
	Email        string
	Age          int
	Weight       *decimal.Decimal
	Height       *decimal.Decimal
	MetricSystem bool
}

// AccountService provides account lifecycle operations.
type AccountService interface {
	// CreateAccount registers a new account. Username and email uniqueness
	// is checked (case-insensitively) at the application layer before any
	// write; the password is hashed only after every check has passed.
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*domain.Account, error)

	// GetAccountInfo retrieves an account by ID. Soft-deleted accounts are
	// returned with their Deleted flag set.
	GetAccountInfo(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// UpdateAccountInfo applies a partial update to the account.
	// Returns store.ErrAccountNotFound if the id does not resolve.
	UpdateAccountInfo(ctx context.Context, id uuid.UUID, patch AccountPatch) error

	// DeleteAccount soft-deletes the account: the record is kept and stays
	// retrievable, with Deleted set to true.
	DeleteAccount(ctx context.Context, id uuid.UUID) error

	// ChangeMeasurementSystem sets the account's metric/imperial preference.
	ChangeMeasurementSystem(ctx context.Context, id uuid.UUID, metric bool) error

	// ChangeWeight sets the account's weight, rounded to the storage scale.
	// Negative input is rejected before any store lookup occurs.
	ChangeWeight(ctx context.Context, id uuid.UUID, weight decimal.Decimal) error

	// ChangeHeight sets the account's height, rounded to the storage scale.
	// Negative input is rejected before any store lookup occurs.
	ChangeHeight(ctx context.Context, id uuid.UUID, height decimal.Decimal) error
}

// AccountServiceImpl implements the AccountService interface.
type AccountServiceImpl struct {
	accountStore store.AccountStore
	hasher       auth.PasswordHasher
	txRunner     store.TxRunner
	logger       *slog.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	accountStore store.AccountStore,
	hasher auth.PasswordHasher,
	txRunner store.TxRunner,
	logger *slog.Logger,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		accountStore: accountStore,
		hasher:       hasher,
		txRunner:     txRunner,
		logger:       logger.With("component", "account_service"),
	}
}

var _ AccountService = (*AccountServiceImpl)(nil)

// CreateAccount registers a new account.
// Validation order matters and is covered by tests: required fields first,
// then the uniqueness lookups, and hashing strictly last, so a conflicting
// username or email costs neither a write nor a hash.
func (s *AccountServiceImpl) CreateAccount(
	ctx context.Context,
	req CreateAccountRequest,
) (*domain.Account, error) {
	if err := s.validateCreateRequest(ctx, req); err != nil {
		return nil, err
	}

	weight := decimal.Zero
	if req.Weight != nil {
		weight = *req.Weight
	}
	height := decimal.Zero
	if req.Height != nil {
		height = *req.Height
	}

	account, err := domain.NewAccount(
		req.FullName, req.Username, req.Password, req.Email,
		req.Age, weight, height, req.MetricSystem,
	)
	if err != nil {
		s.logger.Warn("invalid account data on create", "error", err)
		return nil, err
	}

	// Hash only after every validation and uniqueness check has passed.
	hashed, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	account.HashedPassword = hashed
	account.Password = ""

	err = s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.accountStore.WithTx(tx).Create(ctx, account)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("account uniqueness race on create",
				"username", account.Username)
			return nil, err
		}
		s.logger.Error("failed to save account",
			"error", err,
			"account_id", account.ID)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account created",
		"account_id", account.ID,
		"username", account.Username)
	return account, nil
}

// validateCreateRequest applies the registration checks in their required
// order. Both uniqueness lookups run before any write or hash call.
func (s *AccountServiceImpl) validateCreateRequest(ctx context.Context, req CreateAccountRequest) error {
	if req.FullName == "" {
		return domain.NewValidationError("full name", "must not be empty or null", domain.ErrEmptyFullName)
	}
	if req.Username == "" {
		return domain.NewValidationError("username", "must not be empty or null", domain.ErrEmptyUsername)
	}
	if err := s.checkUsernameFree(ctx, req.Username); err != nil {
		return err
	}
	if req.Email == "" {
		return domain.NewValidationError("email", "must not be empty or null", domain.ErrEmptyEmail)
	}
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return err
	}
	if req.Password == "" {
		return domain.NewValidationError("password", "must not be empty or null", domain.ErrEmptyPassword)
	}
	if req.Age < 0 {
		return domain.NewValidationError("age", "must be greater than or equal to 0", domain.ErrNegativeAge)
	}
	return nil
}

func (s *AccountServiceImpl) checkUsernameFree(ctx context.Context, username string) error {
	_, err := s.accountStore.GetByUsername(ctx, username)
	if err == nil {
		return fmt.Errorf("a user with this username already exists: %w", store.ErrUsernameTaken)
	}
	if !errors.Is(err, store.ErrAccountNotFound) {
		return fmt.Errorf("failed to check username uniqueness: %w", err)
	}
	return nil
}

func (s *AccountServiceImpl) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.accountStore.GetByEmail(ctx, email)
	if err == nil {
		return fmt.Errorf("a user with this email already exists: %w", store.ErrEmailTaken)
	}
	if !errors.Is(err, store.ErrAccountNotFound) {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	return nil
}

// GetAccountInfo retrieves an account by its ID.
func (s *AccountServiceImpl) GetAccountInfo(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	account, err := s.accountStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			s.logger.Debug("account not found", "account_id", id)
			return nil, err
		}
		s.logger.Error("failed to retrieve account",
			"error", err,
			"account_id", id)
		return nil, fmt.Errorf("failed to retrieve account: %w", err)
	}
	return account, nil
}

// UpdateAccountInfo applies the patch to the account using the documented
// merge semantics: each supplied, individually valid field is applied;
// supplied-but-invalid fields are skipped without error. Applying the same
// patch twice yields the same final state.
func (s *AccountServiceImpl) UpdateAccountInfo(ctx context.Context, id uuid.UUID, patch AccountPatch) error {
	err := s.mutateAccount(ctx, id, func(account *domain.Account) error {
		return s.applyAccountPatch(ctx, account, patch)
	})
	if err != nil {
		return err
	}

	s.logger.Info("account updated", "account_id", id)
	return nil
}

// applyAccountPatch merges the patch into the account. Height and weight
// are re-rounded to the storage scale on the way in.
func (s *AccountServiceImpl) applyAccountPatch(
	ctx context.Context,
	account *domain.Account,
	patch AccountPatch,
) error {
	if patch.Email != nil && *patch.Email != "" {
		account.Email = domain.NormalizeEmail(*patch.Email)
	}
	if patch.Age != nil && *patch.Age > 0 {
		account.Age = *patch.Age
	}
	if patch.Username != nil && *patch.Username != "" {
		account.Username = domain.NormalizeUsername(*patch.Username)
	}
	if patch.Height != nil && patch.Height.IsPositive() {
		account.Height = domain.RoundMeasurement(*patch.Height)
	}
	if patch.Weight != nil && patch.Weight.IsPositive() {
		account.Weight = domain.RoundMeasurement(*patch.Weight)
	}
	if patch.Password != nil && *patch.Password != "" {
		hashed, err := s.hasher.Hash(ctx, *patch.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		account.HashedPassword = hashed
	}
	if patch.MetricSystem != nil && *patch.MetricSystem != account.MetricSystem {
		account.MetricSystem = *patch.MetricSystem
	}
	return nil
}

// DeleteAccount soft-deletes the account. The record is never physically
// removed; it remains lookupable with Deleted set.
func (s *AccountServiceImpl) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	err := s.mutateAccount(ctx, id, func(account *domain.Account) error {
		account.Deleted = true
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("account soft-deleted", "account_id", id)
	return nil
}

// ChangeMeasurementSystem sets the metric/imperial preference. Stored
// precision does not depend on the flag; it only drives display units.
func (s *AccountServiceImpl) ChangeMeasurementSystem(ctx context.Context, id uuid.UUID, metric bool) error {
	return s.mutateAccount(ctx, id, func(account *domain.Account) error {
		account.MetricSystem = metric
		return nil
	})
}

// ChangeWeight sets the account's weight. Unlike the patch path, negative
// input is an error here, raised before the store is consulted at all.
func (s *AccountServiceImpl) ChangeWeight(ctx context.Context, id uuid.UUID, weight decimal.Decimal) error {
	if weight.IsNegative() {
		return domain.NewValidationError("weight", "must be greater than or equal to 0", domain.ErrNegativeWeight)
	}
	rounded := domain.RoundMeasurement(weight)

	return s.mutateAccount(ctx, id, func(account *domain.Account) error {
		account.Weight = rounded
		return nil
	})
}

// ChangeHeight sets the account's height, with the same guard ordering as
// ChangeWeight.
func (s *AccountServiceImpl) ChangeHeight(ctx context.Context, id uuid.UUID, height decimal.Decimal) error {
	if height.IsNegative() {
		return domain.NewValidationError("height", "must be greater than or equal to 0", domain.ErrNegativeHeight)
	}
	rounded := domain.RoundMeasurement(height)

	return s.mutateAccount(ctx, id, func(account *domain.Account) error {
		account.Height = rounded
		return nil
	})
}

// mutateAccount runs a read-mutate-save sequence on one account inside a
// single transaction. Concurrent mutations of the same id are last-write-
// wins; see DESIGN.md for the accepted concurrency model.
func (s *AccountServiceImpl) mutateAccount(
	ctx context.Context,
	id uuid.UUID,
	mutate func(*domain.Account) error,
) error {
	return s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.accountStore.WithTx(tx)
		return applyUpdate(ctx,
			func(ctx context.Context) (*domain.Account, error) {
				account, err := txStore.GetByID(ctx, id)
				if err != nil {
					if errors.Is(err, store.ErrAccountNotFound) {
						s.logger.Debug("account not found for update", "account_id", id)
						return nil, err
					}
					return nil, fmt.Errorf("failed to retrieve account for update: %w", err)
				}
				return account, nil
			},
			func(ctx context.Context, account *domain.Account) error {
				account.UpdatedAt = time.Now().UTC()
				if err := txStore.Update(ctx, account); err != nil {
					return fmt.Errorf("failed to update account: %w", err)
				}
				return nil
			},
			mutate,
		)
	})
}
