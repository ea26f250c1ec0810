package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitlog/fittrack-api/internal/domain"
	"github.com/fitlog/fittrack-api/internal/store"
	"github.com/google/uuid"
)

// ErrOwnerAccountNotFound indicates that the account id a workout operation
// referenced does not resolve. It is an input problem, not a lookup result,
// so the API layer reports it as a bad request rather than a 404.
var ErrOwnerAccountNotFound = errors.New("user with that id is not found")

// CreateWorkoutRequest carries the input for logging a new workout.
type CreateWorkoutRequest struct {
	AccountID       uuid.UUID
	Name            string
	Notes           string
	DurationMinutes int
	Date            time.Time
	CaloriesBurned  int
	Type            domain.WorkoutType
}

// WorkoutService provides workout lifecycle operations.
type WorkoutService interface {
	// CreateWorkout validates and persists a new workout. The owning
	// account must resolve; soft-deleted accounts may still own workouts.
	CreateWorkout(ctx context.Context, req CreateWorkoutRequest) (*domain.Workout, error)

	// GetWorkoutInfo retrieves a workout by ID.
	// Returns store.ErrWorkoutNotFound if the id does not resolve.
	GetWorkoutInfo(ctx context.Context, id uuid.UUID) (*domain.Workout, error)

	// UpdateWorkoutInfo applies a partial update to the workout.
	UpdateWorkoutInfo(ctx context.Context, id uuid.UUID, patch WorkoutPatch) error

	// DeleteWorkout hard-deletes the workout; the record is physically
	// removed and later reads fail with store.ErrWorkoutNotFound.
	DeleteWorkout(ctx context.Context, id uuid.UUID) error

	// ListWorkoutsForAccount returns all workouts owned by the account, in
	// store order, or ErrOwnerAccountNotFound if the account id does not
	// resolve. An account with no workouts yields an empty slice.
	ListWorkoutsForAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Workout, error)
}

// WorkoutServiceImpl implements the WorkoutService interface.
type WorkoutServiceImpl struct {
	workoutStore store.WorkoutStore
	accountStore store.AccountStore
	txRunner     store.TxRunner
	logger       *slog.Logger
}

// NewWorkoutService creates a new WorkoutService.
func NewWorkoutService(
	workoutStore store.WorkoutStore,
	accountStore store.AccountStore,
	txRunner store.TxRunner,
	logger *slog.Logger,
) *WorkoutServiceImpl {
	return &WorkoutServiceImpl{
		workoutStore: workoutStore,
		accountStore: accountStore,
		txRunner:     txRunner,
		logger:       logger.With("component", "workout_service"),
	}
}

var _ WorkoutService = (*WorkoutServiceImpl)(nil)

// CreateWorkout validates and persists a new workout.
// The check order is part of the contract: field shape first, then owner
// existence, then calories, so a missing owner surfaces before a bad
// calories value when both are wrong.
func (s *WorkoutServiceImpl) CreateWorkout(
	ctx context.Context,
	req CreateWorkoutRequest,
) (*domain.Workout, error) {
	if err := s.validateCreateRequest(ctx, req); err != nil {
		return nil, err
	}

	workout, err := domain.NewWorkout(
		req.AccountID, req.Name, req.Notes,
		req.DurationMinutes, req.Date, req.CaloriesBurned, req.Type,
	)
	if err != nil {
		s.logger.Warn("invalid workout data on create", "error", err)
		return nil, err
	}

	err = s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.workoutStore.WithTx(tx).Create(ctx, workout)
	})
	if err != nil {
		s.logger.Error("failed to save workout",
			"error", err,
			"workout_id", workout.ID)
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}

	s.logger.Info("workout created",
		"workout_id", workout.ID,
		"account_id", workout.AccountID,
		"type", workout.Type)
	return workout, nil
}

func (s *WorkoutServiceImpl) validateCreateRequest(ctx context.Context, req CreateWorkoutRequest) error {
	if req.Name == "" {
		return domain.NewValidationError("workout name", "must not be null or empty", domain.ErrEmptyWorkoutName)
	}
	if req.Date.IsZero() {
		return domain.NewValidationError("date", "of workout must not be null", domain.ErrZeroWorkoutDate)
	}
	if req.DurationMinutes < 0 {
		return domain.NewValidationError("duration", "of workout must be greater than or equal to 0", domain.ErrNegativeDuration)
	}
	if !req.Type.IsValid() {
		return domain.NewValidationError("workout type", "cannot be null or empty", domain.ErrInvalidWorkoutType)
	}
	if req.AccountID == uuid.Nil {
		return domain.NewValidationError("account", "there must be a user associated with this workout", domain.ErrEmptyWorkoutOwner)
	}
	if err := s.resolveOwner(ctx, req.AccountID); err != nil {
		return fmt.Errorf("cannot validate workout data: %w", err)
	}
	if req.CaloriesBurned < 0 {
		return domain.NewValidationError("calories burned", "must be greater than or equal to 0", domain.ErrNegativeCalories)
	}
	return nil
}

// resolveOwner checks that the account id exists. The deleted flag is
// deliberately not consulted: a soft-deleted account still owns its
// history and may log new workouts.
func (s *WorkoutServiceImpl) resolveOwner(ctx context.Context, accountID uuid.UUID) error {
	_, err := s.accountStore.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			s.logger.Debug("workout owner not found", "account_id", accountID)
			return ErrOwnerAccountNotFound
		}
		return fmt.Errorf("failed to resolve workout owner: %w", err)
	}
	return nil
}

// GetWorkoutInfo retrieves a workout by its ID.
func (s *WorkoutServiceImpl) GetWorkoutInfo(ctx context.Context, id uuid.UUID) (*domain.Workout, error) {
	workout, err := s.workoutStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrWorkoutNotFound) {
			s.logger.Debug("workout not found", "workout_id", id)
			return nil, err
		}
		s.logger.Error("failed to retrieve workout",
			"error", err,
			"workout_id", id)
		return nil, fmt.Errorf("failed to retrieve workout: %w", err)
	}
	return workout, nil
}

// UpdateWorkoutInfo applies the patch to the workout. Duration and
// calories apply independently, each behind its own non-negativity check.
func (s *WorkoutServiceImpl) UpdateWorkoutInfo(ctx context.Context, id uuid.UUID, patch WorkoutPatch) error {
	err := s.mutateWorkout(ctx, id, func(workout *domain.Workout) error {
		applyWorkoutPatch(workout, patch)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("workout updated", "workout_id", id)
	return nil
}

func applyWorkoutPatch(workout *domain.Workout, patch WorkoutPatch) {
	if patch.Name != nil && *patch.Name != "" {
		workout.Name = *patch.Name
	}
	if patch.Date != nil && !patch.Date.IsZero() {
		workout.Date = *patch.Date
	}
	if patch.DurationMinutes != nil && *patch.DurationMinutes >= 0 {
		workout.DurationMinutes = *patch.DurationMinutes
	}
	if patch.CaloriesBurned != nil && *patch.CaloriesBurned >= 0 {
		workout.CaloriesBurned = *patch.CaloriesBurned
	}
	if patch.Notes != nil {
		workout.Notes = *patch.Notes
	}
	if patch.Type != nil && patch.Type.IsValid() {
		workout.Type = *patch.Type
	}
}

// DeleteWorkout hard-deletes the workout.
func (s *WorkoutServiceImpl) DeleteWorkout(ctx context.Context, id uuid.UUID) error {
	err := s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.workoutStore.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, store.ErrWorkoutNotFound) {
			s.logger.Debug("workout not found for delete", "workout_id", id)
			return err
		}
		s.logger.Error("failed to delete workout",
			"error", err,
			"workout_id", id)
		return fmt.Errorf("failed to delete workout: %w", err)
	}

	s.logger.Info("workout deleted", "workout_id", id)
	return nil
}

// ListWorkoutsForAccount returns the account's workouts in store order.
func (s *WorkoutServiceImpl) ListWorkoutsForAccount(
	ctx context.Context,
	accountID uuid.UUID,
) ([]domain.Workout, error) {
	if err := s.resolveOwner(ctx, accountID); err != nil {
		return nil, err
	}

	workouts, err := s.workoutStore.ListByAccount(ctx, accountID)
	if err != nil {
		s.logger.Error("failed to list workouts",
			"error", err,
			"account_id", accountID)
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return workouts, nil
}

// mutateWorkout runs a read-mutate-save sequence on one workout inside a
// single transaction, mirroring mutateAccount.
func (s *WorkoutServiceImpl) mutateWorkout(
	ctx context.Context,
	id uuid.UUID,
	mutate func(*domain.Workout) error,
) error {
	return s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.workoutStore.WithTx(tx)
		return applyUpdate(ctx,
			func(ctx context.Context) (*domain.Workout, error) {
				workout, err := txStore.GetByID(ctx, id)
				if err != nil {
					if errors.Is(err, store.ErrWorkoutNotFound) {
						s.logger.Debug("workout not found for update", "workout_id", id)
						return nil, err
					}
					return nil, fmt.Errorf("failed to retrieve workout for update: %w", err)
				}
				return workout, nil
			},
			func(ctx context.Context, workout *domain.Workout) error {
				workout.UpdatedAt = time.Now().UTC()
				if err := txStore.Update(ctx, workout); err != nil {
					return fmt.Errorf("failed to update workout: %w", err)
				}
				return nil
			},
			mutate,
		)
	})
}
