package store

import (
	"context"
	"database/sql"

	"github.com/fitlog/fittrack-api/internal/domain"
	"github.com/google/uuid"
)

// WorkoutStore defines the interface for workout data persistence.
type WorkoutStore interface {
	// Create saves a new workout to the store.
	// Returns ErrInvalidEntity if the owning account id violates the
	// foreign key, and validation errors from the domain Workout.
	Create(ctx context.Context, workout *domain.Workout) error

	// GetByID retrieves a workout by its unique ID.
	// Returns ErrWorkoutNotFound if the workout does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Workout, error)

	// Update modifies an existing workout's details.
	// Returns ErrWorkoutNotFound if the workout does not exist.
	Update(ctx context.Context, workout *domain.Workout) error

	// Delete physically removes a workout from the store. There is no
	// soft-delete flag on workouts; a deleted workout is gone.
	// Returns ErrWorkoutNotFound if the workout does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByAccount returns all workouts owned by the given account id,
	// in store order. An account with no workouts yields an empty slice.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Workout, error)

	// WithTx returns a new WorkoutStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) WorkoutStore
}
