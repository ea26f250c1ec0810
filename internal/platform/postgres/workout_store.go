package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fitlog/fittrack-api/internal/domain"
	"github.com/fitlog/fittrack-api/internal/platform/logger"
	"github.com/fitlog/fittrack-api/internal/store"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// WorkoutStore implements the store.WorkoutStore interface
// using a PostgreSQL database as the storage backend.
type WorkoutStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewWorkoutStore creates a new PostgreSQL implementation of the WorkoutStore interface.
// It accepts a database connection or transaction that should be initialized and managed
// by the caller. If logger is nil, a default logger will be used.
func NewWorkoutStore(db store.DBTX, logger *slog.Logger) *WorkoutStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &WorkoutStore{
		db:     db,
		logger: logger.With(slog.String("component", "workout_store")),
	}
}

// Ensure WorkoutStore implements store.WorkoutStore interface
var _ store.WorkoutStore = (*WorkoutStore)(nil)

const workoutColumns = `id, account_id, name, notes, duration_minutes, date,
	calories_burned, workout_type, created_at, updated_at`

// Create implements store.WorkoutStore.Create
// Returns store.ErrInvalidEntity if the owning account id violates the
// foreign key, and validation errors from the domain Workout.
func (s *WorkoutStore) Create(ctx context.Context, workout *domain.Workout) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := workout.Validate(); err != nil {
		log.Warn("workout validation failed during create",
			slog.String("error", err.Error()),
			slog.String("workout_id", workout.ID.String()))
		return err
	}

	query := `
		INSERT INTO workouts (id, account_id, name, notes, duration_minutes, date,
			calories_burned, workout_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		workout.ID,
		workout.AccountID,
		workout.Name,
		workout.Notes,
		workout.DurationMinutes,
		workout.Date,
		workout.CaloriesBurned,
		workout.Type,
		workout.CreatedAt,
		workout.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			log.Warn("foreign key violation during workout creation",
				slog.String("workout_id", workout.ID.String()),
				slog.String("account_id", workout.AccountID.String()))
			return fmt.Errorf("%w: account with ID %s not found",
				store.ErrInvalidEntity, workout.AccountID)
		}

		log.Error("failed to create workout",
			slog.String("error", err.Error()),
			slog.String("workout_id", workout.ID.String()))
		return MapError(err)
	}

	log.Info("workout created successfully",
		slog.String("workout_id", workout.ID.String()),
		slog.String("account_id", workout.AccountID.String()),
		slog.String("type", string(workout.Type)))
	return nil
}

// GetByID implements store.WorkoutStore.GetByID
func (s *WorkoutStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workout, error) {
	query := fmt.Sprintf(`SELECT %s FROM workouts WHERE id = $1`, workoutColumns)

	var workout domain.Workout
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&workout.ID,
		&workout.AccountID,
		&workout.Name,
		&workout.Notes,
		&workout.DurationMinutes,
		&workout.Date,
		&workout.CaloriesBurned,
		&workout.Type,
		&workout.CreatedAt,
		&workout.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrWorkoutNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to scan workout row",
			slog.String("error", err.Error()),
			slog.String("workout_id", id.String()))
		return nil, MapError(err)
	}

	return &workout, nil
}

// Update implements store.WorkoutStore.Update
func (s *WorkoutStore) Update(ctx context.Context, workout *domain.Workout) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := workout.Validate(); err != nil {
		log.Warn("workout validation failed during update",
			slog.String("error", err.Error()),
			slog.String("workout_id", workout.ID.String()))
		return err
	}

	query := `
		UPDATE workouts
		SET name = $2, notes = $3, duration_minutes = $4, date = $5,
			calories_burned = $6, workout_type = $7, updated_at = $8
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		workout.ID,
		workout.Name,
		workout.Notes,
		workout.DurationMinutes,
		workout.Date,
		workout.CaloriesBurned,
		workout.Type,
		workout.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to update workout",
			slog.String("error", err.Error()),
			slog.String("workout_id", workout.ID.String()))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return store.ErrWorkoutNotFound
	}

	log.Debug("workout updated successfully",
		slog.String("workout_id", workout.ID.String()))
	return nil
}

// Delete implements store.WorkoutStore.Delete
// The row is physically removed; there is no tombstone.
func (s *WorkoutStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete workout",
			slog.String("error", err.Error()),
			slog.String("workout_id", id.String()))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return store.ErrWorkoutNotFound
	}

	log.Info("workout deleted",
		slog.String("workout_id", id.String()))
	return nil
}

// ListByAccount implements store.WorkoutStore.ListByAccount
// Results come back in insertion order; no sort is promised to callers.
func (s *WorkoutStore) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Workout, error) {
	query := fmt.Sprintf(`SELECT %s FROM workouts WHERE account_id = $1`, workoutColumns)

	rows, err := s.db.QueryContext(ctx, query, accountID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list workouts",
			slog.String("error", err.Error()),
			slog.String("account_id", accountID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	workouts := []domain.Workout{}
	for rows.Next() {
		var workout domain.Workout
		if err := rows.Scan(
			&workout.ID,
			&workout.AccountID,
			&workout.Name,
			&workout.Notes,
			&workout.DurationMinutes,
			&workout.Date,
			&workout.CaloriesBurned,
			&workout.Type,
			&workout.CreatedAt,
			&workout.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return workouts, nil
}

// WithTx implements store.WorkoutStore.WithTx
func (s *WorkoutStore) WithTx(tx *sql.Tx) store.WorkoutStore {
	return &WorkoutStore{
		db:     tx,
		logger: s.logger,
	}
}
