package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Workout fields.
var (
	ErrEmptyWorkoutID      = errors.New("workout ID cannot be empty")
	ErrEmptyWorkoutName    = errors.New("workout name must not be null or empty")
	ErrZeroWorkoutDate     = errors.New("date of workout must not be null")
	ErrNegativeDuration    = errors.New("duration of workout must be greater than or equal to 0")
	ErrInvalidWorkoutType  = errors.New("workout type cannot be null or empty")
	ErrEmptyWorkoutOwner   = errors.New("there must be a user associated with this workout")
	ErrNegativeCalories    = errors.New("calories burned must be greater than or equal to 0")
)

// WorkoutType is the closed set of workout categories.
type WorkoutType string

// Supported workout types.
const (
	WorkoutTypeRunning       WorkoutType = "running"
	WorkoutTypeWeightlifting WorkoutType = "weightlifting"
	WorkoutTypeCycling       WorkoutType = "cycling"
	WorkoutTypeSwimming      WorkoutType = "swimming"
	WorkoutTypeHIIT          WorkoutType = "hiit"
	WorkoutTypeWalking       WorkoutType = "walking"
	WorkoutTypeRowing        WorkoutType = "rowing"
)

// IsValid reports whether t is one of the supported workout types.
func (t WorkoutType) IsValid() bool {
	switch t {
	case WorkoutTypeRunning, WorkoutTypeWeightlifting, WorkoutTypeCycling,
		WorkoutTypeSwimming, WorkoutTypeHIIT, WorkoutTypeWalking, WorkoutTypeRowing:
		return true
	}
	return false
}

// Workout represents a single logged workout session owned by an account.
// Workouts are hard-deleted: removing one erases the record entirely, in
// contrast to the account soft-delete flag.
type Workout struct {
	ID              uuid.UUID   `json:"id"`
	AccountID       uuid.UUID   `json:"account_id"`
	Name            string      `json:"name"`
	Notes           string      `json:"notes,omitempty"`
	DurationMinutes int         `json:"duration_minutes"`
	Date            time.Time   `json:"date"`
	CaloriesBurned  int         `json:"calories_burned"`
	Type            WorkoutType `json:"type"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// NewWorkout creates a Workout owned by the given account. It generates the
// workout ID and sets the creation timestamps. Owner existence is not
// checked here; that requires the account store and belongs to the service.
func NewWorkout(
	accountID uuid.UUID,
	name, notes string,
	durationMinutes int,
	date time.Time,
	caloriesBurned int,
	workoutType WorkoutType,
) (*Workout, error) {
	now := time.Now().UTC()
	workout := &Workout{
		ID:              uuid.New(),
		AccountID:       accountID,
		Name:            name,
		Notes:           notes,
		DurationMinutes: durationMinutes,
		Date:            date,
		CaloriesBurned:  caloriesBurned,
		Type:            workoutType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := workout.Validate(); err != nil {
		return nil, err
	}

	return workout, nil
}

// Validate checks that the Workout holds valid data.
// Returns the first sentinel error that applies.
func (w *Workout) Validate() error {
	if w.ID == uuid.Nil {
		return ErrEmptyWorkoutID
	}
	if w.Name == "" {
		return ErrEmptyWorkoutName
	}
	if w.Date.IsZero() {
		return ErrZeroWorkoutDate
	}
	if w.DurationMinutes < 0 {
		return ErrNegativeDuration
	}
	if !w.Type.IsValid() {
		return ErrInvalidWorkoutType
	}
	if w.AccountID == uuid.Nil {
		return ErrEmptyWorkoutOwner
	}
	if w.CaloriesBurned < 0 {
		return ErrNegativeCalories
	}
	return nil
}
