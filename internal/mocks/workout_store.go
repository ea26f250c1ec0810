package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/fitlog/fittrack-api/internal/domain"
	"github.com/fitlog/fittrack-api/internal/store"
)

// MockWorkoutStore implements store.WorkoutStore for testing
type MockWorkoutStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, workout *domain.Workout) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Workout, error)
	UpdateFn        func(ctx context.Context, workout *domain.Workout) error
	DeleteFn        func(ctx context.Context, id uuid.UUID) error
	ListByAccountFn func(ctx context.Context, accountID uuid.UUID) ([]domain.Workout, error)

	// Data for default implementation, keyed by workout ID
	Workouts map[uuid.UUID]*domain.Workout

	// Error injection for default implementation
	CreateError error
	GetError    error
	UpdateError error
	DeleteError error

	// Call tracking for verification
	mu              sync.Mutex
	CreateCallCount int
	UpdateCallCount int
	DeleteCallCount int
}

// NewMockWorkoutStore creates a new mock store with initialized defaults
func NewMockWorkoutStore() *MockWorkoutStore {
	return &MockWorkoutStore{
		Workouts: make(map[uuid.UUID]*domain.Workout),
	}
}

// Create implements the WorkoutStore interface
func (m *MockWorkoutStore) Create(ctx context.Context, workout *domain.Workout) error {
	m.mu.Lock()
	m.CreateCallCount++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, workout)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	copied := *workout
	m.Workouts[workout.ID] = &copied
	return nil
}

// GetByID implements the WorkoutStore interface
func (m *MockWorkoutStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workout, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	workout, exists := m.Workouts[id]
	if !exists {
		return nil, store.ErrWorkoutNotFound
	}

	copied := *workout
	return &copied, nil
}

// Update implements the WorkoutStore interface
func (m *MockWorkoutStore) Update(ctx context.Context, workout *domain.Workout) error {
	m.mu.Lock()
	m.UpdateCallCount++
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, workout)
	}

	if m.UpdateError != nil {
		return m.UpdateError
	}

	if _, exists := m.Workouts[workout.ID]; !exists {
		return store.ErrWorkoutNotFound
	}

	copied := *workout
	m.Workouts[workout.ID] = &copied
	return nil
}

// Delete implements the WorkoutStore interface
func (m *MockWorkoutStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.DeleteCallCount++
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if m.DeleteError != nil {
		return m.DeleteError
	}

	if _, exists := m.Workouts[id]; !exists {
		return store.ErrWorkoutNotFound
	}

	delete(m.Workouts, id)
	return nil
}

// ListByAccount implements the WorkoutStore interface
func (m *MockWorkoutStore) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Workout, error) {
	if m.ListByAccountFn != nil {
		return m.ListByAccountFn(ctx, accountID)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	workouts := make([]domain.Workout, 0)
	for _, workout := range m.Workouts {
		if workout.AccountID == accountID {
			workouts = append(workouts, *workout)
		}
	}
	return workouts, nil
}

// WithTx implements the WorkoutStore interface. The mock has no real
// transaction, so it returns itself.
func (m *MockWorkoutStore) WithTx(tx *sql.Tx) store.WorkoutStore {
	return m
}
