package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlog/fittrack-api/internal/domain"
	"github.com/fitlog/fittrack-api/internal/mocks"
	"github.com/fitlog/fittrack-api/internal/store"
)

func newWorkoutServiceForTest() (*WorkoutServiceImpl, *mocks.MockWorkoutStore, *mocks.MockAccountStore) {
	workoutStore := mocks.NewMockWorkoutStore()
	accountStore := mocks.NewMockAccountStore()
	txRunner := &mocks.MockTxRunner{}
	svc := NewWorkoutService(workoutStore, accountStore, txRunner, newTestLogger())
	return svc, workoutStore, accountStore
}

func seedWorkout(t *testing.T, workoutStore *mocks.MockWorkoutStore, accountID uuid.UUID) *domain.Workout {
	t.Helper()
	workout := &domain.Workout{
		ID:              uuid.New(),
		AccountID:       accountID,
		Name:            "Morning run",
		Notes:           "easy pace",
		DurationMinutes: 45,
		Date:            time.Date(2026, 3, 14, 7, 30, 0, 0, time.UTC),
		CaloriesBurned:  420,
		Type:            domain.WorkoutTypeRunning,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	workoutStore.Workouts[workout.ID] = workout
	return workout
}

func validWorkoutRequest(accountID uuid.UUID) CreateWorkoutRequest {
	return CreateWorkoutRequest{
		AccountID:       accountID,
		Name:            "Evening ride",
		Notes:           "",
		DurationMinutes: 60,
		Date:            time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC),
		CaloriesBurned:  550,
		Type:            domain.WorkoutTypeCycling,
	}
}

func TestCreateWorkout(t *testing.T) {
	t.Parallel()
	svc, workoutStore, accountStore := newWorkoutServiceForTest()
	owner := seedAccount(t, accountStore, "janed", "jane@example.com")

	workout, err := svc.CreateWorkout(context.Background(), validWorkoutRequest(owner.ID))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, workout.ID)
	assert.Equal(t, owner.ID, workout.AccountID)
	assert.Equal(t, "Evening ride", workout.Name)
	assert.Equal(t, domain.WorkoutTypeCycling, workout.Type)
	assert.Equal(t, 1, workoutStore.CreateCallCount)
}

func TestCreateWorkoutOwnerNotFound(t *testing.T) {
	t.Parallel()
	svc, workoutStore, _ := newWorkoutServiceForTest()

	_, err := svc.CreateWorkout(context.Background(), validWorkoutRequest(uuid.New()))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOwnerAccountNotFound)
	assert.Equal(t, 0, workoutStore.CreateCallCount)
}

// TestCreateWorkoutOwnerCheckPrecedesCalories pins the validation order:
// when the owner is missing and the calories are negative, the owner error
// wins.
func TestCreateWorkoutOwnerCheckPrecedesCalories(t *testing.T) {
	t.Parallel()
	svc, _, _ := newWorkoutServiceForTest()

	req := validWorkoutRequest(uuid.New())
	req.CaloriesBurned = -100

	_, err := svc.CreateWorkout(context.Background(), req)
	assert.ErrorIs(t, err, ErrOwnerAccountNotFound)
}

func TestCreateWorkoutValidation(t *testing.T) {
	t.Parallel()
	svc, _, accountStore := newWorkoutServiceForTest()
	owner := seedAccount(t, accountStore, "janed", "jane@example.com")

	tests := []struct {
		name    string
		mutate  func(*CreateWorkoutRequest)
		wantErr error
	}{
		{
			name:    "empty name",
			mutate:  func(r *CreateWorkoutRequest) { r.Name = "" },
			wantErr: domain.ErrEmptyWorkoutName,
		},
		{
			name:    "zero date",
			mutate:  func(r *CreateWorkoutRequest) { r.Date = time.Time{} },
			wantErr: domain.ErrZeroWorkoutDate,
		},
		{
			name:    "negative duration",
			mutate:  func(r *CreateWorkoutRequest) { r.DurationMinutes = -1 },
			wantErr: domain.ErrNegativeDuration,
		},
		{
			name:    "unknown type",
			mutate:  func(r *CreateWorkoutRequest) { r.Type = "parkour" },
			wantErr: domain.ErrInvalidWorkoutType,
		},
		{
			name:    "missing owner id",
			mutate:  func(r *CreateWorkoutRequest) { r.AccountID = uuid.Nil },
			wantErr: domain.ErrEmptyWorkoutOwner,
		},
		{
			name:    "negative calories",
			mutate:  func(r *CreateWorkoutRequest) { r.CaloriesBurned = -1 },
			wantErr: domain.ErrNegativeCalories,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := validWorkoutRequest(owner.ID)
			tc.mutate(&req)

			_, err := svc.CreateWorkout(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestCreateWorkoutDeletedOwner documents that a soft-deleted account may
// still own new workouts; the owner lookup does not filter on the flag.
func TestCreateWorkoutDeletedOwner(t *testing.T) {
	t.Parallel()
	svc, _, accountStore := newWorkoutServiceForTest()
	owner := seedAccount(t, accountStore, "janed", "jane@example.com")
	owner.Deleted = true

	workout, err := svc.CreateWorkout(context.Background(), validWorkoutRequest(owner.ID))
	require.NoError(t, err)
	assert.Equal(t, owner.ID, workout.AccountID)
}

func TestGetWorkoutInfo(t *testing.T) {
	t.Parallel()
	svc, workoutStore, _ := newWorkoutServiceForTest()
	seeded := seedWorkout(t, workoutStore, uuid.New())

	workout, err := svc.GetWorkoutInfo(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, workout.ID)
	assert.Equal(t, "Morning run", workout.Name)
}

func TestGetWorkoutInfoNotFound(t *testing.T) {
	t.Parallel()
	svc, _, _ := newWorkoutServiceForTest()

	_, err := svc.GetWorkoutInfo(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrWorkoutNotFound)
}

func TestUpdateWorkoutInfoSingleField(t *testing.T) {
	t.Parallel()
	svc, workoutStore, _ := newWorkoutServiceForTest()
	seeded := seedWorkout(t, workoutStore, uuid.New())

	name := "Long run"
	require.NoError(t, svc.UpdateWorkoutInfo(context.Background(), seeded.ID, WorkoutPatch{Name: &name}))

	updated := workoutStore.Workouts[seeded.ID]
	assert.Equal(t, "Long run", updated.Name)
	assert.Equal(t, 45, updated.DurationMinutes)
	assert.Equal(t, 420, updated.CaloriesBurned)
	assert.Equal(t, domain.WorkoutTypeRunning, updated.Type)
}

// TestUpdateWorkoutInfoIndependentGuards pins that duration and calories
// each apply behind their own non-negativity check: a negative duration in
// the patch does not block a valid calories value.
func TestUpdateWorkoutInfoIndependentGuards(t *testing.T) {
	t.Parallel()
	svc, workoutStore, _ := newWorkoutServiceForTest()
	seeded := seedWorkout(t, workoutStore, uuid.New())

	negativeDuration := -10
	calories := 500
	patch := WorkoutPatch{
		DurationMinutes: &negativeDuration,
		CaloriesBurned:  &calories,
	}

	require.NoError(t, svc.UpdateWorkoutInfo(context.Background(), seeded.ID, patch))

	updated := workoutStore.Workouts[seeded.ID]
	assert.Equal(t, 45, updated.DurationMinutes, "negative duration must be skipped")
	assert.Equal(t, 500, updated.CaloriesBurned, "valid calories must still apply")
}

func TestUpdateWorkoutInfoClearsNotes(t *testing.T) {
	t.Parallel()
	svc, workoutStore, _ := newWorkoutServiceForTest()
	seeded := seedWorkout(t, workoutStore, uuid.New())

	// An explicit empty notes string clears the notes; a nil pointer would
	// leave them alone.
	empty := ""
	require.NoError(t, svc.UpdateWorkoutInfo(context.Background(), seeded.ID, WorkoutPatch{Notes: &empty}))
	assert.Empty(t, workoutStore.Workouts[seeded.ID].Notes)
}

func TestUpdateWorkoutInfoSkipsUnknownType(t *testing.T) {
	t.Parallel()
	svc, workoutStore, _ := newWorkoutServiceForTest()
	seeded := seedWorkout(t, workoutStore, uuid.New())

	unknown := domain.WorkoutType("parkour")
	require.NoError(t, svc.UpdateWorkoutInfo(context.Background(), seeded.ID, WorkoutPatch{Type: &unknown}))
	assert.Equal(t, domain.WorkoutTypeRunning, workoutStore.Workouts[seeded.ID].Type)
}

func TestUpdateWorkoutInfoNotFound(t *testing.T) {
	t.Parallel()
	svc, workoutStore, _ := newWorkoutServiceForTest()

	name := "x"
	err := svc.UpdateWorkoutInfo(context.Background(), uuid.New(), WorkoutPatch{Name: &name})
	assert.ErrorIs(t, err, store.ErrWorkoutNotFound)
	assert.Equal(t, 0, workoutStore.UpdateCallCount)
}

func TestDeleteWorkoutIsHard(t *testing.T) {
	t.Parallel()
	svc, workoutStore, _ := newWorkoutServiceForTest()
	seeded := seedWorkout(t, workoutStore, uuid.New())

	require.NoError(t, svc.DeleteWorkout(context.Background(), seeded.ID))

	// The record is gone; a later read fails not-found
	_, exists := workoutStore.Workouts[seeded.ID]
	assert.False(t, exists, "hard delete must remove the record")

	_, err := svc.GetWorkoutInfo(context.Background(), seeded.ID)
	assert.ErrorIs(t, err, store.ErrWorkoutNotFound)
}

func TestDeleteWorkoutNotFound(t *testing.T) {
	t.Parallel()
	svc, _, _ := newWorkoutServiceForTest()

	err := svc.DeleteWorkout(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrWorkoutNotFound)
}

func TestListWorkoutsForAccount(t *testing.T) {
	t.Parallel()
	svc, workoutStore, accountStore := newWorkoutServiceForTest()
	owner := seedAccount(t, accountStore, "janed", "jane@example.com")
	seedWorkout(t, workoutStore, owner.ID)
	seedWorkout(t, workoutStore, owner.ID)
	seedWorkout(t, workoutStore, uuid.New()) // someone else's

	workouts, err := svc.ListWorkoutsForAccount(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Len(t, workouts, 2)
}

func TestListWorkoutsForAccountEmpty(t *testing.T) {
	t.Parallel()
	svc, _, accountStore := newWorkoutServiceForTest()
	owner := seedAccount(t, accountStore, "janed", "jane@example.com")

	workouts, err := svc.ListWorkoutsForAccount(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.NotNil(t, workouts)
	assert.Empty(t, workouts)
}

func TestListWorkoutsForAccountOwnerNotFound(t *testing.T) {
	t.Parallel()
	svc, _, _ := newWorkoutServiceForTest()

	_, err := svc.ListWorkoutsForAccount(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrOwnerAccountNotFound)
}
