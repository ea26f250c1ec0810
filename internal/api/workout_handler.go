package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/fitlog/fittrack-api/internal/api/shared"
	"github.com/fitlog/fittrack-api/internal/domain"
	"github.com/fitlog/fittrack-api/internal/platform/logger"
	"github.com/fitlog/fittrack-api/internal/service"
)

// WorkoutHandler handles workout-related HTTP requests.
type WorkoutHandler struct {
	workoutService service.WorkoutService
	logger         *slog.Logger
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService, logger *slog.Logger) *WorkoutHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for WorkoutHandler")
	}

	return &WorkoutHandler{
		workoutService: workoutService,
		logger:         logger.With(slog.String("component", "workout_handler")),
	}
}

// CreateWorkout handles POST /workouts requests.
func (h *WorkoutHandler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateWorkoutRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid account ID format")
		return
	}

	workout, err := h.workoutService.CreateWorkout(r.Context(), service.CreateWorkoutRequest{
		AccountID:       accountID,
		Name:            req.Name,
		Notes:           req.Notes,
		DurationMinutes: req.DurationMinutes,
		Date:            req.Date,
		CaloriesBurned:  req.CaloriesBurned,
		Type:            domain.WorkoutType(req.Type),
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create workout")
		return
	}

	log.Debug("workout created",
		slog.String("workout_id", workout.ID.String()),
		slog.String("account_id", workout.AccountID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, workoutToResponse(workout))
}

// GetWorkout handles GET /workouts/{id} requests.
func (h *WorkoutHandler) GetWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	workout, err := h.workoutService.GetWorkoutInfo(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get workout")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, workoutToResponse(workout))
}

// UpdateWorkout handles PATCH /workouts/{id} requests. Only the fields
// present in the request body are touched.
func (h *WorkoutHandler) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateWorkoutRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	patch := service.WorkoutPatch{
		Name:            req.Name,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		Notes:           req.Notes,
	}
	if req.Type != nil {
		workoutType := domain.WorkoutType(*req.Type)
		patch.Type = &workoutType
	}

	if err := h.workoutService.UpdateWorkoutInfo(r.Context(), id, patch); err != nil {
		HandleAPIError(w, r, err, "Failed to update workout")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteWorkout handles DELETE /workouts/{id} requests. Workouts are
// hard-deleted; the record is physically removed.
func (h *WorkoutHandler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.workoutService.DeleteWorkout(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete workout")
		return
	}

	log.Debug("workout deleted", slog.String("workout_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// ListWorkouts handles GET /accounts/{id}/workouts requests. The owning
// account must exist; an account with no workouts yields an empty list.
func (h *WorkoutHandler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	accountID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	workouts, err := h.workoutService.ListWorkoutsForAccount(r.Context(), accountID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list workouts")
		return
	}

	resp := WorkoutListResponse{Workouts: make([]WorkoutResponse, 0, len(workouts))}
	for i := range workouts {
		resp.Workouts = append(resp.Workouts, workoutToResponse(&workouts[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// workoutToResponse transforms a domain workout into its API representation.
func workoutToResponse(workout *domain.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:              workout.ID.String(),
		AccountID:       workout.AccountID.String(),
		Name:            workout.Name,
		Notes:           workout.Notes,
		DurationMinutes: workout.DurationMinutes,
		Date:            workout.Date,
		CaloriesBurned:  workout.CaloriesBurned,
		Type:            string(workout.Type),
		CreatedAt:       workout.CreatedAt,
		UpdatedAt:       workout.UpdatedAt,
	}
}
