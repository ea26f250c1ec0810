package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fitlog/fittrack-api/internal/api"
	apiMiddleware "github.com/fitlog/fittrack-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for error correlation

	// Create API handlers using the application's services
	accountHandler := api.NewAccountHandler(app.accountService, app.logger)
	workoutHandler := api.NewWorkoutHandler(app.workoutService, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Account endpoints
		r.Post("/accounts", accountHandler.CreateAccount)
		r.Get("/accounts/{id}", accountHandler.GetAccount)
		r.Patch("/accounts/{id}", accountHandler.UpdateAccount)
		r.Delete("/accounts/{id}", accountHandler.DeleteAccount)
		r.Put("/accounts/{id}/weight", accountHandler.ChangeWeight)
		r.Put("/accounts/{id}/height", accountHandler.ChangeHeight)
		r.Put("/accounts/{id}/measurement-system", accountHandler.ChangeMeasurementSystem)

		// Workout endpoints
		r.Post("/workouts", workoutHandler.CreateWorkout)
		r.Get("/workouts/{id}", workoutHandler.GetWorkout)
		r.Patch("/workouts/{id}", workoutHandler.UpdateWorkout)
		r.Delete("/workouts/{id}", workoutHandler.DeleteWorkout)
		r.Get("/accounts/{id}/workouts", workoutHandler.ListWorkouts)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
