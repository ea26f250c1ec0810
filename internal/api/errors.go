package api

import (
	"errors"
	"net/http"

	"github.com/fitlog/fittrack-api/internal/api/shared"
	"github.com/fitlog/fittrack-api/internal/domain"
	"github.com/fitlog/fittrack-api/internal/service"
	"github.com/fitlog/fittrack-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	switch {
	// Not found errors
	case errors.Is(err, store.ErrAccountNotFound),
		errors.Is(err, store.ErrWorkoutNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrUsernameTaken),
		errors.Is(err, store.ErrEmailTaken),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, service.ErrOwnerAccountNotFound):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	// Validation failures carry field-level messages that are safe to expose
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}

	switch {
	// Not found errors
	case errors.Is(err, store.ErrAccountNotFound):
		return "Account not found"

	case errors.Is(err, store.ErrWorkoutNotFound):
		return "Workout not found"

	// Conflict errors
	case errors.Is(err, store.ErrUsernameTaken):
		return "Username already taken"

	case errors.Is(err, store.ErrEmailTaken):
		return "Email already registered"

	// Bad request errors
	case errors.Is(err, service.ErrOwnerAccountNotFound):
		return "Owning account not found"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return "Invalid request data"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps an error to a status code and safe message, then
// writes the response while logging the full error. A non-empty fallback
// message overrides the generic message for 5xx responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	statusCode := MapErrorToStatusCode(err)
	safeMessage := GetSafeErrorMessage(err)

	if fallback != "" && statusCode == http.StatusInternalServerError {
		safeMessage = fallback
	}

	shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
}
