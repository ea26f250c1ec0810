package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Common request/response structures

// CreateAccountRequest defines the payload for the account creation endpoint.
type CreateAccountRequest struct {
	FullName     string           `json:"full_name"     validate:"required"`
	Username     string           `json:"username"      validate:"required,min=3,max=30"`
	Password     string           `json:"password"      validate:"required,min=8,max=72"`
	Email        string           `json:"email"         validate:"required,email"`
	Age          int              `json:"age"           validate:"gte=0"`
	Weight       *decimal.Decimal `json:"weight,omitempty"`
	Height       *decimal.Decimal `json:"height,omitempty"`
	MetricSystem bool             `json:"metric_system"`
}

// UpdateAccountRequest defines the payload for the account partial-update
// endpoint. Absent fields are left untouched.
type UpdateAccountRequest struct {
	Email        *string          `json:"email,omitempty"`
	Age          *int             `json:"age,omitempty"`
	Username     *string          `json:"username,omitempty"`
	Height       *decimal.Decimal `json:"height,omitempty"`
	Weight       *decimal.Decimal `json:"weight,omitempty"`
	Password     *string          `json:"password,omitempty"`
	MetricSystem *bool            `json:"metric_system,omitempty"`
}

// ChangeWeightRequest defines the payload for the weight change endpoint.
type ChangeWeightRequest struct {
	Weight decimal.Decimal `json:"weight"`
}

// ChangeHeightRequest defines the payload for the height change endpoint.
type ChangeHeightRequest struct {
	Height decimal.Decimal `json:"height"`
}

// ChangeMeasurementSystemRequest defines the payload for the measurement
// system change endpoint.
type ChangeMeasurementSystemRequest struct {
	MetricSystem bool `json:"metric_system"`
}

// AccountResponse defines the account representation returned to clients.
// Password material is never included. Weight and height are stored in
// kilograms and centimeters; the display fields render them in the
// account's preferred measurement system.
type AccountResponse struct {
	ID            string          `json:"id"`
	FullName      string          `json:"full_name"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	Age           int             `json:"age"`
	Weight        decimal.Decimal `json:"weight"`
	Height        decimal.Decimal `json:"height"`
	WeightDisplay string          `json:"weight_display"`
	HeightDisplay string          `json:"height_display"`
	MetricSystem  bool            `json:"metric_system"`
	Deleted       bool            `json:"deleted"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateWorkoutRequest defines the payload for the workout creation endpoint.
type CreateWorkoutRequest struct {
	AccountID       string    `json:"account_id"       validate:"required,uuid"`
	Name            string    `json:"name"             validate:"required"`
	Notes           string    `json:"notes"`
	DurationMinutes int       `json:"duration_minutes" validate:"gte=0"`
	Date            time.Time `json:"date"             validate:"required"`
	CaloriesBurned  int       `json:"calories_burned"  validate:"gte=0"`
	Type            string    `json:"type"             validate:"required"`
}

// UpdateWorkoutRequest defines the payload for the workout partial-update
// endpoint. Absent fields are left untouched; an explicit empty notes
// string clears the notes.
type UpdateWorkoutRequest struct {
	Name            *string    `json:"name,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	CaloriesBurned  *int       `json:"calories_burned,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	Type            *string    `json:"type,omitempty"`
}

// WorkoutResponse defines the workout representation returned to clients.
type WorkoutResponse struct {
	ID              string    `json:"id"`
	AccountID       string    `json:"account_id"`
	Name            string    `json:"name"`
	Notes           string    `json:"notes,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Date            time.Time `json:"date"`
	CaloriesBurned  int       `json:"calories_burned"`
	Type            string    `json:"type"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// WorkoutListResponse wraps a list of workouts for an account.
type WorkoutListResponse struct {
	Workouts []WorkoutResponse `json:"workouts"`
}
