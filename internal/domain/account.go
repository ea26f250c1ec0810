package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Common validation errors for Account fields.
var (
	ErrEmptyAccountID = errors.New("account ID cannot be empty")
	ErrEmptyFullName  = errors.New("full name must not be empty or null")
	ErrEmptyUsername  = errors.New("username must not be empty or null")
	ErrEmptyPassword  = errors.New("password must not be empty or null")
	ErrEmptyEmail     = errors.New("email must not be empty or null")
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrNegativeAge    = errors.New("age must be greater than or equal to 0")
	ErrNegativeWeight = errors.New("weight must be greater than or equal to 0")
	ErrNegativeHeight = errors.New("height must be greater than or equal to 0")
)

// MeasurementScale is the number of fractional digits retained for stored
// weight and height values. Every write path normalizes to this scale.
const MeasurementScale = 1

// fieldValidator backs email syntax checks. validator.Validate is safe for
// concurrent use, so a single package-level instance is enough.
var fieldValidator = validator.New()

// Account represents a registered user of the fitness tracker.
// Weight and height are stored at a fixed one-decimal scale regardless of
// the account's measurement system preference.
type Account struct {
	ID             uuid.UUID       `json:"id"`
	FullName       string          `json:"full_name"`
	Username       string          `json:"username"`
	Password       string          `json:"-"` // Plaintext password, only populated transiently before hashing
	HashedPassword string          `json:"-"` // Never expose the password hash in JSON
	Email          string          `json:"email"`
	Age            int             `json:"age"`
	Weight         decimal.Decimal `json:"weight"`
	Height         decimal.Decimal `json:"height"`
	MetricSystem   bool            `json:"metric_system"`
	Deleted        bool            `json:"deleted"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewAccount creates an Account from registration input. It generates the
// account ID, lowercases full name, username and email, rounds weight and
// height to the storage scale, and sets the creation timestamps.
//
// NOTE: the plaintext password is carried on the Password field only until
// the caller hashes it; the account must never be persisted without a
// HashedPassword.
func NewAccount(
	fullName, username, password, email string,
	age int,
	weight, height decimal.Decimal,
	metricSystem bool,
) (*Account, error) {
	now := time.Now().UTC()
	account := &Account{
		ID:           uuid.New(),
		FullName:     strings.ToLower(strings.TrimSpace(fullName)),
		Username:     strings.ToLower(strings.TrimSpace(username)),
		Password:     password,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Age:          age,
		Weight:       RoundMeasurement(weight),
		Height:       RoundMeasurement(height),
		MetricSystem: metricSystem,
		Deleted:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks that the Account holds valid data.
// Returns the first sentinel error that applies.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAccountID
	}
	if a.FullName == "" {
		return ErrEmptyFullName
	}
	if a.Username == "" {
		return ErrEmptyUsername
	}
	if a.Email == "" {
		return ErrEmptyEmail
	}
	if err := fieldValidator.Var(a.Email, "email"); err != nil {
		return ErrInvalidEmail
	}
	if a.Password == "" && a.HashedPassword == "" {
		return ErrEmptyPassword
	}
	if a.Age < 0 {
		return ErrNegativeAge
	}
	if a.Weight.IsNegative() {
		return ErrNegativeWeight
	}
	if a.Height.IsNegative() {
		return ErrNegativeHeight
	}
	return nil
}

// NormalizeEmail lowercases and trims an email address the way every
// account write path stores it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeUsername lowercases and trims a username the way every account
// write path stores it.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// RoundMeasurement rounds a weight or height value half-up to the fixed
// storage scale. Conversions and updates are lossy by design; a value that
// has been through RoundMeasurement does not round-trip to its source.
func RoundMeasurement(d decimal.Decimal) decimal.Decimal {
	return d.Round(MeasurementScale)
}
