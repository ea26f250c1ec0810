package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Parallel()

	weight := decimal.RequireFromString("82.55")
	height := decimal.RequireFromString("179.96")

	account, err := NewAccount(
		"Jane Doe", "JaneD", "secretpassword", "Jane.Doe@Example.COM",
		30, weight, height, true,
	)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, account.ID)

	// Name, username, and email are lowercase-normalized on creation
	assert.Equal(t, "jane doe", account.FullName)
	assert.Equal(t, "janed", account.Username)
	assert.Equal(t, "jane.doe@example.com", account.Email)

	assert.Equal(t, "secretpassword", account.Password)
	assert.Empty(t, account.HashedPassword)
	assert.Equal(t, 30, account.Age)

	// Measurements are rounded half-up to one decimal
	assert.True(t, account.Weight.Equal(decimal.RequireFromString("82.6")),
		"weight = %s", account.Weight)
	assert.True(t, account.Height.Equal(decimal.RequireFromString("180.0")),
		"height = %s", account.Height)

	assert.True(t, account.MetricSystem)
	assert.False(t, account.Deleted)
	assert.False(t, account.CreatedAt.IsZero())
	assert.False(t, account.UpdatedAt.IsZero())
}

func TestNewAccountValidation(t *testing.T) {
	t.Parallel()

	zero := decimal.Zero

	tests := []struct {
		name     string
		fullName string
		username string
		password string
		email    string
		age      int
		weight   decimal.Decimal
		height   decimal.Decimal
		wantErr  error
	}{
		{
			name:     "empty full name",
			username: "jane", password: "pw", email: "j@example.com",
			weight: zero, height: zero,
			wantErr: ErrEmptyFullName,
		},
		{
			name:     "empty username",
			fullName: "jane doe", password: "pw", email: "j@example.com",
			weight: zero, height: zero,
			wantErr: ErrEmptyUsername,
		},
		{
			name:     "empty email",
			fullName: "jane doe", username: "jane", password: "pw",
			weight: zero, height: zero,
			wantErr: ErrEmptyEmail,
		},
		{
			name:     "invalid email",
			fullName: "jane doe", username: "jane", password: "pw",
			email:  "not-an-email",
			weight: zero, height: zero,
			wantErr: ErrInvalidEmail,
		},
		{
			name:     "empty password",
			fullName: "jane doe", username: "jane", email: "j@example.com",
			weight: zero, height: zero,
			wantErr: ErrEmptyPassword,
		},
		{
			name:     "negative age",
			fullName: "jane doe", username: "jane", password: "pw",
			email: "j@example.com", age: -1,
			weight: zero, height: zero,
			wantErr: ErrNegativeAge,
		},
		{
			name:     "negative weight",
			fullName: "jane doe", username: "jane", password: "pw",
			email:  "j@example.com",
			weight: decimal.RequireFromString("-1"), height: zero,
			wantErr: ErrNegativeWeight,
		},
		{
			name:     "negative height",
			fullName: "jane doe", username: "jane", password: "pw",
			email:  "j@example.com",
			weight: zero, height: decimal.RequireFromString("-0.1"),
			wantErr: ErrNegativeHeight,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewAccount(
				tc.fullName, tc.username, tc.password, tc.email,
				tc.age, tc.weight, tc.height, true,
			)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAccountValidateHashedPasswordOnly(t *testing.T) {
	t.Parallel()

	// A stored account has no plaintext password; the hash alone satisfies
	// the password presence check.
	account := Account{
		ID:             uuid.New(),
		FullName:       "jane doe",
		Username:       "jane",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		Email:          "jane@example.com",
	}
	assert.NoError(t, account.Validate())
}

func TestNormalizeHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.Com "))
	assert.Equal(t, "janed", NormalizeUsername(" JaneD "))
}

func TestRoundMeasurement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "68.25", want: "68.3"},
		{in: "68.24", want: "68.2"},
		{in: "68", want: "68"},
		{in: "0", want: "0"},
	}
	for _, tc := range tests {
		got := RoundMeasurement(decimal.RequireFromString(tc.in))
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"RoundMeasurement(%s) = %s, want %s", tc.in, got, tc.want)
	}
}
