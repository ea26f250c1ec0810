package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlog/fittrack-api/internal/domain"
	"github.com/fitlog/fittrack-api/internal/service"
	"github.com/fitlog/fittrack-api/internal/store"
)

// mockAccountService is a mock implementation of the AccountService interface
type mockAccountService struct {
	createFn       func(ctx context.Context, req service.CreateAccountRequest) (*domain.Account, error)
	getFn          func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	updateFn       func(ctx context.Context, id uuid.UUID, patch service.AccountPatch) error
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	changeSystemFn func(ctx context.Context, id uuid.UUID, metric bool) error
	changeWeightFn func(ctx context.Context, id uuid.UUID, weight decimal.Decimal) error
	changeHeightFn func(ctx context.Context, id uuid.UUID, height decimal.Decimal) error
}

func (m *mockAccountService) CreateAccount(
	ctx context.Context,
	req service.CreateAccountRequest,
) (*domain.Account, error) {
	return m.createFn(ctx, req)
}

func (m *mockAccountService) GetAccountInfo(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return m.getFn(ctx, id)
}

func (m *mockAccountService) UpdateAccountInfo(
	ctx context.Context,
	id uuid.UUID,
	patch service.AccountPatch,
) error {
	return m.updateFn(ctx, id, patch)
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockAccountService) ChangeMeasurementSystem(ctx context.Context, id uuid.UUID, metric bool) error {
	return m.changeSystemFn(ctx, id, metric)
}

func (m *mockAccountService) ChangeWeight(ctx context.Context, id uuid.UUID, weight decimal.Decimal) error {
	return m.changeWeightFn(ctx, id, weight)
}

func (m *mockAccountService) ChangeHeight(ctx context.Context, id uuid.UUID, height decimal.Decimal) error {
	return m.changeHeightFn(ctx, id, height)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRequestWithID builds a request carrying a chi route parameter named "id".
func newRequestWithID(t *testing.T, method, target, id string, body []byte) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func sampleAccount(metric bool) *domain.Account {
	return &domain.Account{
		ID:             uuid.New(),
		FullName:       "jane doe",
		Username:       "janedoe",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		Email:          "jane@example.com",
		Age:            30,
		Weight:         decimal.RequireFromString("70.5"),
		Height:         decimal.RequireFromString("175"),
		MetricSystem:   metric,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
}

func TestCreateAccountHandler(t *testing.T) {
	account := sampleAccount(true)

	tests := []struct {
		name           string
		body           string
		serviceResult  *domain.Account
		serviceError   error
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"full_name":"Jane Doe","username":"janedoe","password":"secretpassword",` +
				`"email":"jane@example.com","age":30,"metric_system":true}`,
			serviceResult:  account,
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Password Too Short",
			body: `{"full_name":"Jane Doe","username":"janedoe","password":"short",` +
				`"email":"jane@example.com","age":30}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid Email",
			body: `{"full_name":"Jane Doe","username":"janedoe","password":"secretpassword",` +
				`"email":"not-an-email","age":30}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed JSON",
			body:           `{"full_name":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Username Conflict",
			body: `{"full_name":"Jane Doe","username":"janedoe","password":"secretpassword",` +
				`"email":"jane@example.com","age":30}`,
			serviceError:   store.ErrUsernameTaken,
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Email Conflict",
			body: `{"full_name":"Jane Doe","username":"janedoe","password":"secretpassword",` +
				`"email":"jane@example.com","age":30}`,
			serviceError:   store.ErrEmailTaken,
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &mockAccountService{
				createFn: func(ctx context.Context, req service.CreateAccountRequest) (*domain.Account, error) {
					return tc.serviceResult, tc.serviceError
				},
			}
			handler := NewAccountHandler(mockService, discardLogger())

			req := httptest.NewRequest(http.MethodPost, "/api/accounts", bytes.NewReader([]byte(tc.body)))
			rr := httptest.NewRecorder()
			handler.CreateAccount(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp AccountResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, account.ID.String(), resp.ID)
				assert.Equal(t, "janedoe", resp.Username)
				assert.Equal(t, "jane@example.com", resp.Email)
				assert.NotContains(t, rr.Body.String(), "password")
			}
		})
	}
}

func TestGetAccountHandler(t *testing.T) {
	t.Run("metric account uses metric display", func(t *testing.T) {
		account := sampleAccount(true)
		mockService := &mockAccountService{
			getFn: func(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
				assert.Equal(t, account.ID, id)
				return account, nil
			},
		}
		handler := NewAccountHandler(mockService, discardLogger())

		req := newRequestWithID(t, http.MethodGet, "/api/accounts/"+account.ID.String(), account.ID.String(), nil)
		rr := httptest.NewRecorder()
		handler.GetAccount(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp AccountResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "70.5 kg", resp.WeightDisplay)
		assert.Equal(t, "175 cm", resp.HeightDisplay)
		assert.True(t, resp.MetricSystem)
	})

	t.Run("imperial account converts display fields", func(t *testing.T) {
		account := sampleAccount(false)
		mockService := &mockAccountService{
			getFn: func(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
				return account, nil
			},
		}
		handler := NewAccountHandler(mockService, discardLogger())

		req := newRequestWithID(t, http.MethodGet, "/api/accounts/"+account.ID.String(), account.ID.String(), nil)
		rr := httptest.NewRecorder()
		handler.GetAccount(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp AccountResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		// Stored values stay metric; only the display changes.
		assert.True(t, resp.Weight.Equal(decimal.RequireFromString("70.5")))
		assert.Equal(t, "155.4 lb", resp.WeightDisplay)
		assert.Equal(t, "5 ft. 9 in.", resp.HeightDisplay)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		mockService := &mockAccountService{
			getFn: func(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
				return nil, store.ErrAccountNotFound
			},
		}
		handler := NewAccountHandler(mockService, discardLogger())

		id := uuid.New().String()
		req := newRequestWithID(t, http.MethodGet, "/api/accounts/"+id, id, nil)
		rr := httptest.NewRecorder()
		handler.GetAccount(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid id maps to 400", func(t *testing.T) {
		mockService := &mockAccountService{
			getFn: func(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
				t.Fatal("service should not be called for an invalid id")
				return nil, nil
			},
		}
		handler := NewAccountHandler(mockService, discardLogger())

		req := newRequestWithID(t, http.MethodGet, "/api/accounts/not-a-uuid", "not-a-uuid", nil)
		rr := httptest.NewRecorder()
		handler.GetAccount(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateAccountHandler(t *testing.T) {
	accountID := uuid.New()

	t.Run("patch forwards only present fields", func(t *testing.T) {
		var gotPatch service.AccountPatch
		mockService := &mockAccountService{
			updateFn: func(ctx context.Context, id uuid.UUID, patch service.AccountPatch) error {
				assert.Equal(t, accountID, id)
				gotPatch = patch
				return nil
			},
		}
		handler := NewAccountHandler(mockService, discardLogger())

		body := []byte(`{"email":"new@example.com","age":31}`)
		req := newRequestWithID(
			t,
			http.MethodPatch,
			"/api/accounts/"+accountID.String(),
			accountID.String(),
			body,
		)
		rr := httptest.NewRecorder()
		handler.UpdateAccount(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		require.NotNil(t, gotPatch.Email)
		assert.Equal(t, "new@example.com", *gotPatch.Email)
		require.NotNil(t, gotPatch.Age)
		assert.Equal(t, 31, *gotPatch.Age)
		assert.Nil(t, gotPatch.Username)
		assert.Nil(t, gotPatch.Password)
		assert.Nil(t, gotPatch.Weight)
	})

	t.Run("unknown account maps to 404", func(t *testing.T) {
		mockService := &mockAccountService{
			updateFn: func(ctx context.Context, id uuid.UUID, patch service.AccountPatch) error {
				return store.ErrAccountNotFound
			},
		}
		handler := NewAccountHandler(mockService, discardLogger())

		req := newRequestWithID(
			t,
			http.MethodPatch,
			"/api/accounts/"+accountID.String(),
			accountID.String(),
			[]byte(`{"age":31}`),
		)
		rr := httptest.NewRecorder()
		handler.UpdateAccount(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteAccountHandler(t *testing.T) {
	accountID := uuid.New()

	t.Run("success returns 204", func(t *testing.T) {
		deleted := false
		mockService := &mockAccountService{
			deleteFn: func(ctx context.Context, id uuid.UUID) error {
				assert.Equal(t, accountID, id)
				deleted = true
				return nil
			},
		}
		handler := NewAccountHandler(mockService, discardLogger())

		req := newRequestWithID(
			t,
			http.MethodDelete,
			"/api/accounts/"+accountID.String(),
			accountID.String(),
			nil,
		)
		rr := httptest.NewRecorder()
		handler.DeleteAccount(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.True(t, deleted)
	})

	t.Run("unknown account maps to 404", func(t *testing.T) {
		mockService := &mockAccountService{
			deleteFn: func(ctx context.Context, id uuid.UUID) error {
				return store.ErrAccountNotFound
			},
		}
		handler := NewAccountHandler(mockService, discardLogger())

		req := newRequestWithID(
			t,
			http.MethodDelete,
			"/api/accounts/"+accountID.String(),
			accountID.String(),
			nil,
		)
		rr := httptest.NewRecorder()
		handler.DeleteAccount(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestChangeWeightHandler(t *testing.T) {
	accountID := uuid.New()

	t.Run("success returns 204", func(t *testing.T) {
		mockService := &mockAccountService{
			changeWeightFn: func(ctx context.Context, id uuid.UUID, weight decimal.Decimal) error {
				assert.True(t, weight.Equal(decimal.RequireFromString("82.5")))
				return nil
			},
		}
		handler := NewAccountHandler(mockService, discardLogger())

		req := newRequestWithID(
			t,
			http.MethodPut,
			"/api/accounts/"+accountID.String()+"/weight",
			accountID.String(),
			[]byte(`{"weight":"82.5"}`),
		)
		rr := httptest.NewRecorder()
		handler.ChangeWeight(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("negative weight maps to 400", func(t *testing.T) {
		mockService := &mockAccountService{
			changeWeightFn: func(ctx context.Context, id uuid.UUID, weight decimal.Decimal) error {
				return domain.NewValidationError("weight", "cannot be negative", domain.ErrNegativeWeight)
			},
		}
		handler := NewAccountHandler(mockService, discardLogger())

		req := newRequestWithID(
			t,
			http.MethodPut,
			"/api/accounts/"+accountID.String()+"/weight",
			accountID.String(),
			[]byte(`{"weight":"-1"}`),
		)
		rr := httptest.NewRecorder()
		handler.ChangeWeight(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestChangeMeasurementSystemHandler(t *testing.T) {
	accountID := uuid.New()

	mockService := &mockAccountService{
		changeSystemFn: func(ctx context.Context, id uuid.UUID, metric bool) error {
			assert.False(t, metric)
			return nil
		},
	}
	handler := NewAccountHandler(mockService, discardLogger())

	req := newRequestWithID(
		t,
		http.MethodPut,
		"/api/accounts/"+accountID.String()+"/measurement-system",
		accountID.String(),
		[]byte(`{"metric_system":false}`),
	)
	rr := httptest.NewRecorder()
	handler.ChangeMeasurementSystem(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
