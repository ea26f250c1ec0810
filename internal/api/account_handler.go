package api

import (
	"log/slog"
	"net/http"

	"github.com/fitlog/fittrack-api/internal/api/shared"
	"github.com/fitlog/fittrack-api/internal/domain"
	"github.com/fitlog/fittrack-api/internal/domain/units"
	"github.com/fitlog/fittrack-api/internal/platform/logger"
	"github.com/fitlog/fittrack-api/internal/service"
)

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService service.AccountService, logger *slog.Logger) *AccountHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AccountHandler")
	}

	return &AccountHandler{
		accountService: accountService,
		logger:         logger.With(slog.String("component", "account_handler")),
	}
}

// CreateAccount handles POST /accounts requests.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateAccountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	account, err := h.accountService.CreateAccount(r.Context(), service.CreateAccountRequest{
		FullName:     req.FullName,
		Username:     req.Username,
		Password:     req.Password,
		Email:        req.Email,
		Age:          req.Age,
		Weight:       req.Weight,
		Height:       req.Height,
		MetricSystem: req.MetricSystem,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create account")
		return
	}

	log.Debug("account created", slog.String("account_id", account.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, accountToResponse(account))
}

// GetAccount handles GET /accounts/{id} requests. Soft-deleted accounts
// are still returned, with their deleted flag set.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	account, err := h.accountService.GetAccountInfo(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get account")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, accountToResponse(account))
}

// UpdateAccount handles PATCH /accounts/{id} requests. Only the fields
// present in the request body are touched.
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateAccountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	patch := service.AccountPatch{
		Email:        req.Email,
		Age:          req.Age,
		Username:     req.Username,
		Height:       req.Height,
		Weight:       req.Weight,
		Password:     req.Password,
		MetricSystem: req.MetricSystem,
	}

	if err := h.accountService.UpdateAccountInfo(r.Context(), id, patch); err != nil {
		HandleAPIError(w, r, err, "Failed to update account")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAccount handles DELETE /accounts/{id} requests. The account is
// soft-deleted and remains retrievable.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.accountService.DeleteAccount(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete account")
		return
	}

	log.Debug("account soft-deleted", slog.String("account_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// ChangeWeight handles PUT /accounts/{id}/weight requests.
func (h *AccountHandler) ChangeWeight(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req ChangeWeightRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.accountService.ChangeWeight(r.Context(), id, req.Weight); err != nil {
		HandleAPIError(w, r, err, "Failed to change weight")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChangeHeight handles PUT /accounts/{id}/height requests.
func (h *AccountHandler) ChangeHeight(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req ChangeHeightRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.accountService.ChangeHeight(r.Context(), id, req.Height); err != nil {
		HandleAPIError(w, r, err, "Failed to change height")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChangeMeasurementSystem handles PUT /accounts/{id}/measurement-system
// requests.
func (h *AccountHandler) ChangeMeasurementSystem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req ChangeMeasurementSystemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.accountService.ChangeMeasurementSystem(r.Context(), id, req.MetricSystem); err != nil {
		HandleAPIError(w, r, err, "Failed to change measurement system")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// accountToResponse transforms a domain account into its API representation.
// Stored values are metric; imperial accounts get their display fields
// converted to pounds and feet-and-inches.
func accountToResponse(account *domain.Account) AccountResponse {
	resp := AccountResponse{
		ID:           account.ID.String(),
		FullName:     account.FullName,
		Username:     account.Username,
		Email:        account.Email,
		Age:          account.Age,
		Weight:       account.Weight,
		Height:       account.Height,
		MetricSystem: account.MetricSystem,
		Deleted:      account.Deleted,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}

	if account.MetricSystem {
		resp.WeightDisplay = account.Weight.String() + " kg"
		resp.HeightDisplay = account.Height.String() + " cm"
		return resp
	}

	if pounds, err := units.KilogramsToPounds(account.Weight); err == nil {
		resp.WeightDisplay = pounds.String() + " lb"
	} else {
		resp.WeightDisplay = account.Weight.String() + " kg"
	}
	resp.HeightDisplay = units.InchesToFeetAndInches(units.CentimetersToInches(account.Height))

	return resp
}
