// Package handlers implements the HTTP surface of the voucher ledger. Every
// handler decodes the wire type, calls the storage layer and maps sentinel
// errors to the error envelope; no business rules live here beyond request
// validation.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hotspotpay/voucher-ledger/pkg/api"
	"github.com/hotspotpay/voucher-ledger/pkg/config"
	"github.com/hotspotpay/voucher-ledger/pkg/payments"
	"github.com/hotspotpay/voucher-ledger/pkg/storage"
)

// ApiHandler holds our application's dependencies, including the storage
// layer, configuration and the payment provider registry.
type ApiHandler struct {
	Store     storage.Storage
	Cfg       *config.Config
	Providers *payments.Registry
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(store storage.Storage, cfg *config.Config, providers *payments.Registry) *ApiHandler {
	return &ApiHandler{Store: store, Cfg: cfg, Providers: providers}
}

// respondJSON writes v as the JSON response body.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// respondSuccess wraps v in the success envelope and writes it. Every 2xx
// response goes through here so callers can always switch on the success flag.
func respondSuccess(w http.ResponseWriter, status int, v any) {
	respondJSON(w, status, api.SuccessResponse{Success: true, Data: v})
}

// respondError writes the error envelope.
func respondError(w http.ResponseWriter, status int, kind, message string) {
	respondJSON(w, status, api.ErrorResponse{Success: false, Error: kind, Message: message})
}

// respondStoreError maps storage sentinel errors onto the error taxonomy.
// Anything unrecognized is reported as an internal error without leaking the
// underlying message.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrTicketNotFound),
		errors.Is(err, storage.ErrPurchaseNotFound),
		errors.Is(err, storage.ErrTransactionNotFound),
		errors.Is(err, storage.ErrSellerNotFound),
		errors.Is(err, storage.ErrWithdrawalNotFound):
		respondError(w, http.StatusNotFound, api.KindNotFound, err.Error())
	case errors.Is(err, storage.ErrInsufficientInventory):
		respondError(w, http.StatusConflict, api.KindInsufficientInventory, err.Error())
	case errors.Is(err, storage.ErrInsufficientBalance):
		respondError(w, http.StatusUnprocessableEntity, api.KindInsufficientBalance, err.Error())
	case errors.Is(err, storage.ErrAlreadyPaid):
		respondError(w, http.StatusConflict, api.KindDuplicateOperation, err.Error())
	case errors.Is(err, storage.ErrInvalidState),
		errors.Is(err, storage.ErrTicketInactive),
		errors.Is(err, storage.ErrActiveReservationsExist):
		respondError(w, http.StatusConflict, api.KindInvalidState, err.Error())
	case errors.Is(err, storage.ErrAmountMismatch):
		respondError(w, http.StatusBadRequest, api.KindValidationError, err.Error())
	case errors.Is(err, storage.ErrCodeGenerationExhausted):
		respondError(w, http.StatusInternalServerError, api.KindCodeGenerationExhausted, err.Error())
	default:
		slog.Error("unexpected storage error", "error", err)
		respondError(w, http.StatusInternalServerError, api.KindInternalError, "internal error")
	}
}
