package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hotspotpay/voucher-ledger/pkg/api"
	"github.com/hotspotpay/voucher-ledger/pkg/mapping"
	"github.com/hotspotpay/voucher-ledger/pkg/models"
	"github.com/hotspotpay/voucher-ledger/pkg/monitoring"
	"github.com/hotspotpay/voucher-ledger/pkg/payments"
	"github.com/shopspring/decimal"
)

// RequestWithdrawal handles a seller's request to pay out balance. Amount
// bounds are enforced here; the balance check at this point is advisory and
// re-run conditionally at approval.
func (h *ApiHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	var newWithdrawal api.NewWithdrawal
	if err := json.NewDecoder(r.Body).Decode(&newWithdrawal); err != nil {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "invalid request body")
		return
	}

	if newWithdrawal.SellerId == "" {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "seller_id is required")
		return
	}
	if !payments.Supported(newWithdrawal.PaymentMethod) {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "unsupported payment method")
		return
	}
	if newWithdrawal.Amount < h.Cfg.MinWithdrawalAmount {
		respondError(w, http.StatusUnprocessableEntity, api.KindBelowMinimum, "amount is below the withdrawal minimum")
		return
	}
	if newWithdrawal.Amount > h.Cfg.MaxWithdrawalAmount {
		respondError(w, http.StatusUnprocessableEntity, api.KindAboveMaximum, "amount is above the withdrawal maximum")
		return
	}

	domainWithdrawal := mapping.ToDomainNewWithdrawal(&newWithdrawal)

	createdWithdrawal, err := h.Store.CreateWithdrawal(r.Context(), domainWithdrawal)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	monitoring.Withdrawals.WithLabelValues("requested").Inc()
	respondSuccess(w, http.StatusCreated, mapping.ToApiWithdrawal(createdWithdrawal))
}

// GetWithdrawalById handles the logic for retrieving a withdrawal request.
func (h *ApiHandler) GetWithdrawalById(w http.ResponseWriter, r *http.Request) {
	withdrawalId := chi.URLParam(r, "withdrawalId")

	domainWithdrawal, err := h.Store.GetWithdrawal(r.Context(), withdrawalId)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, mapping.ToApiWithdrawal(domainWithdrawal))
}

// ListWithdrawalsBySellerId handles the logic for listing a seller's
// withdrawal requests, newest first. An optional ?status= query narrows by
// lifecycle state.
func (h *ApiHandler) ListWithdrawalsBySellerId(w http.ResponseWriter, r *http.Request) {
	sellerId := chi.URLParam(r, "sellerId")
	status := models.WithdrawalStatus(r.URL.Query().Get("status"))

	switch status {
	case "", models.WithdrawalPending, models.WithdrawalApproved, models.WithdrawalRejected, models.WithdrawalProcessed:
	default:
		respondError(w, http.StatusBadRequest, api.KindValidationError, "unknown status filter")
		return
	}

	domainWithdrawals, err := h.Store.ListWithdrawalsBySellerID(r.Context(), sellerId, status)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	apiWithdrawals := make([]*api.Withdrawal, len(domainWithdrawals))
	for i, withdrawal := range domainWithdrawals {
		apiWithdrawals[i] = mapping.ToApiWithdrawal(&withdrawal)
	}

	respondSuccess(w, http.StatusOK, apiWithdrawals)
}

// ListWithdrawals handles the admin review queue across all sellers. An
// optional ?status= query narrows by lifecycle state.
func (h *ApiHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	status := models.WithdrawalStatus(r.URL.Query().Get("status"))

	switch status {
	case "", models.WithdrawalPending, models.WithdrawalApproved, models.WithdrawalRejected, models.WithdrawalProcessed:
	default:
		respondError(w, http.StatusBadRequest, api.KindValidationError, "unknown status filter")
		return
	}

	domainWithdrawals, err := h.Store.ListWithdrawalsByStatus(r.Context(), status)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	apiWithdrawals := make([]*api.Withdrawal, len(domainWithdrawals))
	for i, withdrawal := range domainWithdrawals {
		apiWithdrawals[i] = mapping.ToApiWithdrawal(&withdrawal)
	}

	respondSuccess(w, http.StatusOK, apiWithdrawals)
}

// ApproveWithdrawal handles an admin approving a pending withdrawal. The
// approval and the balance debit commit atomically in the store.
func (h *ApiHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	withdrawalId := chi.URLParam(r, "withdrawalId")

	var review api.WithdrawalReview
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "invalid request body")
		return
	}

	approvedWithdrawal, err := h.Store.ApproveWithdrawal(r.Context(), withdrawalId, review.AdminNotes)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	monitoring.Withdrawals.WithLabelValues("approved").Inc()
	respondSuccess(w, http.StatusOK, mapping.ToApiWithdrawal(approvedWithdrawal))
}

// RejectWithdrawal handles an admin rejecting a pending withdrawal. A reason
// is mandatory; no balance changes.
func (h *ApiHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	withdrawalId := chi.URLParam(r, "withdrawalId")

	var review api.WithdrawalReview
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "invalid request body")
		return
	}
	if review.AdminNotes == "" {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "admin_notes is required when rejecting")
		return
	}

	rejectedWithdrawal, err := h.Store.RejectWithdrawal(r.Context(), withdrawalId, review.AdminNotes)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	monitoring.Withdrawals.WithLabelValues("rejected").Inc()
	respondSuccess(w, http.StatusOK, mapping.ToApiWithdrawal(rejectedWithdrawal))
}

// ProcessWithdrawal handles the final hand-off of an approved withdrawal to
// the payout provider.
func (h *ApiHandler) ProcessWithdrawal(w http.ResponseWriter, r *http.Request) {
	withdrawalId := chi.URLParam(r, "withdrawalId")

	withdrawal, err := h.Store.GetWithdrawal(r.Context(), withdrawalId)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	provider, err := h.Providers.Get(payments.Provider(withdrawal.PaymentMethod))
	if err != nil {
		respondError(w, http.StatusBadRequest, api.KindValidationError, err.Error())
		return
	}

	processedWithdrawal, err := h.Store.ProcessWithdrawal(r.Context(), withdrawalId)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	if _, err := provider.Payout(r.Context(), &payments.PayoutRequest{
		WithdrawalID:   processedWithdrawal.Id,
		Amount:         decimal.NewFromInt(processedWithdrawal.Amount),
		Currency:       h.Cfg.Currency,
		AccountDetails: processedWithdrawal.AccountDetails,
	}); err != nil {
		// The ledger already debited at approval; a failed hand-off is an
		// operational retry, not a state rollback.
		respondError(w, http.StatusBadGateway, api.KindInternalError, "payout provider unavailable")
		return
	}

	monitoring.Withdrawals.WithLabelValues("processed").Inc()
	respondSuccess(w, http.StatusOK, mapping.ToApiWithdrawal(processedWithdrawal))
}
