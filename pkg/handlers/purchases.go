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
)

// CreatePurchase handles the logic for reserving a new purchase. The
// availability check here is advisory; inventory is only decremented at
// settlement.
func (h *ApiHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var newPurchase api.NewPurchase
	if err := json.NewDecoder(r.Body).Decode(&newPurchase); err != nil {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "invalid request body")
		return
	}

	if newPurchase.UserId == "" || newPurchase.TicketId == "" {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "user_id and ticket_id are required")
		return
	}
	if newPurchase.Quantity <= 0 {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "quantity must be positive")
		return
	}
	if !payments.Supported(newPurchase.PaymentMethod) {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "unsupported payment method")
		return
	}

	domainPurchase := mapping.ToDomainNewPurchase(&newPurchase)

	createdPurchase, err := h.Store.CreatePurchase(r.Context(), domainPurchase)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	monitoring.PurchasesCreated.WithLabelValues(createdPurchase.PaymentMethod).Inc()
	respondSuccess(w, http.StatusCreated, mapping.ToApiPurchase(createdPurchase))
}

// GetPurchaseById handles the logic for retrieving a purchase by its ID.
func (h *ApiHandler) GetPurchaseById(w http.ResponseWriter, r *http.Request) {
	purchaseId := chi.URLParam(r, "purchaseId")

	domainPurchase, err := h.Store.GetPurchase(r.Context(), purchaseId)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, mapping.ToApiPurchase(domainPurchase))
}

// ListPurchasesByUserId handles the logic for listing a user's purchases,
// newest first. An optional ?status= query narrows by lifecycle state.
func (h *ApiHandler) ListPurchasesByUserId(w http.ResponseWriter, r *http.Request) {
	userId := chi.URLParam(r, "userId")
	status := models.PurchaseStatus(r.URL.Query().Get("status"))

	switch status {
	case "", models.PurchasePending, models.PurchaseCompleted, models.PurchaseCancelled, models.PurchaseExpired:
	default:
		respondError(w, http.StatusBadRequest, api.KindValidationError, "unknown status filter")
		return
	}

	domainPurchases, err := h.Store.ListPurchasesByUserID(r.Context(), userId, status)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	apiPurchases := make([]*api.Purchase, len(domainPurchases))
	for i, purchase := range domainPurchases {
		apiPurchases[i] = mapping.ToApiPurchase(&purchase)
	}

	respondSuccess(w, http.StatusOK, apiPurchases)
}

// ConfirmPurchase handles a manual settlement request. The normal path is the
// settlement worker; this endpoint exists for operators resolving payments
// verified out of band. Confirmation is idempotent.
func (h *ApiHandler) ConfirmPurchase(w http.ResponseWriter, r *http.Request) {
	purchaseId := chi.URLParam(r, "purchaseId")

	confirmedPurchase, settled, err := h.Store.ConfirmPurchase(r.Context(), purchaseId)
	if err != nil {
		monitoring.Settlements.WithLabelValues(monitoring.OutcomeFailed).Inc()
		respondStoreError(w, err)
		return
	}

	if settled {
		monitoring.Settlements.WithLabelValues(monitoring.OutcomeSettled).Inc()
	} else {
		monitoring.Settlements.WithLabelValues(monitoring.OutcomeDuplicate).Inc()
	}

	respondSuccess(w, http.StatusOK, mapping.ToApiPurchase(confirmedPurchase))
}

// CancelPurchase handles the logic for cancelling a pending purchase. Nothing
// is reversed because pending purchases hold no inventory or funds.
func (h *ApiHandler) CancelPurchase(w http.ResponseWriter, r *http.Request) {
	purchaseId := chi.URLParam(r, "purchaseId")

	if err := h.Store.CancelPurchase(r.Context(), purchaseId); err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, nil)
}
