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
	"github.com/hotspotpay/voucher-ledger/pkg/storage"
	"github.com/shopspring/decimal"
)

// InitiatePayment handles the logic for starting a payment attempt against a
// pending purchase. The provider is called after the transaction record is
// written, never inside a store write, so a provider outage leaves a PENDING
// attempt that simply never receives a webhook.
func (h *ApiHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req api.InitiatePayment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "invalid request body")
		return
	}

	if req.PurchaseId == "" || req.PhoneNumber == "" {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "purchase_id and phone_number are required")
		return
	}

	purchase, err := h.Store.GetPurchase(r.Context(), req.PurchaseId)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	switch purchase.Status {
	case models.PurchasePending:
	case models.PurchaseCompleted:
		respondStoreError(w, storage.ErrAlreadyPaid)
		return
	default:
		respondStoreError(w, storage.ErrInvalidState)
		return
	}

	provider, err := h.Providers.Get(payments.Provider(purchase.PaymentMethod))
	if err != nil {
		respondError(w, http.StatusBadRequest, api.KindValidationError, err.Error())
		return
	}

	domainTx := &models.Transaction{
		PurchaseId: purchase.Id,
		UserId:     purchase.UserId,
		Amount:     purchase.TotalAmount,
	}

	createdTx, err := h.Store.CreateTransaction(r.Context(), domainTx)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	providerRef, err := provider.Collect(r.Context(), &payments.CollectRequest{
		TransactionID: createdTx.Id,
		Amount:        decimal.NewFromInt(createdTx.Amount),
		Currency:      h.Cfg.Currency,
		PhoneNumber:   req.PhoneNumber,
		Description:   "WiFi voucher purchase " + purchase.Id,
	})
	if err != nil {
		respondError(w, http.StatusBadGateway, api.KindInternalError, "payment provider unavailable")
		return
	}

	// The authoritative reference is persisted by the webhook; this one is
	// only echoed back so the client can track the collection prompt.
	createdTx.ProviderRef = providerRef

	respondSuccess(w, http.StatusCreated, mapping.ToApiTransaction(createdTx))
}

// PaymentWebhook handles the asynchronous outcome callback from a payment
// provider. Redelivered webhooks with the same outcome are acknowledged
// without effect; a conflicting outcome is rejected.
func (h *ApiHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	providerName := chi.URLParam(r, "provider")

	var payload api.WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		monitoring.WebhookDeliveries.WithLabelValues(providerName, "malformed").Inc()
		respondError(w, http.StatusBadRequest, api.KindValidationError, "invalid webhook payload")
		return
	}

	if payload.TransactionId == "" {
		monitoring.WebhookDeliveries.WithLabelValues(providerName, "malformed").Inc()
		respondError(w, http.StatusBadRequest, api.KindValidationError, "transactionId is required")
		return
	}

	var outcome models.WebhookOutcome
	switch payload.Status {
	case string(models.WebhookSuccess):
		outcome = models.WebhookSuccess
	case string(models.WebhookFailure):
		outcome = models.WebhookFailure
	default:
		monitoring.WebhookDeliveries.WithLabelValues(providerName, "malformed").Inc()
		respondError(w, http.StatusBadRequest, api.KindValidationError, "status must be SUCCESS or FAILURE")
		return
	}

	result, err := h.Store.RecordWebhook(r.Context(), payload.TransactionId, outcome, payload.Reference, payload.Amount)
	if err != nil {
		monitoring.WebhookDeliveries.WithLabelValues(providerName, "rejected").Inc()
		respondStoreError(w, err)
		return
	}

	if result.Settled {
		monitoring.WebhookDeliveries.WithLabelValues(providerName, "applied").Inc()
	} else {
		monitoring.WebhookDeliveries.WithLabelValues(providerName, "duplicate").Inc()
	}

	respondSuccess(w, http.StatusOK, mapping.ToApiTransaction(result.Transaction))
}

// GetTransactionById handles the logic for polling a payment attempt's status.
func (h *ApiHandler) GetTransactionById(w http.ResponseWriter, r *http.Request) {
	transactionId := chi.URLParam(r, "transactionId")

	domainTx, err := h.Store.GetTransaction(r.Context(), transactionId)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, mapping.ToApiTransaction(domainTx))
}

// ListTransactionsByUserId handles the logic for a user's payment history,
// newest first.
func (h *ApiHandler) ListTransactionsByUserId(w http.ResponseWriter, r *http.Request) {
	userId := chi.URLParam(r, "userId")

	domainTxs, err := h.Store.ListTransactionsByUserID(r.Context(), userId)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	apiTxs := make([]*api.Transaction, len(domainTxs))
	for i, tx := range domainTxs {
		apiTxs[i] = mapping.ToApiTransaction(&tx)
	}

	respondSuccess(w, http.StatusOK, apiTxs)
}
