package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hotspotpay/voucher-ledger/pkg/api"
	"github.com/hotspotpay/voucher-ledger/pkg/models"
)

// CreateSellerProfile handles onboarding a new seller with a zero balance.
func (h *ApiHandler) CreateSellerProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.SellerProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "invalid request body")
		return
	}

	if profile.UserId == "" {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "user_id is required")
		return
	}
	if profile.CommissionRate < 0 || profile.CommissionRate >= 1 {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "commission_rate must be in [0, 1)")
		return
	}

	createdProfile, err := h.Store.CreateSellerProfile(r.Context(), &profile)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, createdProfile)
}

// GetSellerProfileById handles retrieving a seller profile with its balance.
func (h *ApiHandler) GetSellerProfileById(w http.ResponseWriter, r *http.Request) {
	sellerId := chi.URLParam(r, "sellerId")

	profile, err := h.Store.GetSellerProfile(r.Context(), sellerId)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, profile)
}
