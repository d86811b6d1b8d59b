package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hotspotpay/voucher-ledger/pkg/api"
	"github.com/hotspotpay/voucher-ledger/pkg/mapping"
	"github.com/hotspotpay/voucher-ledger/pkg/ticketcode"
)

// CreateTicket handles the logic for publishing a new catalog ticket.
func (h *ApiHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var newTicket api.NewTicket
	if err := json.NewDecoder(r.Body).Decode(&newTicket); err != nil {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "invalid request body")
		return
	}

	if newTicket.SellerId == "" || newTicket.Name == "" {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "seller_id and name are required")
		return
	}
	if newTicket.Price <= 0 || newTicket.Quantity <= 0 || newTicket.DurationMinutes <= 0 {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "price, quantity and duration_minutes must be positive")
		return
	}

	domainTicket := mapping.ToDomainNewTicket(&newTicket)

	createdTicket, err := h.Store.CreateTicket(r.Context(), domainTicket)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, mapping.ToApiTicket(createdTicket))
}

// ListTickets handles the logic for listing the sellable catalog.
func (h *ApiHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	domainTickets, err := h.Store.ListActiveTickets(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}

	apiTickets := make([]*api.Ticket, len(domainTickets))
	for i, ticket := range domainTickets {
		apiTickets[i] = mapping.ToApiTicket(&ticket)
	}

	respondSuccess(w, http.StatusOK, apiTickets)
}

// GetTicketById handles the logic for retrieving a single catalog ticket.
func (h *ApiHandler) GetTicketById(w http.ResponseWriter, r *http.Request) {
	ticketId := chi.URLParam(r, "ticketId")

	domainTicket, err := h.Store.GetTicket(r.Context(), ticketId)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, mapping.ToApiTicket(domainTicket))
}

// DeactivateTicket handles the logic for taking a ticket off sale. Tickets
// with pending purchases cannot be deactivated.
func (h *ApiHandler) DeactivateTicket(w http.ResponseWriter, r *http.Request) {
	ticketId := chi.URLParam(r, "ticketId")

	if err := h.Store.DeactivateTicket(r.Context(), ticketId); err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, nil)
}

// GetTicketStatusByCode handles the logic for checking a voucher code. The
// captive portal calls this to decide whether to grant access.
func (h *ApiHandler) GetTicketStatusByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if !ticketcode.Valid(code) {
		respondError(w, http.StatusBadRequest, api.KindValidationError, "malformed ticket code")
		return
	}

	purchase, err := h.Store.GetPurchaseByTicketCode(r.Context(), code)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	ticket, err := h.Store.GetTicket(r.Context(), purchase.TicketId)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, mapping.ToApiTicketStatus(purchase, ticket, time.Now()))
}
