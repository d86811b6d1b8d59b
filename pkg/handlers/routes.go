package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/hotspotpay/voucher-ledger/pkg/authz"
	"github.com/hotspotpay/voucher-ledger/pkg/middleware"
)

// Routes mounts every handler on a chi router. Mutating routes are gated on a
// capability check against the caller's role; the gateway upstream stamps the
// role header after authenticating. The webhook path carries the provider name
// so deliveries can be attributed per provider, and is authenticated by the
// provider contract rather than a role.
func (h *ApiHandler) Routes(router chi.Router) {
	router.Route("/tickets", func(r chi.Router) {
		r.With(middleware.Authorize(authz.ActionManageTickets)).Post("/", h.CreateTicket)
		r.Get("/", h.ListTickets)
		r.Get("/{ticketId}", h.GetTicketById)
		r.With(middleware.Authorize(authz.ActionManageTickets)).Delete("/{ticketId}", h.DeactivateTicket)
		r.Get("/code/{code}", h.GetTicketStatusByCode)
	})

	router.Route("/purchases", func(r chi.Router) {
		r.With(middleware.Authorize(authz.ActionCreatePurchase)).Post("/", h.CreatePurchase)
		r.Get("/{purchaseId}", h.GetPurchaseById)
		r.With(middleware.Authorize(authz.ActionConfirmPurchase)).Post("/{purchaseId}/confirm", h.ConfirmPurchase)
		r.With(middleware.Authorize(authz.ActionCancelPurchase)).Post("/{purchaseId}/cancel", h.CancelPurchase)
	})

	router.Route("/payments", func(r chi.Router) {
		r.With(middleware.Authorize(authz.ActionInitiatePayment)).Post("/", h.InitiatePayment)
		r.Post("/webhook/{provider}", h.PaymentWebhook)
		r.Get("/{transactionId}", h.GetTransactionById)
	})

	router.Route("/users/{userId}", func(r chi.Router) {
		r.Get("/purchases", h.ListPurchasesByUserId)
		r.Get("/payments", h.ListTransactionsByUserId)
	})

	router.Route("/sellers", func(r chi.Router) {
		r.Post("/", h.CreateSellerProfile)
		r.Get("/{sellerId}", h.GetSellerProfileById)
		r.Get("/{sellerId}/withdrawals", h.ListWithdrawalsBySellerId)
	})

	router.Route("/withdrawals", func(r chi.Router) {
		r.With(middleware.Authorize(authz.ActionRequestWithdrawal)).Post("/", h.RequestWithdrawal)
		r.With(middleware.Authorize(authz.ActionReviewWithdrawals)).Get("/", h.ListWithdrawals)
		r.Get("/{withdrawalId}", h.GetWithdrawalById)
		r.With(middleware.Authorize(authz.ActionReviewWithdrawals)).Post("/{withdrawalId}/approve", h.ApproveWithdrawal)
		r.With(middleware.Authorize(authz.ActionReviewWithdrawals)).Post("/{withdrawalId}/reject", h.RejectWithdrawal)
		r.With(middleware.Authorize(authz.ActionProcessWithdrawals)).Post("/{withdrawalId}/process", h.ProcessWithdrawal)
	})
}
