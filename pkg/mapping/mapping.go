// Package mapping converts between wire (api) and domain (models) types so
// neither layer leaks into the other.
package mapping

import (
	"time"

	"github.com/hotspotpay/voucher-ledger/pkg/api"
	"github.com/hotspotpay/voucher-ledger/pkg/models"
)

// ToDomainNewPurchase maps a purchase request to the domain model. Price
// snapshots and lifecycle fields are filled in by the store.
func ToDomainNewPurchase(req *api.NewPurchase) *models.Purchase {
	return &models.Purchase{
		UserId:        req.UserId,
		TicketId:      req.TicketId,
		Quantity:      req.Quantity,
		PaymentMethod: req.PaymentMethod,
	}
}

// ToApiPurchase maps a domain purchase to its wire representation.
func ToApiPurchase(p *models.Purchase) *api.Purchase {
	return &api.Purchase{
		Id:            p.Id,
		UserId:        p.UserId,
		TicketId:      p.TicketId,
		Quantity:      p.Quantity,
		UnitPrice:     p.UnitPrice,
		TotalAmount:   p.TotalAmount,
		PaymentMethod: p.PaymentMethod,
		Status:        string(p.Status),
		TicketCode:    p.TicketCode,
		ExpiresAt:     p.ExpiresAt,
		CreatedAt:     p.CreatedAt,
	}
}

// ToDomainNewTicket maps a ticket creation request to the domain model.
func ToDomainNewTicket(req *api.NewTicket) *models.Ticket {
	return &models.Ticket{
		SellerId:        req.SellerId,
		Name:            req.Name,
		Price:           req.Price,
		Quantity:        req.Quantity,
		DurationMinutes: req.DurationMinutes,
	}
}

// ToApiTicket maps a domain ticket to its wire representation.
func ToApiTicket(t *models.Ticket) *api.Ticket {
	return &api.Ticket{
		Id:              t.Id,
		SellerId:        t.SellerId,
		Name:            t.Name,
		Price:           t.Price,
		Quantity:        t.Quantity,
		RemainingQty:    t.RemainingQty,
		DurationMinutes: t.DurationMinutes,
		IsActive:        t.IsActive,
	}
}

// ToApiTransaction maps a domain payment transaction to its wire representation.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		Id:          tx.Id,
		PurchaseId:  tx.PurchaseId,
		Amount:      tx.Amount,
		Status:      string(tx.Status),
		ProviderRef: tx.ProviderRef,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

// ToDomainNewWithdrawal maps a withdrawal request to the domain model.
func ToDomainNewWithdrawal(req *api.NewWithdrawal) *models.Withdrawal {
	return &models.Withdrawal{
		SellerId:       req.SellerId,
		Amount:         req.Amount,
		PaymentMethod:  req.PaymentMethod,
		AccountDetails: req.AccountDetails,
	}
}

// ToApiWithdrawal maps a domain withdrawal to its wire representation.
func ToApiWithdrawal(w *models.Withdrawal) *api.Withdrawal {
	return &api.Withdrawal{
		Id:            w.Id,
		SellerId:      w.SellerId,
		Amount:        w.Amount,
		PaymentMethod: w.PaymentMethod,
		Status:        string(w.Status),
		AdminNotes:    w.AdminNotes,
		ProcessedAt:   w.ProcessedAt,
		CreatedAt:     w.CreatedAt,
	}
}

// ToApiTicketStatus builds the voucher status view for a completed purchase.
func ToApiTicketStatus(p *models.Purchase, t *models.Ticket, now time.Time) *api.TicketStatus {
	remaining := p.ExpiresAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}

	return &api.TicketStatus{
		Code:             p.TicketCode,
		TicketName:       t.Name,
		DurationMinutes:  t.DurationMinutes,
		IsExpired:        now.After(p.ExpiresAt),
		RemainingSeconds: int64(remaining.Seconds()),
		ExpiresAt:        p.ExpiresAt,
	}
}
