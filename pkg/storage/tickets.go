package storage

import (
	"context"

	"github.com/hotspotpay/voucher-ledger/pkg/models"
)

// TicketReader defines the interface for reading the ticket catalog.
type TicketReader interface {
	// GetTicket retrieves a ticket by its ID.
	GetTicket(ctx context.Context, ticketID string) (*models.Ticket, error)

	// ListActiveTickets retrieves all active tickets with remaining inventory.
	ListActiveTickets(ctx context.Context) ([]models.Ticket, error)

	// CheckAvailability verifies that a ticket is active and has at least qty
	// units remaining. It is advisory only and performs no mutation; the
	// authoritative check is the conditional decrement at confirmation.
	CheckAvailability(ctx context.Context, ticketID string, qty int64) (*models.Ticket, error)
}

// TicketManager defines the interface for mutating the ticket catalog.
type TicketManager interface {
	// CreateTicket creates a new ticket with remaining quantity equal to its
	// total quantity.
	CreateTicket(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error)

	// DecrementTicket atomically applies remaining_qty -= qty, conditioned on
	// remaining_qty >= qty at the moment of the write. Returns
	// ErrInsufficientInventory if the condition no longer holds.
	DecrementTicket(ctx context.Context, ticketID string, qty int64) error

	// DeactivateTicket marks a ticket unsellable. Returns
	// ErrActiveReservationsExist if any purchase for it is still pending.
	DeactivateTicket(ctx context.Context, ticketID string) error
}

// TicketStore combines the reader and manager interfaces.
type TicketStore interface {
	TicketReader
	TicketManager
}
