package storage

import (
	"context"
	"time"

	"github.com/hotspotpay/voucher-ledger/pkg/models"
)

// PurchaseReader defines the interface for reading purchase data.
type PurchaseReader interface {
	// GetPurchase retrieves a purchase by its ID.
	GetPurchase(ctx context.Context, purchaseID string) (*models.Purchase, error)

	// ListPurchasesByUserID retrieves a user's purchases, newest first,
	// optionally filtered by status (empty string means all).
	ListPurchasesByUserID(ctx context.Context, userID string, status models.PurchaseStatus) ([]models.Purchase, error)

	// GetPurchaseByTicketCode retrieves the completed purchase carrying the
	// given access code. Returns ErrPurchaseNotFound when no completed
	// purchase has the code.
	GetPurchaseByTicketCode(ctx context.Context, code string) (*models.Purchase, error)

	// GetExpiredPendingPurchases retrieves pending purchases whose
	// reservation deadline passed before the cutoff.
	GetExpiredPendingPurchases(ctx context.Context, cutoff time.Time) ([]models.Purchase, error)
}

// PurchaseManager defines the interface for the pre-settlement purchase lifecycle.
type PurchaseManager interface {
	// CreatePurchase snapshots the ticket price, sets status PENDING and a
	// 24h reservation deadline. The availability check is advisory; no
	// inventory is held.
	CreatePurchase(ctx context.Context, p *models.Purchase) (*models.Purchase, error)

	// CancelPurchase transitions a pending purchase to CANCELLED. No
	// inventory or balance reversal happens because none were applied yet.
	CancelPurchase(ctx context.Context, purchaseID string) error

	// ExpirePurchase conditionally transitions a pending purchase to EXPIRED.
	// It is a no-op success when another sweep already expired it.
	ExpirePurchase(ctx context.Context, purchaseID string) error
}

// PurchaseStore combines the reader and manager interfaces.
type PurchaseStore interface {
	PurchaseReader
	PurchaseManager
}
