package storage

import (
	"context"

	"github.com/hotspotpay/voucher-ledger/pkg/models"
)

// SettlementStore defines the highly-privileged interface for confirming a
// purchase. Confirmation is the only writer of inventory decrements and
// balance credits: the purchase update, the ticket decrement and the seller
// credit commit or fail as one atomic unit. It should only be exposed to the
// components responsible for settlement.
type SettlementStore interface {
	// ConfirmPurchase settles a pending purchase. It returns the settled
	// purchase and a boolean indicating whether settlement was performed by
	// this call; an already-completed purchase is an idempotent no-op with
	// settled=false. A cancelled or expired purchase returns ErrInvalidState.
	ConfirmPurchase(ctx context.Context, purchaseID string) (*models.Purchase, bool, error)
}
