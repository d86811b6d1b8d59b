package storage

import (
	"context"

	"github.com/hotspotpay/voucher-ledger/pkg/models"
)

// SellerStore defines the interface for seller profiles. Balance mutations do
// not appear here: credits happen only inside ConfirmPurchase and debits only
// inside ApproveWithdrawal.
type SellerStore interface {
	// GetSellerProfile retrieves a seller profile by its ID.
	GetSellerProfile(ctx context.Context, sellerID string) (*models.SellerProfile, error)

	// CreateSellerProfile creates a new seller profile with a zero balance.
	CreateSellerProfile(ctx context.Context, profile *models.SellerProfile) (*models.SellerProfile, error)
}
