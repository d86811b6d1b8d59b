package storage

import (
	"context"

	"github.com/hotspotpay/voucher-ledger/pkg/models"
)

// WithdrawalReader defines the interface for reading withdrawal requests.
type WithdrawalReader interface {
	// GetWithdrawal retrieves a withdrawal request by its ID.
	GetWithdrawal(ctx context.Context, withdrawalID string) (*models.Withdrawal, error)

	// ListWithdrawalsBySellerID retrieves a seller's withdrawal requests,
	// newest first, optionally filtered by status (empty string means all).
	ListWithdrawalsBySellerID(ctx context.Context, sellerID string, status models.WithdrawalStatus) ([]models.Withdrawal, error)

	// ListWithdrawalsByStatus retrieves withdrawal requests across all
	// sellers, optionally filtered by status. Used for the admin review queue.
	ListWithdrawalsByStatus(ctx context.Context, status models.WithdrawalStatus) ([]models.Withdrawal, error)
}

// WithdrawalManager defines the interface for the withdrawal lifecycle.
type WithdrawalManager interface {
	// CreateWithdrawal records a new PENDING withdrawal request. The balance
	// check at request time is advisory; the authoritative check is the
	// conditional debit inside ApproveWithdrawal.
	CreateWithdrawal(ctx context.Context, w *models.Withdrawal) (*models.Withdrawal, error)

	// ApproveWithdrawal transitions a pending withdrawal to APPROVED and
	// debits the seller's balance as one atomic unit. The balance is re-read
	// and the debit is conditioned on balance >= amount at the moment of the
	// write, guarding the race where the balance dropped since the request.
	ApproveWithdrawal(ctx context.Context, withdrawalID, adminNotes string) (*models.Withdrawal, error)

	// RejectWithdrawal transitions a pending withdrawal to REJECTED with a
	// mandatory reason. No balance change.
	RejectWithdrawal(ctx context.Context, withdrawalID, adminNotes string) (*models.Withdrawal, error)

	// ProcessWithdrawal transitions an approved withdrawal to PROCESSED once
	// the external payout has been handed off.
	ProcessWithdrawal(ctx context.Context, withdrawalID string) (*models.Withdrawal, error)
}

// WithdrawalStore combines the reader and manager interfaces.
type WithdrawalStore interface {
	WithdrawalReader
	WithdrawalManager
}
