package storage

import (
	"context"

	"github.com/hotspotpay/voucher-ledger/pkg/models"
)

// WebhookResult reports what a webhook delivery actually did.
type WebhookResult struct {
	// Settled is true when this delivery won the transition to COMPLETED and
	// the caller must trigger settlement. A duplicate delivery returns
	// Settled=false with no error.
	Settled bool

	// Transaction is the post-update state of the transaction.
	Transaction *models.Transaction
}

// TransactionReader defines the interface for reading payment transactions.
type TransactionReader interface {
	// GetTransaction retrieves a payment transaction by its ID.
	GetTransaction(ctx context.Context, txID string) (*models.Transaction, error)

	// ListTransactionsByUserID retrieves a user's payment attempts, newest first.
	ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error)
}

// TransactionManager defines the interface for recording payment attempts and
// provider callbacks.
type TransactionManager interface {
	// CreateTransaction records a new PENDING payment attempt for a purchase.
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)

	// RecordWebhook applies a provider callback to a transaction. A SUCCESS
	// outcome must report the transaction's exact amount or the delivery is
	// rejected with ErrAmountMismatch. The transition PENDING ->
	// COMPLETED/FAILED is conditional, so a redelivered webhook with the same
	// outcome resolves to a no-op success. A redelivery with a conflicting
	// outcome returns ErrInvalidState.
	RecordWebhook(ctx context.Context, txID string, outcome models.WebhookOutcome, reference string, amount int64) (*WebhookResult, error)
}

// TransactionStore combines the reader and manager interfaces.
type TransactionStore interface {
	TransactionReader
	TransactionManager
}
