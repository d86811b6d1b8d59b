package scheduler

import (
	"context"
)

// SettlementJob is the message enqueued when a payment webhook wins the
// transition to COMPLETED. The worker that consumes it calls ConfirmPurchase,
// which is idempotent, so redelivery is harmless.
type SettlementJob struct {
	PurchaseID    string `json:"purchase_id"`
	TransactionID string `json:"transaction_id"`
}

// Scheduler defines the interface for a component that enqueues a purchase
// for asynchronous settlement.
type Scheduler interface {
	// ScheduleSettlement enqueues a settlement job for later processing.
	ScheduleSettlement(ctx context.Context, job SettlementJob) error
}
