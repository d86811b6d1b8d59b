// Package monitoring exposes the service's Prometheus metrics.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PurchasesCreated counts created purchases per payment method.
	PurchasesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purchases_created_total",
			Help: "Total purchases created",
		},
		[]string{"payment_method"},
	)

	// Settlements counts settlement outcomes.
	Settlements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purchase_settlements_total",
			Help: "Total purchase settlement attempts by outcome",
		},
		[]string{"outcome"},
	)

	// WebhookDeliveries counts webhook deliveries, including duplicates.
	WebhookDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_webhook_deliveries_total",
			Help: "Total payment webhook deliveries by result",
		},
		[]string{"provider", "result"},
	)

	// Withdrawals counts withdrawal lifecycle transitions.
	Withdrawals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "withdrawals_total",
			Help: "Total withdrawal transitions by status",
		},
		[]string{"status"},
	)
)

// Settlement outcomes.
const (
	OutcomeSettled   = "settled"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
)
