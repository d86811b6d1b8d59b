// Package payments is the boundary to external mobile-money processors. The
// real providers live behind HTTP APIs; this package only defines the
// interface the ledger talks to and a sandbox implementation used in
// development. Provider calls are always made outside any store transaction.
package payments

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Provider identifies a mobile-money network.
type Provider string

const (
	MTNMobileMoney Provider = "MTN_MOBILE_MONEY"
	MoovMoney      Provider = "MOOV_MONEY"
	OrangeMoney    Provider = "ORANGE_MONEY"
	BankTransfer   Provider = "BANK_TRANSFER"
)

// Supported reports whether a provider string is a known payment method.
func Supported(p string) bool {
	switch Provider(p) {
	case MTNMobileMoney, MoovMoney, OrangeMoney, BankTransfer:
		return true
	}
	return false
}

// CollectRequest asks a provider to pull funds from a subscriber.
type CollectRequest struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PhoneNumber   string          `json:"phone_number"`
	Description   string          `json:"description,omitempty"`
}

// PayoutRequest asks a provider to push funds to an account.
type PayoutRequest struct {
	WithdrawalID   string            `json:"withdrawal_id"`
	Amount         decimal.Decimal   `json:"amount"`
	Currency       string            `json:"currency"`
	AccountDetails map[string]string `json:"account_details"`
}

// MobileMoneyProvider defines the common interface for all payment providers.
// Outcomes arrive asynchronously through the webhook; these calls only hand
// the request off.
type MobileMoneyProvider interface {
	// GetProvider returns the provider this client talks to.
	GetProvider() Provider

	// Collect initiates a collection for a purchase transaction.
	Collect(ctx context.Context, req *CollectRequest) (providerRef string, err error)

	// Payout initiates an external payout for a processed withdrawal.
	Payout(ctx context.Context, req *PayoutRequest) (providerRef string, err error)
}

// Registry holds one client per configured provider.
type Registry struct {
	providers map[Provider]MobileMoneyProvider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[Provider]MobileMoneyProvider)}
}

// Register adds a provider client to the registry.
func (r *Registry) Register(p MobileMoneyProvider) {
	r.providers[p.GetProvider()] = p
}

// Get returns the client for a provider.
func (r *Registry) Get(p Provider) (MobileMoneyProvider, error) {
	client, ok := r.providers[p]
	if !ok {
		return nil, fmt.Errorf("payment provider %s not registered", p)
	}
	return client, nil
}

// Empty reports whether no provider has been registered. Startup refuses to
// serve from an empty registry; every payment would fail anyway.
func (r *Registry) Empty() bool {
	return len(r.providers) == 0
}
