package payments

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// SandboxProvider accepts every request and never calls out. Used in
// development; the matching webhook is driven by hand or by tests.
type SandboxProvider struct {
	Provider Provider
}

// NewSandboxProvider creates a sandbox client for the given provider name.
func NewSandboxProvider(p Provider) *SandboxProvider {
	return &SandboxProvider{Provider: p}
}

// Make sure we conform to the interface
var _ MobileMoneyProvider = (*SandboxProvider)(nil)

// GetProvider returns the provider this client impersonates.
func (s *SandboxProvider) GetProvider() Provider {
	return s.Provider
}

// Collect pretends to start a collection.
func (s *SandboxProvider) Collect(ctx context.Context, req *CollectRequest) (string, error) {
	ref := fmt.Sprintf("SBX_%d", time.Now().UnixNano())
	slog.Log(ctx, slog.LevelInfo, "sandbox collect",
		"provider", s.Provider, "transaction_id", req.TransactionID, "amount", req.Amount, "ref", ref)
	return ref, nil
}

// Payout pretends to start a payout.
func (s *SandboxProvider) Payout(ctx context.Context, req *PayoutRequest) (string, error) {
	ref := fmt.Sprintf("SBX_%d", time.Now().UnixNano())
	slog.Log(ctx, slog.LevelInfo, "sandbox payout",
		"provider", s.Provider, "withdrawal_id", req.WithdrawalID, "amount", req.Amount, "ref", ref)
	return ref, nil
}
