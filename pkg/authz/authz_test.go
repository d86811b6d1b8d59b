package authz_test

import (
	"testing"

	"github.com/hotspotpay/voucher-ledger/pkg/authz"
	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	assert.True(t, authz.Can(authz.RoleClient, authz.ActionCreatePurchase))
	assert.True(t, authz.Can(authz.RoleSeller, authz.ActionRequestWithdrawal))
	assert.True(t, authz.Can(authz.RoleAdmin, authz.ActionReviewWithdrawals))

	// Sellers approve nothing and clients manage nothing.
	assert.False(t, authz.Can(authz.RoleSeller, authz.ActionReviewWithdrawals))
	assert.False(t, authz.Can(authz.RoleClient, authz.ActionManageTickets))

	// Unknown roles can do nothing at all.
	assert.False(t, authz.Can(authz.Role("SUPPORT"), authz.ActionCreatePurchase))
}
