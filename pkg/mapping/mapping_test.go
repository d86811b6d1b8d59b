package mapping_test

import (
	"testing"
	"time"

	"github.com/hotspotpay/voucher-ledger/pkg/mapping"
	"github.com/hotspotpay/voucher-ledger/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestToApiTicketStatus(t *testing.T) {
	ticket := &models.Ticket{Id: "ticket1", Name: "1 Hour Pass", DurationMinutes: 60}

	t.Run("Active Voucher", func(t *testing.T) {
		now := time.Now()
		purchase := &models.Purchase{TicketCode: "A1B2C3D4", ExpiresAt: now.Add(30 * time.Minute)}

		status := mapping.ToApiTicketStatus(purchase, ticket, now)

		assert.False(t, status.IsExpired)
		assert.Equal(t, int64(1800), status.RemainingSeconds)
		assert.Equal(t, "1 Hour Pass", status.TicketName)
	})

	t.Run("Expired Voucher Clamps To Zero", func(t *testing.T) {
		now := time.Now()
		purchase := &models.Purchase{TicketCode: "A1B2C3D4", ExpiresAt: now.Add(-5 * time.Minute)}

		status := mapping.ToApiTicketStatus(purchase, ticket, now)

		assert.True(t, status.IsExpired)
		assert.Equal(t, int64(0), status.RemainingSeconds)
	})
}
