package settlement_test

import (
	"testing"

	"github.com/hotspotpay/voucher-ledger/pkg/settlement"
	"github.com/stretchr/testify/assert"
)

func TestNet(t *testing.T) {
	t.Run("Standard Commission", func(t *testing.T) {
		net, err := settlement.Net(1000, 0.05)

		assert.NoError(t, err)
		assert.Equal(t, int64(950), net)
	})

	t.Run("Zero Commission", func(t *testing.T) {
		net, err := settlement.Net(1000, 0)

		assert.NoError(t, err)
		assert.Equal(t, int64(1000), net)
	})

	t.Run("Rounds Half Even", func(t *testing.T) {
		// 25 * 0.90 = 22.5 rounds to the even neighbour.
		net, err := settlement.Net(25, 0.10)
		assert.NoError(t, err)
		assert.Equal(t, int64(22), net)

		// 35 * 0.90 = 31.5 also rounds to the even neighbour.
		net, err = settlement.Net(35, 0.10)
		assert.NoError(t, err)
		assert.Equal(t, int64(32), net)
	})

	t.Run("Invalid Rate", func(t *testing.T) {
		_, err := settlement.Net(1000, -0.01)
		assert.ErrorIs(t, err, settlement.ErrInvalidCommissionRate)

		_, err = settlement.Net(1000, 1.5)
		assert.ErrorIs(t, err, settlement.ErrInvalidCommissionRate)
	})

	t.Run("Never Negative", func(t *testing.T) {
		net, err := settlement.Net(1, 1)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), net)
	})
}

func TestCommission(t *testing.T) {
	t.Run("Complements Net Exactly", func(t *testing.T) {
		for _, total := range []int64{1, 25, 999, 1000, 123457} {
			net, err := settlement.Net(total, 0.05)
			assert.NoError(t, err)
			commission, err := settlement.Commission(total, 0.05)
			assert.NoError(t, err)

			// No minor unit is ever created or destroyed by rounding.
			assert.Equal(t, total, net+commission)
		}
	})
}
