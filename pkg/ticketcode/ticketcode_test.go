package ticketcode_test

import (
	"testing"

	"github.com/hotspotpay/voucher-ledger/pkg/ticketcode"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("Well Formed", func(t *testing.T) {
		code, err := ticketcode.New()

		assert.NoError(t, err)
		assert.Len(t, code, ticketcode.Length)
		assert.True(t, ticketcode.Valid(code))
	})

	t.Run("No Collisions In Practice", func(t *testing.T) {
		seen := make(map[string]bool, 10000)
		for i := 0; i < 10000; i++ {
			code, err := ticketcode.New()
			assert.NoError(t, err)
			assert.False(t, seen[code], "duplicate code %s after %d draws", code, i)
			seen[code] = true
		}
	})
}

func TestValid(t *testing.T) {
	assert.True(t, ticketcode.Valid("A1B2C3D4"))
	assert.True(t, ticketcode.Valid("ZZZZZZZZ"))

	assert.False(t, ticketcode.Valid(""))
	assert.False(t, ticketcode.Valid("a1b2c3d4"))   // lowercase
	assert.False(t, ticketcode.Valid("A1B2C3D"))    // too short
	assert.False(t, ticketcode.Valid("A1B2C3D4E"))  // too long
	assert.False(t, ticketcode.Valid("A1B2C3D!"))   // punctuation
}
