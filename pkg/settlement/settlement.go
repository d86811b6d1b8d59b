// Package settlement holds the commission math applied when a purchase is
// confirmed. It only computes; the resulting credit is written by the store
// inside the confirmation transaction.
package settlement

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidCommissionRate is returned when a commission rate falls outside [0, 1].
var ErrInvalidCommissionRate = errors.New("commission rate must be between 0 and 1")

// Net computes the seller's net credit for a completed purchase:
// totalAmount x (1 - commissionRate), in minor units, rounded half-even.
// The result is never negative for a valid rate.
func Net(totalAmount int64, commissionRate float64) (int64, error) {
	if commissionRate < 0 || commissionRate > 1 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCommissionRate, commissionRate)
	}

	total := decimal.NewFromInt(totalAmount)
	rate := decimal.NewFromFloat(commissionRate)
	net := total.Mul(decimal.NewFromInt(1).Sub(rate))

	return net.RoundBank(0).IntPart(), nil
}

// Commission computes the platform's cut: totalAmount - Net.
func Commission(totalAmount int64, commissionRate float64) (int64, error) {
	net, err := Net(totalAmount, commissionRate)
	if err != nil {
		return 0, err
	}
	return totalAmount - net, nil
}
