package storage

import "errors"

// Sentinel errors shared across store implementations. Handlers map these to
// response kinds; anything not listed here is treated as an internal error.
var (
	// ErrTicketNotFound is returned when a ticket does not exist.
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrTicketInactive is returned when a ticket exists but is no longer sellable.
	ErrTicketInactive = errors.New("ticket is not active")

	// ErrInsufficientInventory is returned when a ticket's remaining quantity
	// cannot cover the requested quantity, either at the advisory check or at
	// the conditional decrement inside confirmation.
	ErrInsufficientInventory = errors.New("insufficient ticket inventory")

	// ErrActiveReservationsExist is returned when a ticket cannot be
	// deactivated because pending purchases still reference it.
	ErrActiveReservationsExist = errors.New("ticket has pending purchases")

	// ErrPurchaseNotFound is returned when a purchase does not exist.
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrInvalidState is returned on an illegal lifecycle transition, e.g.
	// confirming a cancelled purchase or approving a non-pending withdrawal.
	ErrInvalidState = errors.New("invalid state transition")

	// ErrAlreadyPaid is returned when a payment is initiated for a purchase
	// that has already been completed.
	ErrAlreadyPaid = errors.New("purchase already paid")

	// ErrTransactionNotFound is returned when a payment transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInsufficientBalance is returned when a seller's balance cannot cover
	// a withdrawal, either at request time or at the conditional debit inside
	// approval.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrSellerNotFound is returned when a seller profile does not exist.
	ErrSellerNotFound = errors.New("seller profile not found")

	// ErrWithdrawalNotFound is returned when a withdrawal request does not exist.
	ErrWithdrawalNotFound = errors.New("withdrawal not found")

	// ErrAmountMismatch is returned when a successful webhook reports an
	// amount different from what the transaction expects.
	ErrAmountMismatch = errors.New("webhook amount mismatch")

	// ErrCodeGenerationExhausted is returned when a unique ticket code could
	// not be drawn within the bounded number of attempts.
	ErrCodeGenerationExhausted = errors.New("ticket code generation exhausted")
)
