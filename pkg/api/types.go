// Package api defines the wire types exposed to the routing layer. Every
// response is wrapped in the success/error envelope; error kinds are a fixed
// taxonomy the caller can switch on.
package api

import "time"

// Error kinds returned in the envelope.
const (
	KindNotFound                = "NotFound"
	KindInvalidState            = "InvalidState"
	KindInsufficientInventory   = "InsufficientInventory"
	KindInsufficientBalance     = "InsufficientBalance"
	KindBelowMinimum            = "BelowMinimum"
	KindAboveMaximum            = "AboveMaximum"
	KindValidationError         = "ValidationError"
	KindForbidden               = "Forbidden"
	KindDuplicateOperation      = "DuplicateOperation"
	KindCodeGenerationExhausted = "CodeGenerationExhausted"
	KindInternalError           = "InternalError"
)

// ErrorResponse is the envelope for failed operations.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse is the envelope for successful operations. Data holds the
// operation's DTO and is omitted for operations with nothing to return.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// NewTicket is the request body for creating a catalog ticket.
type NewTicket struct {
	SellerId        string `json:"seller_id"`
	Name            string `json:"name"`
	Price           int64  `json:"price"`
	Quantity        int64  `json:"quantity"`
	DurationMinutes int64  `json:"duration_minutes"`
}

// NewPurchase is the request body for creating a purchase.
type NewPurchase struct {
	UserId        string `json:"user_id"`
	TicketId      string `json:"ticket_id"`
	Quantity      int64  `json:"quantity"`
	PaymentMethod string `json:"payment_method"`
}

// Purchase is the wire representation of a purchase.
type Purchase struct {
	Id            string    `json:"id"`
	UserId        string    `json:"user_id"`
	TicketId      string    `json:"ticket_id"`
	Quantity      int64     `json:"quantity"`
	UnitPrice     int64     `json:"unit_price"`
	TotalAmount   int64     `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	TicketCode    string    `json:"ticket_code,omitempty"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// Ticket is the wire representation of a catalog ticket.
type Ticket struct {
	Id              string `json:"id"`
	SellerId        string `json:"seller_id"`
	Name            string `json:"name"`
	Price           int64  `json:"price"`
	Quantity        int64  `json:"quantity"`
	RemainingQty    int64  `json:"remaining_qty"`
	DurationMinutes int64  `json:"duration_minutes"`
	IsActive        bool   `json:"is_active"`
}

// InitiatePayment is the request body for starting a payment attempt.
type InitiatePayment struct {
	PurchaseId  string `json:"purchase_id"`
	PhoneNumber string `json:"phone_number"`
}

// Transaction is the wire representation of a payment attempt.
type Transaction struct {
	Id          string    `json:"id"`
	PurchaseId  string    `json:"purchase_id"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
	ProviderRef string    `json:"provider_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WebhookPayload is what payment providers POST back. The contract is fixed:
// status is either SUCCESS or FAILURE.
type WebhookPayload struct {
	TransactionId string `json:"transactionId"`
	Status        string `json:"status"`
	Reference     string `json:"reference"`
	Amount        int64  `json:"amount"`
}

// NewWithdrawal is the request body for a seller withdrawal request.
type NewWithdrawal struct {
	SellerId       string            `json:"seller_id"`
	Amount         int64             `json:"amount"`
	PaymentMethod  string            `json:"payment_method"`
	AccountDetails map[string]string `json:"account_details"`
}

// WithdrawalReview is the request body for approving or rejecting a withdrawal.
type WithdrawalReview struct {
	AdminNotes string `json:"admin_notes"`
}

// Withdrawal is the wire representation of a withdrawal request.
type Withdrawal struct {
	Id            string     `json:"id"`
	SellerId      string     `json:"seller_id"`
	Amount        int64      `json:"amount"`
	PaymentMethod string     `json:"payment_method"`
	Status        string     `json:"status"`
	AdminNotes    string     `json:"admin_notes,omitempty"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// TicketStatus reports the state of a confirmed voucher code.
type TicketStatus struct {
	Code             string    `json:"code"`
	TicketName       string    `json:"ticket_name"`
	DurationMinutes  int64     `json:"duration_minutes"`
	IsExpired        bool      `json:"is_expired"`
	RemainingSeconds int64     `json:"remaining_seconds"`
	ExpiresAt        time.Time `json:"expires_at"`
}
