package models

import (
	"time"
)

// PurchaseStatus defines the possible states of a purchase.
type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "PENDING"
	PurchaseCompleted PurchaseStatus = "COMPLETED"
	PurchaseCancelled PurchaseStatus = "CANCELLED"
	PurchaseExpired   PurchaseStatus = "EXPIRED"
)

// TransactionStatus defines the possible states of a payment transaction.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
)

// WithdrawalStatus defines the possible states of a withdrawal request.
type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "PENDING"
	WithdrawalApproved  WithdrawalStatus = "APPROVED"
	WithdrawalRejected  WithdrawalStatus = "REJECTED"
	WithdrawalProcessed WithdrawalStatus = "PROCESSED"
)

// WebhookOutcome is the status reported by the payment provider.
type WebhookOutcome string

const (
	WebhookSuccess WebhookOutcome = "SUCCESS"
	WebhookFailure WebhookOutcome = "FAILURE"
)

// Ticket is a sellable voucher type granting timed network access.
// All monetary amounts in this package are in the currency's minor unit.
type Ticket struct {
	Id              string    `json:"id" dynamodbav:"id"`
	SellerId        string    `json:"seller_id" dynamodbav:"seller_id"`
	Name            string    `json:"name" dynamodbav:"name"`
	Price           int64     `json:"price" dynamodbav:"price"`
	Quantity        int64     `json:"quantity" dynamodbav:"quantity"`
	RemainingQty    int64     `json:"remaining_qty" dynamodbav:"remaining_qty"`
	DurationMinutes int64     `json:"duration_minutes" dynamodbav:"duration_minutes"`
	IsActive        bool      `json:"is_active" dynamodbav:"is_active"`
	CreatedAt       time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Purchase is a buyer's reservation for a quantity of a ticket. UnitPrice and
// TotalAmount are snapshots taken at creation and never recomputed.
// ExpiresAt is the reservation deadline while PENDING and becomes the access
// expiry once the purchase is confirmed.
type Purchase struct {
	Id            string         `json:"id" dynamodbav:"id"`
	UserId        string         `json:"user_id" dynamodbav:"user_id"`
	TicketId      string         `json:"ticket_id" dynamodbav:"ticket_id"`
	Quantity      int64          `json:"quantity" dynamodbav:"quantity"`
	UnitPrice     int64          `json:"unit_price" dynamodbav:"unit_price"`
	TotalAmount   int64          `json:"total_amount" dynamodbav:"total_amount"`
	PaymentMethod string         `json:"payment_method" dynamodbav:"payment_method"`
	Status        PurchaseStatus `json:"status" dynamodbav:"status"`
	TicketCode    string         `json:"ticket_code,omitempty" dynamodbav:"ticket_code,omitempty"`
	ExpiresAt     time.Time      `json:"expires_at" dynamodbav:"expires_at"`
	CreatedAt     time.Time      `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" dynamodbav:"updated_at"`
}

// Transaction records a single payment attempt against a purchase. A purchase
// may accumulate several attempts; at most one ever settles it.
type Transaction struct {
	Id           string            `json:"id" dynamodbav:"id"`
	PurchaseId   string            `json:"purchase_id" dynamodbav:"purchase_id"`
	UserId       string            `json:"user_id" dynamodbav:"user_id"`
	Amount       int64             `json:"amount" dynamodbav:"amount"`
	Status       TransactionStatus `json:"status" dynamodbav:"status"`
	ProviderRef  string            `json:"provider_ref,omitempty" dynamodbav:"provider_ref,omitempty"`
	ProviderData map[string]string `json:"provider_data,omitempty" dynamodbav:"provider_data,omitempty"`
	CreatedAt    time.Time         `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" dynamodbav:"updated_at"`
}

// SellerProfile carries a seller's running balance. Balance is credited only
// by purchase confirmation and debited only by withdrawal approval; Version
// guards both against lost updates.
type SellerProfile struct {
	Id             string    `json:"id" dynamodbav:"id"`
	UserId         string    `json:"user_id" dynamodbav:"user_id"`
	Balance        int64     `json:"balance" dynamodbav:"balance"`
	TotalSales     int64     `json:"total_sales" dynamodbav:"total_sales"`
	TotalWithdrawn int64     `json:"total_withdrawn" dynamodbav:"total_withdrawn"`
	CommissionRate float64   `json:"commission_rate" dynamodbav:"commission_rate"`
	Version        int64     `json:"version" dynamodbav:"version"`
	CreatedAt      time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Withdrawal is a seller's request to pay out accumulated balance.
type Withdrawal struct {
	Id             string            `json:"id" dynamodbav:"id"`
	SellerId       string            `json:"seller_id" dynamodbav:"seller_id"`
	Amount         int64             `json:"amount" dynamodbav:"amount"`
	PaymentMethod  string            `json:"payment_method" dynamodbav:"payment_method"`
	AccountDetails map[string]string `json:"account_details" dynamodbav:"account_details"`
	Status         WithdrawalStatus  `json:"status" dynamodbav:"status"`
	AdminNotes     string            `json:"admin_notes,omitempty" dynamodbav:"admin_notes,omitempty"`
	ProcessedAt    *time.Time        `json:"processed_at,omitempty" dynamodbav:"processed_at,omitempty"`
	CreatedAt      time.Time         `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" dynamodbav:"updated_at"`
}
