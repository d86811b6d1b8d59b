// Package authz resolves what a caller may do from a closed set of roles.
// Handlers consult Can with an action; no role conditionals live anywhere
// else.
package authz

// Role is a caller's role. The set is closed; anything unknown can do nothing.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

// Action names a capability a handler may require.
type Action string

const (
	ActionCreatePurchase     Action = "purchase:create"
	ActionConfirmPurchase    Action = "purchase:confirm"
	ActionCancelPurchase     Action = "purchase:cancel"
	ActionInitiatePayment    Action = "payment:initiate"
	ActionManageTickets      Action = "ticket:manage"
	ActionRequestWithdrawal  Action = "withdrawal:request"
	ActionReviewWithdrawals  Action = "withdrawal:review"
	ActionProcessWithdrawals Action = "withdrawal:process"
)

var grants = map[Role]map[Action]bool{
	RoleClient: {
		ActionCreatePurchase:  true,
		ActionConfirmPurchase: true,
		ActionCancelPurchase:  true,
		ActionInitiatePayment: true,
	},
	RoleSeller: {
		ActionManageTickets:     true,
		ActionRequestWithdrawal: true,
	},
	RoleAdmin: {
		ActionConfirmPurchase:    true,
		ActionReviewWithdrawals:  true,
		ActionProcessWithdrawals: true,
	},
}

// Can reports whether a role may perform an action.
func Can(role Role, action Action) bool {
	return grants[role][action]
}
