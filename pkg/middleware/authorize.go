package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/hotspotpay/voucher-ledger/pkg/api"
	"github.com/hotspotpay/voucher-ledger/pkg/authz"
)

// RoleHeader carries the caller's resolved role. Authentication happens
// upstream; by the time a request reaches this service the gateway has
// verified the caller and stamped the role it resolved.
const RoleHeader = "X-Caller-Role"

// Authorize gates a route on a single capability check. Handlers behind it
// never inspect roles themselves.
func Authorize(action authz.Action) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			role := authz.Role(r.Header.Get(RoleHeader))
			if !authz.Can(role, action) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(api.ErrorResponse{
					Success: false,
					Error:   api.KindForbidden,
					Message: "role may not perform this action",
				})
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
