package middleware

import (
	"net/http"

	"github.com/glowcare/clinic/internal/domain/entity"
	"github.com/glowcare/clinic/pkg/response"
)

// Operation names a cross-service action the user service proxies.
type Operation string

const (
	OpBookAppointment     Operation = "book-appointment"
	OpMakePayment         Operation = "make-payment"
	OpViewAllAppointments Operation = "view-all-appointments"
	OpManageAppointment   Operation = "manage-appointment"
)

// rolePolicy is the single role-to-permission table. Every proxying
// handler consults it instead of carrying its own ad hoc role checks.
var rolePolicy = map[Operation][]string{
	OpBookAppointment:     {entity.RolePatient},
	OpMakePayment:         {entity.RolePatient},
	OpViewAllAppointments: {entity.RoleDoctor, entity.RoleAdmin},
	OpManageAppointment:   {entity.RoleAdmin, entity.RolePatient},
}

// Allowed reports whether role may perform op.
func Allowed(op Operation, role string) bool {
	for _, allowed := range rolePolicy[op] {
		if allowed == role {
			return true
		}
	}
	return false
}

// RequireOperation gates a route on the policy table. Must run after
// Authenticate.
func RequireOperation(op Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			if !Allowed(op, role) {
				response.Forbidden(w, "You don't have permission to perform this action")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
