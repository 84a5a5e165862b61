package middleware

import (
	"net/http"

	"plantmaint/models"
)

// Actions understood by the policy table.
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

var allRoles = []string{models.RoleAdmin, models.RoleManager, models.RoleTechnician}

// policy maps resource -> action -> roles allowed. A resource or action
// missing from the table denies everyone, so new endpoints fail closed until
// a row is added here.
var policy = map[string]map[string][]string{
	"plants": {
		ActionRead:   {models.RoleAdmin, models.RoleManager},
		ActionCreate: {models.RoleAdmin},
		ActionUpdate: {models.RoleAdmin},
		ActionDelete: {models.RoleAdmin},
	},
	"vendors": {
		ActionRead:   allRoles,
		ActionCreate: {models.RoleAdmin},
		ActionUpdate: {models.RoleAdmin},
		ActionDelete: {models.RoleAdmin},
	},
	"machines": {
		ActionRead:   allRoles,
		ActionCreate: {models.RoleAdmin},
		ActionUpdate: {models.RoleAdmin},
		ActionDelete: {models.RoleAdmin},
	},
	"inventory": {
		ActionRead:   allRoles,
		ActionCreate: {models.RoleAdmin, models.RoleManager},
		ActionUpdate: {models.RoleAdmin, models.RoleManager},
		ActionDelete: {models.RoleAdmin, models.RoleManager},
	},
	"work-orders": {
		ActionRead:   allRoles,
		ActionCreate: {models.RoleAdmin, models.RoleManager},
		ActionUpdate: {models.RoleAdmin, models.RoleManager},
		ActionDelete: {models.RoleAdmin, models.RoleManager},
	},
	"work-order-parts": {
		ActionRead:   allRoles,
		ActionCreate: allRoles,
		ActionUpdate: allRoles,
		ActionDelete: allRoles,
	},
	"work-order-labor": {
		ActionRead:   allRoles,
		ActionCreate: allRoles,
		ActionUpdate: allRoles,
		ActionDelete: allRoles,
	},
	"maintenance-schedules": {
		ActionRead:   allRoles,
		ActionCreate: allRoles,
		ActionUpdate: allRoles,
		ActionDelete: allRoles,
	},
	"calls": {
		ActionRead:   allRoles,
		ActionCreate: allRoles,
		ActionUpdate: allRoles,
		ActionDelete: allRoles,
	},
	"reports": {
		ActionRead: allRoles,
	},
	"users": {
		ActionRead:   {models.RoleAdmin},
		ActionCreate: {models.RoleAdmin},
		ActionUpdate: {models.RoleAdmin},
		ActionDelete: {models.RoleAdmin},
	},
}

// Allowed reports whether role may perform action on resource. Pure function
// over the static table above; the request layer never needs to know how the
// decision is made.
func Allowed(role, resource, action string) bool {
	actions, ok := policy[resource]
	if !ok {
		return false
	}
	roles, ok := actions[action]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// RequirePolicy wraps a handler and enforces the policy table against the
// authenticated role. Must run after JWTMiddleware.
func RequirePolicy(resource, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !Allowed(GetRole(r), resource, action) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
