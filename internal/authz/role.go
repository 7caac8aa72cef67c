package authz

import (
	"net/http"

	"go-onboarding/internal/shared/apperror"
)

// Role is a closed enum. Every capability check below switches exhaustively
// over it, so adding a role forces each call site to be revisited.
type Role string

const (
	RoleEmployee   Role = "employee"
	RoleSupervisor Role = "supervisor"
	RoleManager    Role = "manager"
	RoleHR         Role = "hr"
)

var ErrUnknownRole = apperror.New(
	apperror.CodeForbidden,
	"unknown role",
	http.StatusForbidden,
)

// ParseRole maps the raw claim string to a Role. Anything outside the enum
// is rejected rather than carried around as a free-form string.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleEmployee, RoleSupervisor, RoleManager, RoleHR:
		return Role(raw), nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleSupervisor, RoleManager, RoleHR:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
