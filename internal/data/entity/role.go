package entity

import "strings"

// Role is the closed set of permission classes. Canonical form is lowercase;
// anything read from a boundary goes through ParseRole first.
type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
	RoleClient   Role = "client"
	RoleSupplier Role = "supplier"
)

// ParseRole canonicalizes and validates a role string.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleEmployee, RoleClient, RoleSupplier:
		return true
	}
	return false
}

// In reports whether r is a member of the given role set.
func (r Role) In(roles []Role) bool {
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}
