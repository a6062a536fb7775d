package auth

import (
	"fmt"
	"strings"
)

// Role is the closed set of roles a session can carry.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

const (
	AdminLandingPage    = "/admin/dashboard"
	EmployeeLandingPage = "/employee/profile"
	EntryPage           = "/"
)

var Roles = []Role{RoleAdmin, RoleEmployee}

func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleEmployee:
		return RoleEmployee, nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// LandingPage is where a freshly authenticated user of this role is sent.
func LandingPage(r Role) string {
	switch r {
	case RoleAdmin:
		return AdminLandingPage
	case RoleEmployee:
		return EmployeeLandingPage
	}
	return EntryPage
}

// RoleIn reports whether r is one of allowed.
func RoleIn(r Role, allowed []Role) bool {
	for _, candidate := range allowed {
		if candidate == r {
			return true
		}
	}
	return false
}
