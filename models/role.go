// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package models

// Role is a coarse-grained authorization tag on a user account.
// Authorization is a flat set-membership check: admin is NOT an implicit
// superset of user.
type Role string

const (
	// RoleAdmin grants access to administrative routes such as user listing.
	RoleAdmin Role = "admin"

	// RoleUser is the default role assigned at registration.
	RoleUser Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Identity is the resolved result of a successful token verification plus a
// live user lookup. It is what downstream authorization checks operate on.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Authorized reports whether the identity's role is a member of
// requiredRoles. An empty required set means every authenticated identity
// is authorized.
func (i Identity) Authorized(requiredRoles ...Role) bool {
	if len(requiredRoles) == 0 {
		return true
	}

	for _, role := range requiredRoles {
		if i.Role == role {
			return true
		}
	}

	return false
}
