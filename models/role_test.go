// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package models

import "testing"

func TestRole_Valid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleUser.Valid() {
		t.Error("expected built-in roles to be valid")
	}
	if Role("superuser").Valid() {
		t.Error("expected unknown role to be invalid")
	}
}

func TestIdentity_Authorized(t *testing.T) {
	admin := Identity{ID: 1, Role: RoleAdmin}
	user := Identity{ID: 2, Role: RoleUser}

	tests := []struct {
		name     string
		identity Identity
		required []Role
		want     bool
	}{
		{"empty set authorizes everyone", user, nil, true},
		{"member role allowed", admin, []Role{RoleAdmin}, true},
		{"non-member role denied", user, []Role{RoleAdmin}, false},
		{"admin is not an implicit user", admin, []Role{RoleUser}, false},
		{"any of several roles", user, []Role{RoleAdmin, RoleUser}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.identity.Authorized(tt.required...); got != tt.want {
				t.Errorf("Authorized(%v) = %v, want %v", tt.required, got, tt.want)
			}
		})
	}
}
