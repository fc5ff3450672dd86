package handler

import (
	"testing"

	"gamepal/internal/domain"
)

func TestCanAssignRole(t *testing.T) {
	cases := []struct {
		name       string
		callerRole string
		newRole    string
		want       bool
	}{
		{"admin assigns admin", domain.RoleAdmin, domain.RoleAdmin, true},
		{"admin assigns moderator", domain.RoleAdmin, domain.RoleModerator, true},
		{"admin assigns companion", domain.RoleAdmin, domain.RoleCompanion, true},
		{"admin assigns user", domain.RoleAdmin, domain.RoleUser, true},
		{"moderator assigns user", domain.RoleModerator, domain.RoleUser, true},
		{"moderator assigns companion", domain.RoleModerator, domain.RoleCompanion, true},
		{"moderator assigns moderator", domain.RoleModerator, domain.RoleModerator, false},
		{"moderator assigns admin", domain.RoleModerator, domain.RoleAdmin, false},
		{"plain user assigns user", domain.RoleUser, domain.RoleUser, false},
		{"companion assigns companion", domain.RoleCompanion, domain.RoleCompanion, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := canAssignRole(tc.callerRole, tc.newRole); got != tc.want {
				t.Errorf("canAssignRole(%q, %q) = %v, want %v", tc.callerRole, tc.newRole, got, tc.want)
			}
		})
	}
}
