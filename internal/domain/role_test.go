package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type accessKey struct {
	role     Role
	approved bool
	group    RouteGroup
}

// TestCanAccess walks the full (role, approved) x group matrix. Everything
// outside the allowed set below must be denied: one role per group, and
// restricted participant routes additionally demand approval.
func TestCanAccess(t *testing.T) {
	roles := []Role{RoleParticipant, RoleVolunteer, RoleAdmin, RoleSuperAdmin}
	groups := []RouteGroup{
		GroupParticipantRestricted,
		GroupParticipantLimited,
		GroupAdminOnly,
		GroupSuperAdminOnly,
		GroupVolunteerOnly,
	}

	allowed := map[accessKey]bool{
		{RoleParticipant, true, GroupParticipantRestricted}: true,
		{RoleParticipant, false, GroupParticipantLimited}:   true,
		{RoleParticipant, true, GroupParticipantLimited}:    true,
		{RoleAdmin, false, GroupAdminOnly}:                  true,
		{RoleAdmin, true, GroupAdminOnly}:                   true,
		{RoleSuperAdmin, false, GroupSuperAdminOnly}:        true,
		{RoleSuperAdmin, true, GroupSuperAdminOnly}:         true,
		{RoleVolunteer, false, GroupVolunteerOnly}:          true,
		{RoleVolunteer, true, GroupVolunteerOnly}:           true,
	}

	for _, role := range roles {
		for _, approved := range []bool{false, true} {
			for _, group := range groups {
				want := allowed[accessKey{role, approved, group}]

				got := CanAccess(role, approved, group)

				assert.Equal(t, want, got, "role=%s approved=%t group=%s", role, approved, group)
			}
		}
	}

	assert.False(t, CanAccess(RoleAdmin, true, RouteGroup("bogus")), "unknown group is unreachable")
}

func TestRole_Valid(t *testing.T) {
	for _, role := range []Role{RoleParticipant, RoleVolunteer, RoleAdmin, RoleSuperAdmin} {
		assert.True(t, role.Valid())
	}
	assert.False(t, Role("organizer").Valid())
	assert.False(t, Role("").Valid())
}
