package domain

type Role string

const (
	RoleParticipant Role = "participant"
	RoleVolunteer   Role = "volunteer"
	RoleAdmin       Role = "admin"
	RoleSuperAdmin  Role = "superadmin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleParticipant, RoleVolunteer, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// RouteGroup identifies a gated section of the HTTP surface.
type RouteGroup string

const (
	GroupParticipantRestricted RouteGroup = "participant-restricted"
	GroupParticipantLimited    RouteGroup = "participant-limited"
	GroupAdminOnly             RouteGroup = "admin-only"
	GroupSuperAdminOnly        RouteGroup = "superadmin-only"
	GroupVolunteerOnly         RouteGroup = "volunteer-only"
)

type groupPolicy struct {
	role             Role
	requiresApproval bool
}

// accessTable is the single source of truth for role-based routing.
// Each group maps to exactly one role; a superadmin hitting an admin-only
// route is denied like any other cross-group request.
var accessTable = map[RouteGroup]groupPolicy{
	GroupParticipantRestricted: {role: RoleParticipant, requiresApproval: true},
	GroupParticipantLimited:    {role: RoleParticipant},
	GroupAdminOnly:             {role: RoleAdmin},
	GroupSuperAdminOnly:        {role: RoleSuperAdmin},
	GroupVolunteerOnly:         {role: RoleVolunteer},
}

// CanAccess reports whether a principal with the given role and approval
// state may reach the route group. Unknown groups are unreachable.
func CanAccess(role Role, approved bool, group RouteGroup) bool {
	policy, ok := accessTable[group]
	if !ok {
		return false
	}
	if policy.role != role {
		return false
	}
	if policy.requiresApproval && !approved {
		return false
	}
	return true
}
