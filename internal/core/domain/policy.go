package domain

import "fmt"

// Resource identifies one guarded document collection.
type Resource string

const (
	ResourceProjects Resource = "projects"
	ResourceServices Resource = "services"
	ResourceBlogs    Resource = "blogs"
	ResourceTeam     Resource = "team"
	ResourceLeads    Resource = "leads"
	ResourceUsers    Resource = "users"
	ResourceNote     Resource = "note"
)

// Action is one of the four CRUD operations a caller can request.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// policy maps every (resource, action) pair to the minimum role required.
// RoleAnonymous means the operation is open to unauthenticated callers.
var policy = map[Resource]map[Action]Role{
	ResourceProjects: {
		ActionRead:   RoleAnonymous,
		ActionCreate: RoleAgent,
		ActionUpdate: RoleAgent,
		ActionDelete: RoleSuperAdmin,
	},
	ResourceServices: {
		ActionRead:   RoleAnonymous,
		ActionCreate: RoleAgent,
		ActionUpdate: RoleAgent,
		ActionDelete: RoleAgent,
	},
	ResourceBlogs: {
		ActionRead:   RoleAnonymous,
		ActionCreate: RoleAgent,
		ActionUpdate: RoleAgent,
		ActionDelete: RoleSuperAdmin,
	},
	ResourceTeam: {
		ActionRead:   RoleAnonymous,
		ActionCreate: RoleSuperAdmin,
		ActionUpdate: RoleSuperAdmin,
		ActionDelete: RoleAdmin,
	},
	ResourceLeads: {
		ActionRead: RoleAdmin,
		// Leads are created by the public contact form, never through the
		// dashboard CRUD path.
		ActionCreate: RoleAnonymous,
		ActionUpdate: RoleAdmin,
		ActionDelete: RoleAdmin,
	},
	ResourceUsers: {
		ActionRead:   RoleSuperAdmin,
		ActionCreate: RoleSuperAdmin,
		ActionUpdate: RoleSuperAdmin,
		ActionDelete: RoleSuperAdmin,
	},
	ResourceNote: {
		ActionRead:   RoleAnonymous,
		ActionCreate: RoleAgent,
		ActionUpdate: RoleAgent,
		ActionDelete: RoleAgent,
	},
}

// MinimumRole returns the tier required for the given resource/action pair.
// Unknown pairs require super-admin, failing closed.
func MinimumRole(res Resource, act Action) Role {
	actions, ok := policy[res]
	if !ok {
		return RoleSuperAdmin
	}
	min, ok := actions[act]
	if !ok {
		return RoleSuperAdmin
	}
	return min
}

// Require is the single authorization gate: it checks the caller's role
// against the policy table and returns the role unchanged on success so
// callers can branch on the exact tier for secondary logic.
//
// An anonymous caller hitting a guarded operation gets ErrUnauthorized; an
// authenticated caller below the required tier gets ErrForbidden.
func Require(role Role, res Resource, act Action) (Role, error) {
	min := MinimumRole(res, act)
	if min == RoleAnonymous {
		return role, nil
	}
	if !role.Valid() {
		return RoleAnonymous, fmt.Errorf("%s %s: %w", act, res, ErrUnauthorized)
	}
	if !role.Meets(min) {
		return role, fmt.Errorf("%s %s requires %s: %w", act, res, min, ErrForbidden)
	}
	return role, nil
}
