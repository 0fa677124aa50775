package domain

import (
	"errors"
	"testing"
)

var allRoles = []Role{RoleAnonymous, RoleAgent, RoleAdmin, RoleSuperAdmin}

var allActions = []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}

// minimums spells out the full policy table so the test cannot share a bug
// with the implementation's lookup.
var minimums = map[Resource]map[Action]Role{
	ResourceProjects: {ActionRead: RoleAnonymous, ActionCreate: RoleAgent, ActionUpdate: RoleAgent, ActionDelete: RoleSuperAdmin},
	ResourceServices: {ActionRead: RoleAnonymous, ActionCreate: RoleAgent, ActionUpdate: RoleAgent, ActionDelete: RoleAgent},
	ResourceBlogs:    {ActionRead: RoleAnonymous, ActionCreate: RoleAgent, ActionUpdate: RoleAgent, ActionDelete: RoleSuperAdmin},
	ResourceTeam:     {ActionRead: RoleAnonymous, ActionCreate: RoleSuperAdmin, ActionUpdate: RoleSuperAdmin, ActionDelete: RoleAdmin},
	ResourceLeads:    {ActionRead: RoleAdmin, ActionCreate: RoleAnonymous, ActionUpdate: RoleAdmin, ActionDelete: RoleAdmin},
	ResourceUsers:    {ActionRead: RoleSuperAdmin, ActionCreate: RoleSuperAdmin, ActionUpdate: RoleSuperAdmin, ActionDelete: RoleSuperAdmin},
	ResourceNote:     {ActionRead: RoleAnonymous, ActionCreate: RoleAgent, ActionUpdate: RoleAgent, ActionDelete: RoleAgent},
}

// TestRequire_Exhaustive checks every role against every resource/action
// pair: permission is granted iff the role meets the table's minimum.
func TestRequire_Exhaustive(t *testing.T) {
	for res, actions := range minimums {
		for _, act := range allActions {
			min, ok := actions[act]
			if !ok {
				t.Fatalf("test table missing %s/%s", res, act)
			}
			for _, role := range allRoles {
				got, err := Require(role, res, act)
				wantAllowed := role.Level() >= min.Level() || min == RoleAnonymous

				if wantAllowed {
					if err != nil {
						t.Fatalf("%s %s as %q: expected allow, got %v", act, res, role, err)
					}
					if got != role {
						t.Fatalf("%s %s as %q: returned role %q, want caller's role", act, res, role, got)
					}
					continue
				}

				if err == nil {
					t.Fatalf("%s %s as %q: expected denial", act, res, role)
				}
				if role == RoleAnonymous && !errors.Is(err, ErrUnauthorized) {
					t.Fatalf("%s %s anonymous: expected ErrUnauthorized, got %v", act, res, err)
				}
				if role != RoleAnonymous && !errors.Is(err, ErrForbidden) {
					t.Fatalf("%s %s as %q: expected ErrForbidden, got %v", act, res, role, err)
				}
			}
		}
	}
}

func TestRequire_FailsClosedOnUnknownPair(t *testing.T) {
	if _, err := Require(RoleAdmin, Resource("unknown"), ActionRead); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for unknown resource, got %v", err)
	}
	if _, err := Require(RoleSuperAdmin, Resource("unknown"), ActionRead); err != nil {
		t.Fatalf("super-admin should pass the fail-closed tier, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"agent":       RoleAgent,
		"admin":       RoleAdmin,
		"super-admin": RoleSuperAdmin,
		"":            RoleAnonymous,
		"root":        RoleAnonymous,
		"Admin":       RoleAnonymous,
	}
	for raw, want := range cases {
		if got := ParseRole(raw); got != want {
			t.Fatalf("ParseRole(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestRoleOrdering(t *testing.T) {
	if !RoleSuperAdmin.Meets(RoleAdmin) || !RoleAdmin.Meets(RoleAgent) {
		t.Fatal("higher tiers must satisfy lower minimums")
	}
	if RoleAgent.Meets(RoleAdmin) || RoleAdmin.Meets(RoleSuperAdmin) {
		t.Fatal("lower tiers must not satisfy higher minimums")
	}
	if RoleAnonymous.Valid() {
		t.Fatal("anonymous must not count as an authenticated role")
	}
}
