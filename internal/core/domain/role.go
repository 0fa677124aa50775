package domain

// Role is the privilege tier carried by an authenticated session.
// Tiers form a total order: agent < admin < super-admin.
type Role string

const (
	// RoleAnonymous is the zero role of an unauthenticated caller.
	RoleAnonymous Role = ""

	RoleAgent      Role = "agent"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

var roleLevels = map[Role]int{
	RoleAgent:      1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// ParseRole maps a raw string to a known Role. Anything that is not one of
// the three valid tiers resolves to RoleAnonymous.
func ParseRole(s string) Role {
	r := Role(s)
	if _, ok := roleLevels[r]; !ok {
		return RoleAnonymous
	}
	return r
}

// Level returns the numeric rank of the role; anonymous ranks 0.
func (r Role) Level() int {
	return roleLevels[r]
}

// Valid reports whether the role is one of the three authenticated tiers.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// Meets reports whether the role satisfies the given minimum tier.
func (r Role) Meets(min Role) bool {
	return r.Level() >= min.Level()
}
