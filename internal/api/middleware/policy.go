package middleware

// Policy describes the access requirements of a single route. It is built
// at route-registration time and consulted directly by the guards.
type Policy struct {
	public bool
	roles  []string
}

// Public marks a route reachable without authentication.
func Public() Policy { return Policy{public: true} }

// Authenticated marks a route open to any authenticated caller.
func Authenticated() Policy { return Policy{} }

// RequireRoles restricts a route to callers holding one of the given roles.
func RequireRoles(roles ...string) Policy { return Policy{roles: roles} }

// IsPublic reports whether the route skips authentication entirely.
func (p Policy) IsPublic() bool { return p.public }

// Allows reports whether a caller with the given role satisfies the policy.
// Policies without declared roles allow any authenticated caller.
func (p Policy) Allows(role string) bool {
	if p.public || len(p.roles) == 0 {
		return true
	}
	for _, r := range p.roles {
		if r == role {
			return true
		}
	}
	return false
}
