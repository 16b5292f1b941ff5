package accounts

// Role is the closed set of account roles. String comparisons outside
// this package are a smell; use the predicates below.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleModerator  Role = "moderator"
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
)

// AllRoles lists every known role in descending privilege order.
var AllRoles = []Role{RoleAdmin, RoleModerator, RoleInstructor, RoleStudent}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleInstructor, RoleStudent:
		return true
	default:
		return false
	}
}

// rank orders roles for management checks; lower is more privileged.
func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 0
	case RoleModerator:
		return 1
	case RoleInstructor:
		return 2
	case RoleStudent:
		return 3
	default:
		return 4
	}
}

// ManageableRoles returns the roles an actor with role r may assign or
// administer: strictly less privileged roles only.
func ManageableRoles(r Role) []Role {
	var out []Role
	for _, candidate := range AllRoles {
		if candidate.rank() > r.rank() {
			out = append(out, candidate)
		}
	}
	return out
}

// CanManageRole reports whether an actor with role r administers target.
func CanManageRole(r, target Role) bool {
	return r.Valid() && target.Valid() && target.rank() > r.rank()
}
