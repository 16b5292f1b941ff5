package bulkops

import "eduadmin/domain/accounts"

// operationAllowed is the exhaustive (role, operation) capability
// table. Every known role has an entry for every operation; a role
// absent from the table holds no bulk capability at all. Role changes
// are additionally gated by the actor's manageable-role set.
var operationAllowed = map[accounts.Role]map[Operation]bool{
	accounts.RoleAdmin: {
		OpActivate:   true,
		OpDeactivate: true,
		OpRoleChange: true,
		OpDelete:     true,
	},
	accounts.RoleModerator: {
		OpActivate:   true,
		OpDeactivate: true,
		OpRoleChange: true,
		OpDelete:     false,
	},
	accounts.RoleInstructor: {
		OpActivate:   false,
		OpDeactivate: false,
		OpRoleChange: false,
		OpDelete:     false,
	},
	accounts.RoleStudent: {
		OpActivate:   false,
		OpDeactivate: false,
		OpRoleChange: false,
		OpDelete:     false,
	},
}

// RolePermissions is the permission context for one acting principal,
// answering capability questions from the table above.
type RolePermissions struct {
	actor accounts.Role
}

// NewRolePermissions builds a permission context for the given actor
// role.
func NewRolePermissions(actor accounts.Role) *RolePermissions {
	return &RolePermissions{actor: actor}
}

// Actor returns the acting principal's role.
func (p *RolePermissions) Actor() accounts.Role {
	return p.actor
}

// CanPerformOperation reports whether the actor may dispatch op. For
// role changes the target role must also be within the actor's
// manageable-role set.
func (p *RolePermissions) CanPerformOperation(op Operation, targetRole accounts.Role) bool {
	if !operationAllowed[p.actor][op] {
		return false
	}
	if op.RequiresRole() {
		return accounts.CanManageRole(p.actor, targetRole)
	}
	return true
}

// CanManageRole reports whether the actor administers the given role.
func (p *RolePermissions) CanManageRole(role accounts.Role) bool {
	return accounts.CanManageRole(p.actor, role)
}

// ManageableRoles returns the roles the actor may assign.
func (p *RolePermissions) ManageableRoles() []accounts.Role {
	return accounts.ManageableRoles(p.actor)
}
