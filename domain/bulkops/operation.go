// Package bulkops defines bulk operations over sets of entity
// identifiers: the closed operation enumeration, request validation,
// the per-item result shape, and the role/operation permission table.
package bulkops

// Operation is the closed set of bulk operations.
type Operation string

const (
	OpActivate   Operation = "activate"
	OpDeactivate Operation = "deactivate"
	OpRoleChange Operation = "role_change"
	OpDelete     Operation = "delete"
)

// Limits on a single bulk request.
const (
	MaxTargets      = 100
	MaxReasonLength = 500
)

// Valid reports whether op is a known operation.
func (op Operation) Valid() bool {
	switch op {
	case OpActivate, OpDeactivate, OpRoleChange, OpDelete:
		return true
	default:
		return false
	}
}

// RequiresReason reports whether the operation must carry a non-empty
// reason. Destructive operations (deactivate, delete) do.
func (op Operation) RequiresReason() bool {
	return op == OpDeactivate || op == OpDelete
}

// RequiresRole reports whether the operation must carry a target role.
func (op Operation) RequiresRole() bool {
	return op == OpRoleChange
}

// Phase tracks one orchestrator invocation through its lifecycle.
type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhaseValidating       Phase = "validating"
	PhaseRejected         Phase = "rejected"
	PhasePermissionDenied Phase = "permission_denied"
	PhaseExecuting        Phase = "executing"
	PhaseSucceeded        Phase = "succeeded"
	PhasePartiallyFailed  Phase = "partially_failed"
	PhaseFailed           Phase = "failed"
)
