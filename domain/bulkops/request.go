package bulkops

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"eduadmin/domain/accounts"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Request is a bulk operation over a set of entity identifiers,
// dispatched as a single call. Role is required for role changes only;
// Reason is required for deactivate and delete.
type Request struct {
	Operation Operation     `json:"operation" validate:"required,oneof=activate deactivate role_change delete"`
	TargetIDs []string      `json:"target_ids" validate:"required,min=1,max=100,dive,required"`
	Role      accounts.Role `json:"role,omitempty"`
	Reason    string        `json:"reason,omitempty" validate:"max=500"`
}

// Validate checks structural limits and the operation's conditional
// requirements. manageable is the acting principal's manageable-role
// set, consulted for role changes. An empty return means the request
// may be dispatched.
func (r Request) Validate(manageable []accounts.Role) []string {
	var details []string

	if err := validate.Struct(r); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range fieldErrs {
				details = append(details, describeFieldError(fieldErr))
			}
		} else {
			details = append(details, err.Error())
		}
	}

	if r.Operation.RequiresReason() && strings.TrimSpace(r.Reason) == "" {
		details = append(details, fmt.Sprintf("a reason is required for %s operations", r.Operation))
	}

	if r.Operation.RequiresRole() {
		switch {
		case r.Role == "":
			details = append(details, "a target role is required for role changes")
		case !r.Role.Valid():
			details = append(details, fmt.Sprintf("unknown role %q", r.Role))
		case !containsRole(manageable, r.Role):
			details = append(details, fmt.Sprintf("role %q is not assignable by the acting principal", r.Role))
		}
	}

	return details
}

func describeFieldError(fieldErr validator.FieldError) string {
	switch fieldErr.Field() {
	case "Operation":
		return fmt.Sprintf("operation %q is not a recognized bulk operation", fieldErr.Value())
	case "TargetIDs":
		switch fieldErr.Tag() {
		case "required", "min":
			return "at least one target identifier is required"
		case "max":
			return fmt.Sprintf("a bulk operation may target at most %d identifiers", MaxTargets)
		default:
			return "target identifiers must be non-empty"
		}
	case "Reason":
		return fmt.Sprintf("reason may be at most %d characters", MaxReasonLength)
	default:
		return fieldErr.Error()
	}
}

func containsRole(roles []accounts.Role, role accounts.Role) bool {
	for _, candidate := range roles {
		if candidate == role {
			return true
		}
	}
	return false
}
