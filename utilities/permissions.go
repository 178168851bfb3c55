package utilities

import "critico-backend/internal/model"

// ForbiddenMessage is the literal body clients see on any role or
// ownership denial. The frontend asserts on it, do not change.
const ForbiddenMessage = "Permisos insuficientes"

// Denial reasons, for logging.
const (
	ReasonAllowed      = "allowed"
	ReasonNotTeacher   = "caller is not a teacher"
	ReasonNotOwner     = "caller does not own the course"
	ReasonUnknownActor = "caller identity missing"
)

// Decision is the outcome of an authorization predicate.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true, Reason: ReasonAllowed}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// CanAccessDashboards decides whether the caller may read the teaching
// dashboards (student progress, course metrics). Role alone decides; it is
// evaluated before any ownership or existence check.
func CanAccessDashboards(callerRole string) Decision {
	if callerRole != model.RoleTeacher {
		return deny(ReasonNotTeacher)
	}
	return allow()
}

// CanManageCourse decides whether the caller may mutate resources under a
// course. Requires the teacher role and ownership of the course; the role
// branch short-circuits first.
func CanManageCourse(callerRole string, callerID, ownerID uint) Decision {
	if callerRole != model.RoleTeacher {
		return deny(ReasonNotTeacher)
	}
	if callerID == 0 {
		return deny(ReasonUnknownActor)
	}
	if callerID != ownerID {
		return deny(ReasonNotOwner)
	}
	return allow()
}
