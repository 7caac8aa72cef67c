package authz

// Actor is the authenticated principal attached to every request.
type Actor struct {
	UserID string
	Role   Role
}

// Subject is the minimal view of the user a check targets.
type Subject struct {
	UserID       string
	SupervisorID string
}

// CanEditTasks reports whether the role may toggle task completion.
func CanEditTasks(role Role) bool {
	switch role {
	case RoleSupervisor, RoleHR:
		return true
	case RoleEmployee, RoleManager:
		return false
	default:
		return false
	}
}

// CanAdvancePhases reports whether the role may move a journey to the
// next stage.
func CanAdvancePhases(role Role) bool {
	switch role {
	case RoleSupervisor, RoleHR:
		return true
	case RoleEmployee, RoleManager:
		return false
	default:
		return false
	}
}

// CanValidateTasks reports whether the role may apply the HR validation
// layer on top of a completed task.
func CanValidateTasks(role Role) bool {
	switch role {
	case RoleHR:
		return true
	case RoleEmployee, RoleSupervisor, RoleManager:
		return false
	default:
		return false
	}
}

// CanViewUser applies the hierarchy rule for supervisor-scoped reads:
// a user sees their own record, a supervisor sees direct reports, and
// hr bypasses the hierarchy entirely.
func CanViewUser(actor Actor, subject Subject) bool {
	if actor.Role == RoleHR {
		return true
	}
	if actor.UserID == subject.UserID {
		return true
	}
	return subject.SupervisorID != "" && subject.SupervisorID == actor.UserID
}
