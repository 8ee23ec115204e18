package workflow

import (
	"fmt"

	"github.com/piddash/pidgen/internal/constant"
)

// Action names a workflow transition a dashboard user can trigger on a
// project row.
type Action string

const (
	ActionCreate            Action = "create"
	ActionEdit              Action = "edit"
	ActionUpdate            Action = "update"
	ActionGeneratePID       Action = "generate-pid"
	ActionSubmitForReview   Action = "submit-for-superadmin-review"
	ActionAdminApprove      Action = "admin-approve"
	ActionAdminReject       Action = "admin-reject"
	ActionSuperAdminApprove Action = "superadmin-approve"
	ActionSuperAdminReject  Action = "superadmin-reject"
	ActionDelete            Action = "delete"
)

type transitionRule struct {
	// from lists the statuses the action is allowed in; empty means any.
	from []constant.ProjectStatus
	// roles lists the roles allowed to trigger the action.
	roles []constant.Role
}

var adminOrSuper = []constant.Role{constant.RoleAdmin, constant.RoleSuperAdmin}

// transitionTable is the single source of truth for which (status, role)
// pairs may run which transition. The dashboard renders buttons off the same
// rules, so a precondition violation here means a stale or forged request.
var transitionTable = map[Action]transitionRule{
	ActionCreate: {roles: adminOrSuper},
	ActionEdit: {
		from:  []constant.ProjectStatus{constant.StatusPendingPIDGeneration, constant.StatusNeedsRevision},
		roles: adminOrSuper,
	},
	ActionUpdate: {
		from:  []constant.ProjectStatus{constant.StatusPendingPIDGeneration, constant.StatusNeedsRevision},
		roles: adminOrSuper,
	},
	ActionGeneratePID: {
		from:  []constant.ProjectStatus{constant.StatusPendingPIDGeneration, constant.StatusNeedsRevision},
		roles: adminOrSuper,
	},
	ActionSubmitForReview: {
		from:  []constant.ProjectStatus{constant.StatusPendingSubmission},
		roles: adminOrSuper,
	},
	ActionAdminApprove: {
		from:  []constant.ProjectStatus{constant.StatusPendingAdminApproval},
		roles: []constant.Role{constant.RoleAdmin},
	},
	ActionAdminReject: {
		from:  []constant.ProjectStatus{constant.StatusPendingAdminApproval},
		roles: []constant.Role{constant.RoleAdmin},
	},
	ActionSuperAdminApprove: {
		from:  []constant.ProjectStatus{constant.StatusPendingSuperAdminApproval},
		roles: []constant.Role{constant.RoleSuperAdmin},
	},
	ActionSuperAdminReject: {
		from:  []constant.ProjectStatus{constant.StatusPendingSuperAdminApproval},
		roles: []constant.Role{constant.RoleSuperAdmin},
	},
	ActionDelete: {roles: adminOrSuper},
}

// successor maps each status-changing action to the status the project lands
// in when the remote call succeeds.
var successor = map[Action]constant.ProjectStatus{
	ActionGeneratePID:       constant.StatusPendingSubmission,
	ActionSubmitForReview:   constant.StatusPendingSuperAdminApproval,
	ActionAdminApprove:      constant.StatusApproved,
	ActionAdminReject:       constant.StatusRejected,
	ActionSuperAdminApprove: constant.StatusApproved,
	ActionSuperAdminReject:  constant.StatusNeedsRevision,
}

// CanTransition reports whether the action may run for the given project
// status and actor role. Returned errors carry a human-readable message
// suitable for the dashboard error banner.
func CanTransition(action Action, status constant.ProjectStatus, role constant.Role) error {
	rule, ok := transitionTable[action]
	if !ok {
		return fmt.Errorf("unknown workflow action %q", action)
	}

	allowedRole := false
	for _, r := range rule.roles {
		if r == role {
			allowedRole = true
			break
		}
	}
	if !allowedRole {
		return fmt.Errorf("role %s is not allowed to %s a project", role, action)
	}

	return StatusAllows(action, status)
}

// StatusAllows checks only the status precondition for an action. The server
// re-runs this on every transition so a stale dashboard cannot move a project
// that another user already advanced.
func StatusAllows(action Action, status constant.ProjectStatus) error {
	rule, ok := transitionTable[action]
	if !ok {
		return fmt.Errorf("unknown workflow action %q", action)
	}
	if len(rule.from) == 0 {
		return nil
	}
	for _, s := range rule.from {
		if s == status {
			return nil
		}
	}
	return fmt.Errorf("cannot %s a project in status %q", action, status)
}

// NextStatus returns the status a project moves to when the action succeeds.
// The second return is false for actions that do not change status.
func NextStatus(action Action) (constant.ProjectStatus, bool) {
	s, ok := successor[action]
	return s, ok
}
