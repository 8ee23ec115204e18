package workflow

import (
	"testing"

	"github.com/piddash/pidgen/internal/constant"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		action  Action
		status  constant.ProjectStatus
		role    constant.Role
		allowed bool
	}{
		{"admin generates PID from pending generation", ActionGeneratePID, constant.StatusPendingPIDGeneration, constant.RoleAdmin, true},
		{"superadmin generates PID from needs revision", ActionGeneratePID, constant.StatusNeedsRevision, constant.RoleSuperAdmin, true},
		{"generate PID blocked once submitted", ActionGeneratePID, constant.StatusPendingSuperAdminApproval, constant.RoleAdmin, false},
		{"plain user cannot generate PID", ActionGeneratePID, constant.StatusPendingPIDGeneration, constant.RoleUser, false},
		{"submit for review only from the submission state", ActionSubmitForReview, constant.StatusPendingSubmission, constant.RoleAdmin, true},
		{"submit for review not from the superadmin state", ActionSubmitForReview, constant.StatusPendingSuperAdminApproval, constant.RoleAdmin, false},
		{"superadmin approve from superadmin state", ActionSuperAdminApprove, constant.StatusPendingSuperAdminApproval, constant.RoleSuperAdmin, true},
		{"admin cannot superadmin approve", ActionSuperAdminApprove, constant.StatusPendingSuperAdminApproval, constant.RoleAdmin, false},
		{"admin approve from admin review state", ActionAdminApprove, constant.StatusPendingAdminApproval, constant.RoleAdmin, true},
		{"admin reject from admin review state", ActionAdminReject, constant.StatusPendingAdminApproval, constant.RoleAdmin, true},
		{"delete allowed from any status", ActionDelete, constant.StatusApproved, constant.RoleAdmin, true},
		{"user cannot delete", ActionDelete, constant.StatusApproved, constant.RoleUser, false},
		{"edit from needs revision", ActionEdit, constant.StatusNeedsRevision, constant.RoleAdmin, true},
		{"edit blocked once approved", ActionEdit, constant.StatusApproved, constant.RoleSuperAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.action, tt.status, tt.role)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		action Action
		want   constant.ProjectStatus
	}{
		{ActionGeneratePID, constant.StatusPendingSubmission},
		{ActionSubmitForReview, constant.StatusPendingSuperAdminApproval},
		{ActionAdminApprove, constant.StatusApproved},
		{ActionAdminReject, constant.StatusRejected},
		{ActionSuperAdminApprove, constant.StatusApproved},
		{ActionSuperAdminReject, constant.StatusNeedsRevision},
	}

	for _, tt := range tests {
		got, ok := NextStatus(tt.action)
		assert.True(t, ok, "action %s should change status", tt.action)
		assert.Equal(t, tt.want, got)
	}

	_, ok := NextStatus(ActionEdit)
	assert.False(t, ok)
	_, ok = NextStatus(ActionDelete)
	assert.False(t, ok)
}
