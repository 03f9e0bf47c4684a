package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/pkg/apperrors"
)

func TestCanPerform(t *testing.T) {
	tests := []struct {
		name string
		role models.RoleType
		op   Operation
		want bool
	}{
		{"admin creates job", models.RoleAdmin, OpCreateJob, true},
		{"moderator creates job", models.RoleModerator, OpCreateJob, true},
		{"student creates job", models.RoleStudent, OpCreateJob, false},
		{"moderator updates job", models.RoleModerator, OpUpdateJob, true},
		{"student deletes job", models.RoleStudent, OpDeleteJob, false},
		{"student applies", models.RoleStudent, OpApplyToJob, true},
		{"admin applies", models.RoleAdmin, OpApplyToJob, false},
		{"moderator applies", models.RoleModerator, OpApplyToJob, false},
		{"admin updates application status", models.RoleAdmin, OpUpdateApplicationStatus, true},
		{"moderator updates application status", models.RoleModerator, OpUpdateApplicationStatus, true},
		{"student updates application status", models.RoleStudent, OpUpdateApplicationStatus, false},
		{"admin lists users", models.RoleAdmin, OpListUsers, true},
		{"moderator lists users", models.RoleModerator, OpListUsers, false},
		{"moderator approves user", models.RoleModerator, OpApproveUser, false},
		{"admin approves user", models.RoleAdmin, OpApproveUser, true},
		{"admin deletes user", models.RoleAdmin, OpDeleteUser, true},
		{"student deletes user", models.RoleStudent, OpDeleteUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPerform(tt.role, tt.op))
		})
	}
}

func TestCanPerformUngatedOperation(t *testing.T) {
	// Operations not present in the table are open to any authenticated role.
	assert.True(t, CanPerform(models.RoleStudent, Operation("job:read")))
	assert.True(t, CanPerform(models.RoleModerator, Operation("job:read")))
}

func TestRequire(t *testing.T) {
	assert.NoError(t, Require(models.RoleAdmin, OpDeleteUser))

	err := Require(models.RoleStudent, OpDeleteUser)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
