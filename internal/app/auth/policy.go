// Package auth implements the role-based authorization policy evaluated on
// every authenticated request.
package auth

import (
	"github.com/campushire/placement-portal/internal/app/models"
	"github.com/campushire/placement-portal/internal/pkg/apperrors"
)

// Operation names a gated action. Tenant scoping is not decided here; the
// repositories conjoin the caller's college on every query, so a cross-tenant
// reference surfaces as not-found rather than forbidden.
type Operation string

const (
	OpCreateJob               Operation = "job:create"
	OpUpdateJob               Operation = "job:update"
	OpDeleteJob               Operation = "job:delete"
	OpApplyToJob              Operation = "application:create"
	OpUpdateApplicationStatus Operation = "application:update_status"
	OpListUsers               Operation = "user:list"
	OpApproveUser             Operation = "user:approve"
	OpDeactivateUser          Operation = "user:deactivate"
	OpDeleteUser              Operation = "user:delete"
)

// allowedRoles is the role gate for each operation. Operations absent from
// the table are open to any authenticated user.
var allowedRoles = map[Operation][]models.RoleType{
	OpCreateJob:               {models.RoleAdmin, models.RoleModerator},
	OpUpdateJob:               {models.RoleAdmin, models.RoleModerator},
	OpDeleteJob:               {models.RoleAdmin, models.RoleModerator},
	OpApplyToJob:              {models.RoleStudent},
	OpUpdateApplicationStatus: {models.RoleAdmin, models.RoleModerator},
	OpListUsers:               {models.RoleAdmin},
	OpApproveUser:             {models.RoleAdmin},
	OpDeactivateUser:          {models.RoleAdmin},
	OpDeleteUser:              {models.RoleAdmin},
}

// CanPerform reports whether the role may perform the operation.
func CanPerform(role models.RoleType, op Operation) bool {
	roles, gated := allowedRoles[op]
	if !gated {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// Require returns a permission-denied error when the role may not perform the
// operation.
func Require(role models.RoleType, op Operation) error {
	if !CanPerform(role, op) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
