// Package guard centralizes role-based authorization. Every guarded service
// operation consults one table instead of branching on roles inline, so the
// full permission surface can be audited in this file alone.
package guard

import (
	"anoa.com/campusplacement/internal/model"
	"anoa.com/campusplacement/pkg/apperror"
)

type Operation string

const (
	OpProvisionTPO        Operation = "admin.provision_tpo"
	OpManageTPO           Operation = "admin.manage_tpo"
	OpCreateJob           Operation = "job.create"
	OpCloseJob            Operation = "job.close"
	OpApplyToJob          Operation = "job.apply"
	OpListOwnApplications Operation = "job.list_applied"
	OpListJobs            Operation = "job.list"
	OpUpdateProfile       Operation = "account.update_profile"
	OpResetPassword       Operation = "account.reset_password"
)

var allRoles = []model.Role{model.RoleStudent, model.RoleEmployer, model.RoleTPO, model.RoleSuperAdmin}

var allowedRoles = map[Operation][]model.Role{
	OpProvisionTPO:        {model.RoleSuperAdmin},
	OpManageTPO:           {model.RoleSuperAdmin},
	OpCreateJob:           {model.RoleEmployer},
	OpCloseJob:            {model.RoleEmployer},
	OpApplyToJob:          {model.RoleStudent},
	OpListOwnApplications: {model.RoleStudent},
	OpListJobs:            allRoles,
	OpUpdateProfile:       allRoles,
	OpResetPassword:       allRoles,
}

// Authorize reports whether role may perform op. Unknown operations are
// denied.
func Authorize(role model.Role, op Operation) error {
	for _, allowed := range allowedRoles[op] {
		if role == allowed {
			return nil
		}
	}
	return apperror.ErrForbidden
}
