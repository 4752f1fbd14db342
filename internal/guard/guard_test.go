package guard

import (
	"errors"
	"testing"

	"anoa.com/campusplacement/internal/model"
	"anoa.com/campusplacement/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name    string
		role    model.Role
		op      Operation
		allowed bool
	}{
		{"super admin provisions tpo", model.RoleSuperAdmin, OpProvisionTPO, true},
		{"tpo cannot provision tpo", model.RoleTPO, OpProvisionTPO, false},
		{"student cannot manage tpo", model.RoleStudent, OpManageTPO, false},
		{"employer creates job", model.RoleEmployer, OpCreateJob, true},
		{"student cannot create job", model.RoleStudent, OpCreateJob, false},
		{"employer closes job", model.RoleEmployer, OpCloseJob, true},
		{"tpo cannot close job", model.RoleTPO, OpCloseJob, false},
		{"student applies", model.RoleStudent, OpApplyToJob, true},
		{"employer cannot apply", model.RoleEmployer, OpApplyToJob, false},
		{"student lists own applications", model.RoleStudent, OpListOwnApplications, true},
		{"tpo lists jobs", model.RoleTPO, OpListJobs, true},
		{"employer updates profile", model.RoleEmployer, OpUpdateProfile, true},
		{"tpo resets password", model.RoleTPO, OpResetPassword, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.role, tc.op)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, apperror.ErrForbidden))
			}
		})
	}
}

func TestAuthorizeUnknownOperation(t *testing.T) {
	err := Authorize(model.RoleSuperAdmin, Operation("no.such.op"))
	assert.True(t, errors.Is(err, apperror.ErrForbidden))
}
