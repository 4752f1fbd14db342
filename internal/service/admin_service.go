package service

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/campusplacement/internal/auth"
	"anoa.com/campusplacement/internal/dto"
	"anoa.com/campusplacement/internal/guard"
	"anoa.com/campusplacement/internal/model"
	"anoa.com/campusplacement/internal/repository"
	"anoa.com/campusplacement/pkg/apperror"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminService covers the super-admin account lifecycle operations: TPO
// provisioning and activation/verification/reset management.
type AdminService interface {
	CreateTPO(ctx context.Context, identity auth.Identity, input dto.CreateTPOInput) (*model.User, error)
	ListTPOs(ctx context.Context, identity auth.Identity) ([]*model.User, error)
	UpdateTPO(ctx context.Context, identity auth.Identity, tpoID uuid.UUID, input dto.UpdateTPOInput) (*model.User, error)
}

type adminService struct {
	users repository.UserRepository
}

func NewAdminService(users repository.UserRepository) AdminService {
	return &adminService{users: users}
}

func (s *adminService) CreateTPO(ctx context.Context, identity auth.Identity, input dto.CreateTPOInput) (*model.User, error) {
	if err := guard.Authorize(identity.Role, guard.OpProvisionTPO); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperror.Wrap(apperror.ErrConflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, apperror.Wrap(apperror.ErrConflict, "username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	createdBy := identity.UserID
	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         model.RoleTPO,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Institute:    normalizeOptional(input.Institute),
		Department:   normalizeOptional(input.Department),
		IsActive:     true,
		// Provisioned accounts start with an operator-chosen password that
		// must be rotated on first login.
		RequiresPasswordReset: true,
		CreatedBy:             &createdBy,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Wrap(apperror.ErrConflict, "username or email already registered")
		}
		return nil, err
	}

	return user, nil
}

func (s *adminService) ListTPOs(ctx context.Context, identity auth.Identity) ([]*model.User, error) {
	if err := guard.Authorize(identity.Role, guard.OpManageTPO); err != nil {
		return nil, err
	}

	return s.users.FindAllByRole(ctx, model.RoleTPO)
}

func (s *adminService) UpdateTPO(ctx context.Context, identity auth.Identity, tpoID uuid.UUID, input dto.UpdateTPOInput) (*model.User, error) {
	if err := guard.Authorize(identity.Role, guard.OpManageTPO); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, tpoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if user.Role != model.RoleTPO {
		return nil, apperror.Wrap(apperror.ErrNotFound, "no tpo account with that id")
	}

	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.IsVerified != nil {
		user.IsVerified = *input.IsVerified
	}
	if input.RequiresPasswordReset != nil {
		user.RequiresPasswordReset = *input.RequiresPasswordReset
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
