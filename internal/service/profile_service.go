package service

import (
	"context"
	"errors"
	"strings"

	"anoa.com/campusplacement/internal/auth"
	"anoa.com/campusplacement/internal/dto"
	"anoa.com/campusplacement/internal/guard"
	"anoa.com/campusplacement/internal/model"
	"anoa.com/campusplacement/internal/repository"
	"anoa.com/campusplacement/pkg/apperror"
	"anoa.com/campusplacement/pkg/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileService interface {
	Me(ctx context.Context, userID uuid.UUID) (*model.User, error)
	Update(ctx context.Context, identity auth.Identity, input dto.UpdateProfileInput) (*model.User, error)
	UploadResume(ctx context.Context, identity auth.Identity, file *dto.ResumeFile) (*model.User, error)
}

type profileService struct {
	users           repository.UserRepository
	documentStorage storage.DocumentStorage
}

func NewProfileService(users repository.UserRepository, documentStorage storage.DocumentStorage) ProfileService {
	return &profileService{
		users:           users,
		documentStorage: documentStorage,
	}
}

func (s *profileService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *profileService) Update(ctx context.Context, identity auth.Identity, input dto.UpdateProfileInput) (*model.User, error) {
	if err := guard.Authorize(identity.Role, guard.OpUpdateProfile); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}

	if input.Email != nil && *input.Email != "" && *input.Email != user.Email {
		if _, err := s.users.FindByEmail(ctx, *input.Email); err == nil {
			return nil, apperror.Wrap(apperror.ErrConflict, "email already registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *input.Email
	}

	// Role-specific fields are only writable by the matching role.
	if input.CompanyName != nil || input.CompanyWebsite != nil {
		if user.Role != model.RoleEmployer {
			return nil, apperror.Wrap(apperror.ErrForbidden, "company fields are only editable by employer accounts")
		}
		if input.CompanyName != nil {
			user.CompanyName = normalizeOptional(input.CompanyName)
		}
		if input.CompanyWebsite != nil {
			user.CompanyWebsite = normalizeOptional(input.CompanyWebsite)
		}
	}

	if input.Institute != nil || input.Department != nil {
		if user.Role != model.RoleTPO {
			return nil, apperror.Wrap(apperror.ErrForbidden, "institute fields are only editable by tpo accounts")
		}
		if input.Institute != nil {
			user.Institute = normalizeOptional(input.Institute)
		}
		if input.Department != nil {
			user.Department = normalizeOptional(input.Department)
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Wrap(apperror.ErrConflict, "email already registered")
		}
		return nil, err
	}

	return user, nil
}

func (s *profileService) UploadResume(ctx context.Context, identity auth.Identity, file *dto.ResumeFile) (*model.User, error) {
	if identity.Role != model.RoleStudent {
		return nil, apperror.Wrap(apperror.ErrForbidden, "only students can upload a resume")
	}
	if s.documentStorage == nil {
		return nil, apperror.Wrap(apperror.ErrInternal, "document storage is not configured")
	}
	if file == nil || file.Reader == nil {
		return nil, apperror.Wrap(apperror.ErrInvalidInput, "resume file is required")
	}

	user, err := s.users.FindByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	url, err := s.documentStorage.UploadDocument(ctx, file.Reader, "resumes", file.FileName)
	if err != nil {
		return nil, err
	}

	// Best effort: the old document is unreachable after the URL swap.
	if user.ResumeURL != nil {
		_ = s.documentStorage.DeleteDocument(ctx, *user.ResumeURL)
	}

	user.ResumeURL = &url
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	result := trimmed
	return &result
}
