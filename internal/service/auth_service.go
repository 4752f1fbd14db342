package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"anoa.com/campusplacement/internal/auth"
	"anoa.com/campusplacement/internal/dto"
	"anoa.com/campusplacement/internal/model"
	"anoa.com/campusplacement/internal/repository"
	"anoa.com/campusplacement/pkg/apperror"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	// Register creates a self-service account. The role is limited to
	// student and employer; TPO accounts only come from AdminService.
	Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error)
	// Login authenticates by (username, role). When the account is flagged
	// for a forced password reset it returns ErrPasswordResetRequired
	// together with a token, so the caller can still reach the reset
	// operation and nothing else.
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
	ResetPassword(ctx context.Context, userID uuid.UUID, newPassword string) error
}

type authService struct {
	users         repository.UserRepository
	authenticator auth.Authenticator
	rdb           *redis.Client
	loginThrottle time.Duration
}

func NewAuthService(users repository.UserRepository, authenticator auth.Authenticator, rdb *redis.Client, loginThrottle time.Duration) AuthService {
	return &authService{
		users:         users,
		authenticator: authenticator,
		rdb:           rdb,
		loginThrottle: loginThrottle,
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	role := model.Role(input.Role)
	if role != model.RoleStudent && role != model.RoleEmployer {
		return nil, apperror.Wrap(apperror.ErrForbidden, "self-service registration is limited to student and employer accounts")
	}

	if err := s.ensureUserUnique(ctx, input.Email, input.Username); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		IsActive:     true,
	}

	if role == model.RoleEmployer {
		user.CompanyName = normalizeOptional(input.CompanyName)
		user.CompanyWebsite = normalizeOptional(input.CompanyWebsite)
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The unique indexes are the authority; the pre-check above only
		// exists for friendlier messages.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Wrap(apperror.ErrConflict, "username or email already registered")
		}
		return nil, err
	}

	return s.buildAuthResponse(user)
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	allowed, err := CheckAndSetRateLimit(ctx, s.rdb, input.Username, "login", s.loginThrottle)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperror.ErrRateLimitExceeded
	}

	user, err := s.users.FindByUsernameAndRole(ctx, input.Username, model.Role(input.Role))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperror.ErrAccountDeactivated
	}

	if err := ClearRateLimit(ctx, s.rdb, input.Username, "login"); err != nil {
		return nil, err
	}

	resp, err := s.buildAuthResponse(user)
	if err != nil {
		return nil, err
	}

	if user.RequiresPasswordReset {
		// Credentials are valid, so the token is issued anyway; the
		// middleware restricts it to the reset operation.
		return resp, apperror.ErrPasswordResetRequired
	}

	return resp, nil
}

func (s *authService) ResetPassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	if !user.RequiresPasswordReset {
		return apperror.Wrap(apperror.ErrInvalidState, "account is not flagged for password reset")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hashedPassword)
	user.RequiresPasswordReset = false

	return s.users.Update(ctx, user)
}

func (s *authService) buildAuthResponse(user *model.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.authenticator.Issue(auth.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.Unix(),
		User:        user,
	}, nil
}

func (s *authService) ensureUserUnique(ctx context.Context, email, username string) error {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return apperror.Wrap(apperror.ErrConflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return apperror.Wrap(apperror.ErrConflict, "username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return nil
}
