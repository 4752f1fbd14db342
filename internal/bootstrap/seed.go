package bootstrap

import (
	"context"
	"fmt"
	"log"

	"anoa.com/campusplacement/internal/config"
	"anoa.com/campusplacement/internal/model"
	"anoa.com/campusplacement/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Job{},
		&model.JobApplication{},
	)
}

// EnsureSuperAdmin provisions the first super-admin account. There is no
// baked-in default credential: when none exists the operator must supply
// one through the environment or startup fails.
func EnsureSuperAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	users := repository.NewUserRepository(db)

	count, err := users.CountByRole(ctx, model.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.SuperAdminUsername == "" || cfg.SuperAdminEmail == "" || cfg.SuperAdminPassword == "" {
		return fmt.Errorf("no super_admin account exists: set SUPER_ADMIN_USERNAME, SUPER_ADMIN_EMAIL and SUPER_ADMIN_PASSWORD to provision one")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:     cfg.SuperAdminUsername,
		Email:        cfg.SuperAdminEmail,
		PasswordHash: string(hashedPassword),
		Role:         model.RoleSuperAdmin,
		IsActive:     true,
		IsVerified:   true,
	}

	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("super admin account %q provisioned", admin.Username)
	return nil
}
