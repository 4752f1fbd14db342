package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"anoa.com/campusplacement/internal/config"
	"anoa.com/campusplacement/internal/model"
	"anoa.com/campusplacement/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestEnsureSuperAdminProvisionsFromEnvCredentials(t *testing.T) {
	db := openTestDB(t)
	cfg := &config.Config{
		SuperAdminUsername: "root",
		SuperAdminEmail:    "root@example.com",
		SuperAdminPassword: "bootstrap-pass",
	}

	require.NoError(t, EnsureSuperAdmin(context.Background(), db, cfg))

	admin, err := repository.NewUserRepository(db).FindByUsernameAndRole(context.Background(), "root", model.RoleSuperAdmin)
	require.NoError(t, err)
	assert.True(t, admin.IsActive)
	assert.True(t, admin.IsVerified)
	assert.False(t, admin.RequiresPasswordReset)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("bootstrap-pass")))
}

func TestEnsureSuperAdminFailsWithoutCredentials(t *testing.T) {
	db := openTestDB(t)

	err := EnsureSuperAdmin(context.Background(), db, &config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPER_ADMIN_USERNAME")
}

func TestEnsureSuperAdminIdempotent(t *testing.T) {
	db := openTestDB(t)
	cfg := &config.Config{
		SuperAdminUsername: "root",
		SuperAdminEmail:    "root@example.com",
		SuperAdminPassword: "bootstrap-pass",
	}

	require.NoError(t, EnsureSuperAdmin(context.Background(), db, cfg))

	// Second start with no credentials in the environment must not fail:
	// the existing account satisfies the invariant.
	require.NoError(t, EnsureSuperAdmin(context.Background(), db, &config.Config{}))

	count, err := repository.NewUserRepository(db).CountByRole(context.Background(), model.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
