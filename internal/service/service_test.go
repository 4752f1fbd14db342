package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"anoa.com/campusplacement/internal/auth"
	"anoa.com/campusplacement/internal/model"
	"anoa.com/campusplacement/internal/repository"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a throwaway sqlite database with the same TranslateError
// setting as production, so unique-constraint paths surface as
// gorm.ErrDuplicatedKey here too.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Job{}, &model.JobApplication{}))
	return db
}

func testAuthenticator() auth.Authenticator {
	return auth.NewJWTAuthenticator("test-secret", time.Hour)
}

func seedUser(t *testing.T, db *gorm.DB, username string, role model.Role, password string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), user))
	return user
}

func identityOf(user *model.User) auth.Identity {
	return auth.Identity{UserID: user.ID, Username: user.Username, Role: user.Role}
}
