package auth

import (
	"errors"
	"testing"
	"time"

	"anoa.com/campusplacement/internal/model"
	"anoa.com/campusplacement/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssueAndValidate(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", time.Hour)

	identity := Identity{
		UserID:   uuid.New(),
		Username: "alice",
		Role:     model.RoleStudent,
	}

	token, expiresAt, err := a.Issue(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	got, err := a.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, got.UserID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, model.RoleStudent, got.Role)
}

func TestJWTValidateExpired(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", -time.Minute)

	token, _, err := a.Issue(Identity{UserID: uuid.New(), Username: "alice", Role: model.RoleStudent})
	require.NoError(t, err)

	_, err = a.Validate(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))
	assert.Equal(t, "token expired", err.Error())
}

func TestJWTValidateGarbage(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", time.Hour)

	_, err := a.Validate("not-a-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))
	assert.Equal(t, "invalid token", err.Error())
}

func TestJWTValidateWrongSecret(t *testing.T) {
	issuer := NewJWTAuthenticator("secret-one", time.Hour)
	validator := NewJWTAuthenticator("secret-two", time.Hour)

	token, _, err := issuer.Issue(Identity{UserID: uuid.New(), Username: "alice", Role: model.RoleStudent})
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))
}
