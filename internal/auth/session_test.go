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

func TestSessionIssueAndValidate(t *testing.T) {
	a := NewSessionAuthenticator("session-test-secret", time.Hour)

	identity := Identity{
		UserID:   uuid.New(),
		Username: "bob",
		Role:     model.RoleTPO,
	}

	token, expiresAt, err := a.Issue(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	got, err := a.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, got.UserID)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, model.RoleTPO, got.Role)
}

func TestSessionValidateExpired(t *testing.T) {
	a := NewSessionAuthenticator("session-test-secret", -time.Minute)

	token, _, err := a.Issue(Identity{UserID: uuid.New(), Username: "bob", Role: model.RoleTPO})
	require.NoError(t, err)

	_, err = a.Validate(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))
	assert.Equal(t, "token expired", err.Error())
}

func TestSessionValidateTampered(t *testing.T) {
	a := NewSessionAuthenticator("session-test-secret", time.Hour)

	token, _, err := a.Issue(Identity{UserID: uuid.New(), Username: "bob", Role: model.RoleTPO})
	require.NoError(t, err)

	_, err = a.Validate(token + "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))
}

func TestSessionValidateForeignSecret(t *testing.T) {
	issuer := NewSessionAuthenticator("secret-one", time.Hour)
	validator := NewSessionAuthenticator("secret-two", time.Hour)

	token, _, err := issuer.Issue(Identity{UserID: uuid.New(), Username: "bob", Role: model.RoleTPO})
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))
}
