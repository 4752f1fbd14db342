package auth

import (
	"time"

	"anoa.com/campusplacement/internal/model"
	"github.com/google/uuid"
)

// Identity is the validated caller extracted from a credential.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Role     model.Role
}

// Authenticator issues and validates opaque credential strings. The bearer
// and cookie-session implementations are interchangeable; services only ever
// see an Identity.
type Authenticator interface {
	Issue(identity Identity) (token string, expiresAt time.Time, err error)
	Validate(token string) (*Identity, error)
}
