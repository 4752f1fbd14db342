package auth

import (
	"time"

	"anoa.com/campusplacement/internal/model"
	"anoa.com/campusplacement/pkg/apperror"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

// SessionName is the cookie carrying the encoded session in session mode.
const SessionName = "placement_session"

// SessionAuthenticator encodes the identity into a signed cookie value. The
// codec max age stays above the logical expiry so stale sessions fail the
// explicit expires_at check and report "token expired" rather than a generic
// decode failure.
type SessionAuthenticator struct {
	store *sessions.CookieStore
	ttl   time.Duration
}

func NewSessionAuthenticator(secret string, ttl time.Duration) *SessionAuthenticator {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(int((ttl + time.Hour) / time.Second))
	return &SessionAuthenticator{store: store, ttl: ttl}
}

func (a *SessionAuthenticator) Issue(identity Identity) (string, time.Time, error) {
	expiresAt := time.Now().Add(a.ttl)

	values := map[interface{}]interface{}{
		"user_id":    identity.UserID.String(),
		"username":   identity.Username,
		"role":       string(identity.Role),
		"expires_at": expiresAt.Unix(),
	}

	encoded, err := securecookie.EncodeMulti(SessionName, values, a.store.Codecs...)
	if err != nil {
		return "", time.Time{}, err
	}

	return encoded, expiresAt, nil
}

func (a *SessionAuthenticator) Validate(token string) (*Identity, error) {
	values := make(map[interface{}]interface{})
	if err := securecookie.DecodeMulti(SessionName, token, &values, a.store.Codecs...); err != nil {
		return nil, apperror.Wrap(apperror.ErrUnauthenticated, "invalid token")
	}

	expiresAt, ok := values["expires_at"].(int64)
	if !ok {
		return nil, apperror.Wrap(apperror.ErrUnauthenticated, "invalid token")
	}
	if time.Now().Unix() >= expiresAt {
		return nil, apperror.Wrap(apperror.ErrUnauthenticated, "token expired")
	}

	userIDStr, _ := values["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrUnauthenticated, "invalid token")
	}

	username, _ := values["username"].(string)
	role, _ := values["role"].(string)

	return &Identity{
		UserID:   userID,
		Username: username,
		Role:     model.Role(role),
	}, nil
}

// CookieOptions exposes the store options so the handler layer can mirror
// them when writing the Set-Cookie header.
func (a *SessionAuthenticator) CookieOptions() *sessions.Options {
	return a.store.Options
}
