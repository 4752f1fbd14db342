package auth

import (
	"errors"
	"fmt"
	"time"

	"anoa.com/campusplacement/internal/model"
	"anoa.com/campusplacement/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type tokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type JWTAuthenticator struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTAuthenticator(secret string, ttl time.Duration) *JWTAuthenticator {
	return &JWTAuthenticator{secret: []byte(secret), ttl: ttl}
}

func (a *JWTAuthenticator) Issue(identity Identity) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(a.ttl)

	claims := tokenClaims{
		Username: identity.Username,
		Role:     string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func (a *JWTAuthenticator) Validate(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.Wrap(apperror.ErrUnauthenticated, "token expired")
		}
		return nil, apperror.Wrap(apperror.ErrUnauthenticated, "invalid token")
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, apperror.Wrap(apperror.ErrUnauthenticated, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrUnauthenticated, "invalid token")
	}

	return &Identity{
		UserID:   userID,
		Username: claims.Username,
		Role:     model.Role(claims.Role),
	}, nil
}
