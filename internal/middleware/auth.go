package middleware

import (
	"errors"
	"net/http"
	"strings"

	"anoa.com/campusplacement/internal/auth"
	"anoa.com/campusplacement/internal/model"
	"anoa.com/campusplacement/internal/repository"
	"anoa.com/campusplacement/pkg/apperror"
	"anoa.com/campusplacement/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthMiddleware struct {
	users         repository.UserRepository
	authenticator auth.Authenticator
}

func NewAuthMiddleware(users repository.UserRepository, authenticator auth.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		users:         users,
		authenticator: authenticator,
	}
}

// resetExemptPaths are reachable while requires_password_reset is set.
var resetExemptPaths = map[string]bool{
	"/api/auth/reset-password": true,
	"/api/auth/logout":         true,
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			c.Abort()
			return
		}

		identity, err := m.authenticator.Validate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		// The token alone is not enough: the account state can change
		// between issue and use.
		user, err := m.users.FindByID(c.Request.Context(), identity.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			} else {
				response.Error(c, err)
			}
			c.Abort()
			return
		}

		if !user.IsActive {
			response.Error(c, apperror.ErrAccountDeactivated)
			c.Abort()
			return
		}

		if user.RequiresPasswordReset && !resetExemptPaths[c.FullPath()] {
			response.Error(c, apperror.ErrPasswordResetRequired)
			c.Abort()
			return
		}

		c.Set(response.IdentityKey, auth.Identity{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		})
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allow list. It runs
// after RequireAuth.
func (m *AuthMiddleware) RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := response.GetIdentity(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		response.Error(c, apperror.ErrForbidden)
		c.Abort()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	// Session mode carries the credential in a cookie instead.
	if cookie, err := c.Cookie(auth.SessionName); err == nil {
		return cookie
	}

	return ""
}
