package response

import (
	"log"
	"net/http"

	"anoa.com/campusplacement/internal/auth"
	"anoa.com/campusplacement/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key the auth middleware stores the
// validated caller under.
const IdentityKey = "identity"

// GetIdentity retrieves the authenticated caller from the context
func GetIdentity(c *gin.Context) (auth.Identity, error) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return auth.Identity{}, apperror.ErrUnauthenticated
	}

	identity, ok := value.(auth.Identity)
	if !ok {
		return auth.Identity{}, apperror.ErrUnauthenticated
	}

	return identity, nil
}

// Error standardized error response
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Internal details stay server-side
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
		c.JSON(code, gin.H{"error": apperror.ErrInternal.Error()})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
