package handler

import (
	"errors"
	"net/http"

	"anoa.com/campusplacement/internal/auth"
	"anoa.com/campusplacement/internal/dto"
	"anoa.com/campusplacement/internal/service"
	"anoa.com/campusplacement/pkg/apperror"
	"anoa.com/campusplacement/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
	// sessionAuth is non-nil in session mode; the handler then mirrors the
	// issued token into a cookie.
	sessionAuth *auth.SessionAuthenticator
}

func NewAuthHandler(authService service.AuthService, sessionAuth *auth.SessionAuthenticator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessionAuth: sessionAuth,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	res, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, res.AccessToken)
	c.JSON(http.StatusCreated, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	res, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		// A reset-flagged account still gets its token; it only opens the
		// reset operation.
		if errors.Is(err, apperror.ErrPasswordResetRequired) && res != nil {
			h.setSessionCookie(c, res.AccessToken)
			c.JSON(http.StatusForbidden, gin.H{
				"error":        err.Error(),
				"access_token": res.AccessToken,
				"token_type":   res.TokenType,
				"expires_at":   res.ExpiresAt,
			})
			return
		}
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, res.AccessToken)
	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if h.sessionAuth != nil {
		opts := h.sessionAuth.CookieOptions()
		c.SetCookie(auth.SessionName, "", -1, opts.Path, opts.Domain, opts.Secure, opts.HttpOnly)
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	identity, err := response.GetIdentity(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), identity.UserID, input.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	if h.sessionAuth == nil {
		return
	}
	opts := h.sessionAuth.CookieOptions()
	c.SetCookie(auth.SessionName, token, opts.MaxAge, opts.Path, opts.Domain, opts.Secure, opts.HttpOnly)
}
