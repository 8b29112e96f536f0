package auth

import (
	"net/http"
	"strings"

	"codeberg.org/devfolio/server/internal/auth"
	"codeberg.org/devfolio/server/internal/config"
	"codeberg.org/devfolio/server/internal/errors"
	"codeberg.org/devfolio/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

const sessionCookieMaxAge = 7 * 24 * 60 * 60

// BeginHandler godoc
// @Summary Start the OAuth login flow
// @Tags auth
// @Param provider path string true "oauth provider" Enums(google, github)
// @Success 307 "redirect to the provider"
// @Router /api/auth/{provider} [get]
func BeginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// gothic reads the provider from the query string
		q := c.Request.URL.Query()
		q.Set("provider", c.Param("provider"))
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// CallbackHandler godoc
// @Summary Complete the OAuth login flow
// @Description Exchanges the provider callback for a session. Only emails on
// @Description the admin allowlist get a session; everyone else is rejected.
// @Tags auth
// @Produce json
// @Success 200 {object} LoginResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/auth/{provider}/callback [get]
func CallbackHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Request.URL.Query()
		q.Set("provider", c.Param("provider"))
		c.Request.URL.RawQuery = q.Encode()

		user, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			logger.Warn("oauth callback failed", "provider", c.Param("provider"), "error", err)
			errors.Unauthorized(c)
			return
		}

		if !auth.IsAdminEmail(cfg.AdminEmails, user.Email) {
			logger.Warn("login rejected, email not on allowlist", "email", user.Email)
			errors.Unauthorized(c)
			return
		}

		token, err := auth.GenerateJWT(user.Email, user.Name)
		if err != nil {
			errors.InternalError(c, "failed to create session", err)
			return
		}

		secure := strings.HasPrefix(cfg.BaseURL, "https://")
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(auth.SessionCookieName, token, sessionCookieMaxAge, "/", "", secure, true)

		c.JSON(http.StatusOK, LoginResponse{
			User:  UserResponse{Email: user.Email, Name: user.Name},
			Token: token,
		})
	}
}

// LogoutHandler godoc
// @Summary End the admin session
// @Tags auth
// @Success 204 "session cleared"
// @Router /api/auth/logout [post]
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
		c.Status(http.StatusNoContent)
	}
}

// MeHandler godoc
// @Summary Current admin identity
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/auth/me [get]
func MeHandler(validate auth.SessionValidator) gin.HandlerFunc {
	if validate == nil {
		validate = auth.SessionFromRequest
	}

	return func(c *gin.Context) {
		session := validate(c.Request)
		if session == nil {
			errors.Unauthorized(c)
			return
		}

		c.JSON(http.StatusOK, UserResponse{Email: session.Email, Name: session.Name})
	}
}
