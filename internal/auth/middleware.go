package auth

import (
	"net/http"
	"strings"

	"codeberg.org/devfolio/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// resolves the admin session from the session cookie or a Bearer header.
// This is the default SessionValidator used in production wiring.
func SessionFromRequest(r *http.Request) *Session {
	token := ""

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		token = cookie.Value
	}

	if token == "" {
		authHeader := r.Header.Get("Authorization")
		parts := strings.Split(authHeader, " ")

		if len(parts) == 2 && parts[0] == "Bearer" {
			token = parts[1]
		}
	}

	if token == "" {
		return nil
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		return nil
	}

	return &Session{Email: claims.Email, Name: claims.Name}
}

// gates admin routes behind a valid session. Aborts with a uniform 401
// before any upstream call is attempted; downstream handlers can read the
// session email from the context.
func AdminAuthMiddleware(validate SessionValidator) gin.HandlerFunc {
	if validate == nil {
		validate = SessionFromRequest
	}

	return func(c *gin.Context) {
		session := validate(c.Request)

		if session == nil {
			errors.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("admin_email", session.Email)
		c.Set("admin_name", session.Name)

		c.Next()
	}
}

// extracts the admin email from context after AdminAuthMiddleware
func GetAdminEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("admin_email")

	if !exists {
		return "", false
	}

	return email.(string), true
}
