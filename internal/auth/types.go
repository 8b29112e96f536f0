package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

// represents JWT claims for an admin session
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// an authenticated admin session
type Session struct {
	Email string
	Name  string
}

// resolves the session attached to a request, or nil when there is none.
// Injected into the admin middleware so handlers are testable without a
// real auth provider.
type SessionValidator func(r *http.Request) *Session
