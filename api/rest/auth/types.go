package auth

type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// returned after a successful OAuth callback; the same token is also set as
// the session cookie
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
