// Package models defines the value records exchanged with the blog backend
// and kept in the local session.
package models

// Profile is the cached snapshot of the signed-in user.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is returned by the login and registration endpoints.
type AuthResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the confirmation through to the backend, which is
// the only place it is validated.
type RegisterRequest struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	Name                 string `json:"name"`
	PasswordConfirmation string `json:"password_confirmation"`
}
