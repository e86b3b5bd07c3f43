// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// SignupRequest represents the request body for creating an account.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary is the minimal user echo returned on signup.
// The password hash is never part of any response shape.
type UserSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// SignupResponse represents a successful signup.
type SignupResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// LoginResponse carries the session token issued on login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
