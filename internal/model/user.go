// Package model defines domain entities for the application.
package model

import "time"

// User represents an account holder.
// PasswordHash is never serialized into API responses.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    *string   `json:"firstName,omitempty"`
	LastName     *string   `json:"lastName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AuthContext carries the authenticated user's profile for the lifetime
// of a request. It is populated once by the auth middleware and read-only
// afterwards.
type AuthContext struct {
	UserID    int64
	Email     string
	FirstName *string
	LastName  *string
}
