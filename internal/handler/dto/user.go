package dto

import (
	"time"

	"github.com/skillfolio/skillfolio/internal/model"
)

// UpdateUserRequest represents the request body for a profile patch.
// Absent fields keep their stored values.
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Password  *string `json:"password,omitempty"`
}

// UserResponse represents a user profile in API responses.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserResponse converts a User model to UserResponse DTO.
func ToUserResponse(user *model.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ProfileResponse is the current-user view assembled from the auth
// context, without touching the database again.
type ProfileResponse struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// ToProfileResponse converts an AuthContext to ProfileResponse DTO.
func ToProfileResponse(authCtx *model.AuthContext) *ProfileResponse {
	return &ProfileResponse{
		ID:        authCtx.UserID,
		Email:     authCtx.Email,
		FirstName: authCtx.FirstName,
		LastName:  authCtx.LastName,
	}
}
