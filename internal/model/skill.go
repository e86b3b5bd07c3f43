package model

import "time"

// Skill is a learning-resource entry owned by exactly one user.
// Rows are only ever addressed by (id, user_id) together, so a skill
// id on its own never resolves across users.
type Skill struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
