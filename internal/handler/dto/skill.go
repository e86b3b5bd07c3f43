package dto

import (
	"time"

	"github.com/skillfolio/skillfolio/internal/model"
)

// CreateSkillRequest represents the request body for creating a skill.
type CreateSkillRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Link        string  `json:"link"`
}

// UpdateSkillRequest represents the request body for a skill patch.
// Absent fields keep their stored values.
type UpdateSkillRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty"`
}

// SkillResponse represents a skill in API responses.
type SkillResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToSkillResponse converts a Skill model to SkillResponse DTO.
func ToSkillResponse(skill *model.Skill) *SkillResponse {
	return &SkillResponse{
		ID:          skill.ID,
		UserID:      skill.UserID,
		Name:        skill.Name,
		Description: skill.Description,
		Link:        skill.Link,
		CreatedAt:   skill.CreatedAt,
		UpdatedAt:   skill.UpdatedAt,
	}
}

// ToSkillListResponse converts a slice of Skill models to response DTOs.
// An empty list marshals as [] rather than null.
func ToSkillListResponse(skills []*model.Skill) []SkillResponse {
	responses := make([]SkillResponse, len(skills))
	for i, skill := range skills {
		responses[i] = *ToSkillResponse(skill)
	}
	return responses
}
