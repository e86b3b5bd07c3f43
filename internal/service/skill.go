package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillfolio/skillfolio/internal/metrics"
	"github.com/skillfolio/skillfolio/internal/model"
	"github.com/skillfolio/skillfolio/internal/repository"
)

// Skill service errors.
var (
	ErrSkillNameRequired = errors.New("skill name is required")
	ErrSkillLinkRequired = errors.New("skill link is required")
	ErrSkillNotFound     = errors.New("skill not found")
)

// SkillStore is the persistence surface the skill service needs.
// Implemented by *repository.Repository.
type SkillStore interface {
	CreateSkill(ctx context.Context, skill *model.Skill) error
	GetSkill(ctx context.Context, userID, skillID int64) (*model.Skill, error)
	ListSkills(ctx context.Context, userID int64) ([]*model.Skill, error)
	UpdateSkill(ctx context.Context, userID, skillID int64, update repository.SkillUpdate) (*model.Skill, error)
	DeleteSkill(ctx context.Context, userID, skillID int64) error
}

// CreateSkillInput defines input for creating a skill.
type CreateSkillInput struct {
	Name        string
	Description *string
	Link        string
}

// UpdateSkillInput carries the optional fields of a skill patch.
type UpdateSkillInput struct {
	Name        *string
	Description *string
	Link        *string
}

// SkillService handles skill business logic. Every operation takes the
// owning user's id from the caller, never from request data.
type SkillService struct {
	store   SkillStore
	metrics metrics.Recorder
}

// NewSkillService creates a new SkillService.
func NewSkillService(store SkillStore, recorder metrics.Recorder) *SkillService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &SkillService{
		store:   store,
		metrics: recorder,
	}
}

// Create validates and persists a new skill for the owner.
func (s *SkillService) Create(ctx context.Context, userID int64, input CreateSkillInput) (*model.Skill, error) {
	if input.Name == "" {
		return nil, ErrSkillNameRequired
	}
	if input.Link == "" {
		return nil, ErrSkillLinkRequired
	}

	skill := &model.Skill{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Link:        input.Link,
	}

	if err := s.store.CreateSkill(ctx, skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	s.metrics.IncSkillCreated()

	return skill, nil
}

// Get retrieves one of the owner's skills.
func (s *SkillService) Get(ctx context.Context, userID, skillID int64) (*model.Skill, error) {
	skill, err := s.store.GetSkill(ctx, userID, skillID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return skill, nil
}

// List retrieves all of the owner's skills.
func (s *SkillService) List(ctx context.Context, userID int64) ([]*model.Skill, error) {
	skills, err := s.store.ListSkills(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

// Update applies the provided fields to one of the owner's skills.
// Ownership and the write are a single filtered statement in the store;
// zero rows reports not-found.
func (s *SkillService) Update(ctx context.Context, userID, skillID int64, input UpdateSkillInput) (*model.Skill, error) {
	if input.Name != nil && *input.Name == "" {
		return nil, ErrSkillNameRequired
	}
	if input.Link != nil && *input.Link == "" {
		return nil, ErrSkillLinkRequired
	}

	update := repository.SkillUpdate{
		Name:        input.Name,
		Description: input.Description,
		Link:        input.Link,
	}

	skill, err := s.store.UpdateSkill(ctx, userID, skillID, update)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}

	s.metrics.IncSkillUpdated()

	return skill, nil
}

// Delete removes one of the owner's skills.
func (s *SkillService) Delete(ctx context.Context, userID, skillID int64) error {
	if err := s.store.DeleteSkill(ctx, userID, skillID); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return fmt.Errorf("failed to delete skill: %w", err)
	}

	s.metrics.IncSkillDeleted()

	return nil
}
