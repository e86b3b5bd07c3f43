package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/skillfolio/skillfolio/internal/model"
	"github.com/skillfolio/skillfolio/internal/repository"
)

// MemStore is an in-memory stand-in for *repository.Repository. It
// mirrors the repository's sentinel errors and its ownership-filter
// semantics so service and handler tests can run without Postgres.
type MemStore struct {
	mu          sync.Mutex
	users       map[int64]*model.User
	skills      map[int64]*model.Skill
	nextUserID  int64
	nextSkillID int64
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		users:       make(map[int64]*model.User),
		skills:      make(map[int64]*model.Skill),
		nextUserID:  1,
		nextSkillID: 1,
	}
}

// CreateUser inserts a user, enforcing email uniqueness.
func (m *MemStore) CreateUser(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}

	now := time.Now().UTC()
	user.ID = m.nextUserID
	user.CreatedAt = now
	user.UpdatedAt = now
	m.nextUserID++

	stored := *user
	m.users[user.ID] = &stored
	return nil
}

// GetUserByID retrieves a user by id.
func (m *MemStore) GetUserByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// GetUserByEmail retrieves a user by email.
func (m *MemStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// UpdateUser applies non-nil fields to a user.
func (m *MemStore) UpdateUser(_ context.Context, id int64, update repository.UserUpdate) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	if update.Email != nil {
		for otherID, other := range m.users {
			if otherID != id && other.Email == *update.Email {
				return nil, repository.ErrEmailTaken
			}
		}
		user.Email = *update.Email
	}
	if update.FirstName != nil {
		user.FirstName = update.FirstName
	}
	if update.LastName != nil {
		user.LastName = update.LastName
	}
	if update.PasswordHash != nil {
		user.PasswordHash = *update.PasswordHash
	}
	user.UpdatedAt = time.Now().UTC()

	copied := *user
	return &copied, nil
}

// DeleteUserRow removes a user outright. Not part of any store
// interface; used to simulate a subject deleted after token issuance.
func (m *MemStore) DeleteUserRow(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
}

// CreateSkill inserts a skill for its owner.
func (m *MemStore) CreateSkill(_ context.Context, skill *model.Skill) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	skill.ID = m.nextSkillID
	skill.CreatedAt = now
	skill.UpdatedAt = now
	m.nextSkillID++

	stored := *skill
	m.skills[skill.ID] = &stored
	return nil
}

// GetSkill retrieves a skill filtered by (id, owner).
func (m *MemStore) GetSkill(_ context.Context, userID, skillID int64) (*model.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	skill, ok := m.skills[skillID]
	if !ok || skill.UserID != userID {
		return nil, repository.ErrSkillNotFound
	}
	copied := *skill
	return &copied, nil
}

// ListSkills retrieves all skills owned by a user, oldest first.
func (m *MemStore) ListSkills(_ context.Context, userID int64) ([]*model.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	skills := make([]*model.Skill, 0)
	for id := int64(1); id < m.nextSkillID; id++ {
		if skill, ok := m.skills[id]; ok && skill.UserID == userID {
			copied := *skill
			skills = append(skills, &copied)
		}
	}
	return skills, nil
}

// UpdateSkill applies non-nil fields to a skill filtered by (id, owner).
func (m *MemStore) UpdateSkill(_ context.Context, userID, skillID int64, update repository.SkillUpdate) (*model.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	skill, ok := m.skills[skillID]
	if !ok || skill.UserID != userID {
		return nil, repository.ErrSkillNotFound
	}

	if update.Name != nil {
		skill.Name = *update.Name
	}
	if update.Description != nil {
		skill.Description = update.Description
	}
	if update.Link != nil {
		skill.Link = *update.Link
	}
	skill.UpdatedAt = time.Now().UTC()

	copied := *skill
	return &copied, nil
}

// DeleteSkill removes a skill filtered by (id, owner).
func (m *MemStore) DeleteSkill(_ context.Context, userID, skillID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	skill, ok := m.skills[skillID]
	if !ok || skill.UserID != userID {
		return repository.ErrSkillNotFound
	}
	delete(m.skills, skillID)
	return nil
}
