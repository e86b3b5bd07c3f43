package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillfolio/skillfolio/internal/auth"
	"github.com/skillfolio/skillfolio/internal/metrics"
	"github.com/skillfolio/skillfolio/internal/model"
	"github.com/skillfolio/skillfolio/internal/repository"
)

// ErrNoFields is returned for a profile patch with an empty body.
var ErrNoFields = errors.New("no fields to update")

// ProfileInvalidator drops a cached profile after a write so the auth
// middleware re-reads the row. Implemented by *cache.Cache.
type ProfileInvalidator interface {
	DeleteUser(ctx context.Context, userID int64) error
}

// UpdateUserInput carries the optional fields of a profile patch.
type UpdateUserInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Password  *string
}

// UserService handles profile reads and edits.
type UserService struct {
	store   UserStore
	cache   ProfileInvalidator
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
// Pass nil for cache when no profile cache is in use.
func NewUserService(store UserStore, cache ProfileInvalidator, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:   store,
		cache:   cache,
		metrics: recorder,
	}
}

// Update applies the provided fields to the user's profile. A supplied
// password is hashed here; the stored record never sees the plaintext.
func (s *UserService) Update(ctx context.Context, userID int64, input UpdateUserInput) (*model.User, error) {
	if input.Email == nil && input.FirstName == nil && input.LastName == nil && input.Password == nil {
		return nil, ErrNoFields
	}

	update := repository.UserUpdate{
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if err := validateEmail(email); err != nil {
			return nil, err
		}
		update.Email = &email
	}

	if input.Password != nil {
		if err := validatePassword(*input.Password); err != nil {
			return nil, err
		}
		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		update.PasswordHash = &hash
	}

	user, err := s.store.UpdateUser(ctx, userID, update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.DeleteUser(ctx, userID)
	}

	s.metrics.IncProfileUpdated()

	return user, nil
}
