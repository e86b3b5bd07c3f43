package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/skillfolio/skillfolio/internal/model"
)

// ErrSkillNotFound covers both a missing row and a row owned by a
// different user. The two cases are indistinguishable on purpose.
var ErrSkillNotFound = errors.New("skill not found")

// SkillUpdate carries the optional fields of a partial skill update.
// Nil fields are left untouched.
type SkillUpdate struct {
	Name        *string
	Description *string
	Link        *string
}

const skillColumns = `id, user_id, name, description, link, created_at, updated_at`

// CreateSkill inserts a new skill for its owner and fills in the
// generated id and timestamps.
func (r *Repository) CreateSkill(ctx context.Context, skill *model.Skill) error {
	query := `
		INSERT INTO skills (user_id, name, description, link)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		skill.UserID,
		skill.Name,
		skill.Description,
		skill.Link,
	).Scan(&skill.ID, &skill.CreatedAt, &skill.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}

	return nil
}

// GetSkill retrieves a skill by id, filtered by owner.
func (r *Repository) GetSkill(ctx context.Context, userID, skillID int64) (*model.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1 AND user_id = $2`

	skill, err := scanSkill(r.pool.QueryRow(ctx, query, skillID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}

	return skill, nil
}

// ListSkills retrieves all skills owned by a user, oldest first.
func (r *Repository) ListSkills(ctx context.Context, userID int64) ([]*model.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE user_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := make([]*model.Skill, 0)
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, skill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skills: %w", err)
	}

	return skills, nil
}

// UpdateSkill applies the provided fields to a skill row, filtered by
// owner, and returns the updated record. The ownership check and the
// write are a single statement; zero rows means not found.
func (r *Repository) UpdateSkill(ctx context.Context, userID, skillID int64, update SkillUpdate) (*model.Skill, error) {
	query := `UPDATE skills SET updated_at = NOW()`
	args := []any{skillID, userID}
	argIndex := 3

	appendSet := func(column string, value any) {
		query += fmt.Sprintf(", %s = $%d", column, argIndex)
		args = append(args, value)
		argIndex++
	}

	if update.Name != nil {
		appendSet("name", *update.Name)
	}
	if update.Description != nil {
		appendSet("description", *update.Description)
	}
	if update.Link != nil {
		appendSet("link", *update.Link)
	}

	query += ` WHERE id = $1 AND user_id = $2 RETURNING ` + skillColumns

	skill, err := scanSkill(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}

	return skill, nil
}

// DeleteSkill removes a skill row, filtered by owner.
func (r *Repository) DeleteSkill(ctx context.Context, userID, skillID int64) error {
	query := `DELETE FROM skills WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, skillID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSkillNotFound
	}

	return nil
}

// scanSkill scans a single row into a Skill model.
func scanSkill(row pgx.Row) (*model.Skill, error) {
	var skill model.Skill
	err := row.Scan(
		&skill.ID,
		&skill.UserID,
		&skill.Name,
		&skill.Description,
		&skill.Link,
		&skill.CreatedAt,
		&skill.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &skill, nil
}
