package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const skillColumns = `id, name, category, description, type, proficiency_level,
	user_id, user_email, is_available, created_at`

// ListAvailableSkills retrieves available skill postings, newest first.
// Rows missing a name or category are skipped rather than failing the whole
// listing; one malformed record must not take the page down.
func (db *DB) ListAvailableSkills(ctx context.Context, limit int) ([]Skill, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT `+skillColumns+` FROM skills
		 WHERE is_available = TRUE
		 ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.Type,
			&s.ProficiencyLevel, &s.UserID, &s.UserEmail, &s.IsAvailable, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		if s.Name == "" || s.Category == "" {
			continue
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// ListSkillsByOwner retrieves all postings owned by the given user.
func (db *DB) ListSkillsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+skillColumns+` FROM skills
		 WHERE user_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills for owner: %w", err)
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.Type,
			&s.ProficiencyLevel, &s.UserID, &s.UserEmail, &s.IsAvailable, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// CreateSkill inserts a skill posting and returns its ID. The server stamps
// ownership and availability; callers must have validated required fields.
func (db *DB) CreateSkill(ctx context.Context, s *Skill) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO skills (name, category, description, type, proficiency_level,
		 user_id, user_email, is_available)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		 RETURNING id`,
		s.Name, s.Category, s.Description, s.Type, s.ProficiencyLevel,
		s.UserID, s.UserEmail,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return id, nil
}

// GetSkill retrieves a skill posting by ID. Returns nil when not found.
func (db *DB) GetSkill(ctx context.Context, id uuid.UUID) (*Skill, error) {
	var s Skill
	err := db.pool.QueryRow(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.Type,
		&s.ProficiencyLevel, &s.UserID, &s.UserEmail, &s.IsAvailable, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return &s, nil
}

// DeleteSkill removes a posting. The owner constraint lives in the query so a
// non-owner delete is indistinguishable from not-found.
func (db *DB) DeleteSkill(ctx context.Context, id, ownerID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("skill not found: %s", id)
	}
	return nil
}
