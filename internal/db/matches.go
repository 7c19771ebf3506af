package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const matchColumns = `id, initiator_id, partner_id, initiator_skills, partner_skills,
	status, compatibility, created_at, decided_at`

// CreateMatch writes a pending match with both skill snapshots and the
// computed compatibility score.
func (db *DB) CreateMatch(ctx context.Context, m *Match) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO matches (initiator_id, partner_id, initiator_skills, partner_skills, status, compatibility)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		m.InitiatorID, m.PartnerID, m.InitiatorSkills, m.PartnerSkills,
		MatchStatusPending, m.Compatibility,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create match: %w", err)
	}
	return id, nil
}

// GetMatch retrieves a match by ID. Returns nil when not found.
func (db *DB) GetMatch(ctx context.Context, id uuid.UUID) (*Match, error) {
	var m Match
	err := db.pool.QueryRow(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE id = $1`, id,
	).Scan(&m.ID, &m.InitiatorID, &m.PartnerID, &m.InitiatorSkills, &m.PartnerSkills,
		&m.Status, &m.Compatibility, &m.CreatedAt, &m.DecidedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return &m, nil
}

// ListMatchesForUser retrieves matches where the user participates.
func (db *DB) ListMatchesForUser(ctx context.Context, userID uuid.UUID) ([]Match, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+matchColumns+` FROM matches
		 WHERE initiator_id = $1 OR partner_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ID, &m.InitiatorID, &m.PartnerID, &m.InitiatorSkills,
			&m.PartnerSkills, &m.Status, &m.Compatibility, &m.CreatedAt, &m.DecidedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// DecideMatch transitions a pending match to accepted or rejected. The WHERE
// clause guards the transition: only the pending state can be decided, so a
// second decision affects zero rows.
func (db *DB) DecideMatch(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	if status != MatchStatusAccepted && status != MatchStatusRejected {
		return false, fmt.Errorf("invalid match decision: %s", status)
	}
	result, err := db.pool.Exec(ctx,
		`UPDATE matches SET status = $1, decided_at = NOW()
		 WHERE id = $2 AND status = $3`,
		status, id, MatchStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to decide match: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
