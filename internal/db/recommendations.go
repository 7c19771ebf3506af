package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/skillswap/skillswap-api/internal/types"
)

// RecommendationSet is a stored batch of skill recommendations for a user.
type RecommendationSet struct {
	ID              uuid.UUID              `json:"id"`
	UserID          uuid.UUID              `json:"userId"`
	Recommendations []types.Recommendation `json:"recommendations"`
	Status          string                 `json:"status"`
	GeneratedAt     time.Time              `json:"generatedAt"`
}

// GetRecommendations retrieves the stored recommendation set for a user.
// Returns nil when none exists.
func (db *DB) GetRecommendations(ctx context.Context, userID uuid.UUID) (*RecommendationSet, error) {
	var set RecommendationSet
	var raw []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, recommendations, status, generated_at
		 FROM skill_recommendations WHERE user_id = $1`,
		userID,
	).Scan(&set.ID, &set.UserID, &raw, &set.Status, &set.GeneratedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recommendations: %w", err)
	}
	if err := json.Unmarshal(raw, &set.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}
	return &set, nil
}

// SaveRecommendations replaces the stored recommendation set for a user and
// stamps a fresh generation time.
func (db *DB) SaveRecommendations(ctx context.Context, userID uuid.UUID, recs []types.Recommendation) error {
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	_, err = db.pool.Exec(ctx,
		`INSERT INTO skill_recommendations (user_id, recommendations, status, generated_at)
		 VALUES ($1, $2, 'active', NOW())
		 ON CONFLICT (user_id) DO UPDATE SET recommendations = $2, status = 'active', generated_at = NOW()`,
		userID, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to save recommendations: %w", err)
	}
	return nil
}
