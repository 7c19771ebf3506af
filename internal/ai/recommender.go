package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/skillswap/skillswap-api/internal/db"
	"github.com/skillswap/skillswap-api/internal/types"
)

// cacheTTL is how long a stored recommendation set stays fresh before the
// next request regenerates it.
const cacheTTL = 7 * 24 * time.Hour

// maxRecommendations caps how many items a single generation returns.
const maxRecommendations = 5

// UserContext is the slice of a profile the recommender needs.
type UserContext struct {
	ID          uuid.UUID
	DisplayName string
	Skills      []string
	Interests   []string
}

// Store persists generated recommendation sets. *db.DB satisfies this.
type Store interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID) (*db.RecommendationSet, error)
	SaveRecommendations(ctx context.Context, userID uuid.UUID, recs []types.Recommendation) error
}

// Recommender generates personalized skill recommendations, caching results
// and degrading to a fixed local set on any AI failure.
type Recommender struct {
	client Client // nil means fallback-only mode
	store  Store
	logger *slog.Logger
	group  singleflight.Group
	now    func() time.Time
}

// NewRecommender creates a Recommender. client may be nil (no API key), in
// which case every generation returns the fallback set.
func NewRecommender(client Client, store Store, logger *slog.Logger) *Recommender {
	return &Recommender{
		client: client,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// SkillRecommendations returns recommendations for the user, reusing a
// stored set younger than seven days. It never returns an error: any
// failure along the way yields the fallback set.
func (r *Recommender) SkillRecommendations(ctx context.Context, user UserContext) []types.Recommendation {
	if cached := r.cached(ctx, user.ID); cached != nil {
		return cached
	}

	// Collapse concurrent generations for the same user into one call.
	result, _, _ := r.group.Do(user.ID.String(), func() (any, error) {
		recs := r.generate(ctx, user)
		if r.store != nil {
			if err := r.store.SaveRecommendations(ctx, user.ID, recs); err != nil {
				r.logger.Warn("failed to store recommendations", "user", user.ID, "error", err)
			}
		}
		return recs, nil
	})

	return result.([]types.Recommendation)
}

func (r *Recommender) cached(ctx context.Context, userID uuid.UUID) []types.Recommendation {
	if r.store == nil {
		return nil
	}
	set, err := r.store.GetRecommendations(ctx, userID)
	if err != nil {
		// A cache read failure is a miss, not an error.
		r.logger.Debug("recommendation cache read failed", "user", userID, "error", err)
		return nil
	}
	if set == nil || len(set.Recommendations) == 0 {
		return nil
	}
	if r.now().Sub(set.GeneratedAt) > cacheTTL {
		return nil
	}
	return set.Recommendations
}

func (r *Recommender) generate(ctx context.Context, user UserContext) []types.Recommendation {
	if r.client == nil {
		return FallbackRecommendations()
	}

	raw, err := r.client.GenerateJSON(ctx, recommendationSystemPrompt, recommendationPrompt(user))
	if err != nil {
		r.logger.Warn("AI recommendation call failed, using fallback", "user", user.ID, "error", err)
		return FallbackRecommendations()
	}

	recs, err := parseRecommendations(raw)
	if err != nil {
		r.logger.Warn("AI recommendation response rejected, using fallback", "user", user.ID, "error", err)
		return FallbackRecommendations()
	}
	return recs
}

// parseRecommendations is the strict parse-or-fail step: the raw response
// must validate against the schema before it is decoded. Partially-shaped
// data never leaks past this point.
func parseRecommendations(raw string) ([]types.Recommendation, error) {
	raw = CleanJSONBlock(raw)
	if err := validateRecommendationJSON(raw); err != nil {
		return nil, err
	}

	var recs []types.Recommendation
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("empty recommendation list")
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs, nil
}

const recommendationSystemPrompt = "You are a career development assistant that generates personalized skill recommendations based on a user's profile."

func recommendationPrompt(user UserContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d skill recommendations for a professional with the following profile:\n", maxRecommendations)
	fmt.Fprintf(&b, "- Name: %s\n", user.DisplayName)
	fmt.Fprintf(&b, "- Known skills: %s\n", joinOrNone(user.Skills))
	fmt.Fprintf(&b, "- Interests: %s\n", joinOrNone(user.Interests))
	b.WriteString(`
Respond with a JSON array only, in this shape:
[
  {
    "title": "Skill Title",
    "name": "Skill Name",
    "description": "Skill description",
    "category": "Skill Category",
    "proficiencyLevel": "Beginner/Intermediate/Expert"
  }
]`)
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
