package server

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-api/internal/db"
	"github.com/skillswap/skillswap-api/internal/types"
)

// DBClient is the storage surface the server depends on. *db.DB satisfies
// it; tests substitute a mock.
type DBClient interface {
	// Users
	CreateUser(ctx context.Context, email, displayName string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	UpdateProfile(ctx context.Context, u *db.User) error
	ListCompleteProfiles(ctx context.Context, excludeID uuid.UUID) ([]db.User, error)

	// Skills
	ListAvailableSkills(ctx context.Context, limit int) ([]db.Skill, error)
	ListSkillsByOwner(ctx context.Context, ownerID uuid.UUID) ([]db.Skill, error)
	CreateSkill(ctx context.Context, s *db.Skill) (uuid.UUID, error)
	GetSkill(ctx context.Context, id uuid.UUID) (*db.Skill, error)
	DeleteSkill(ctx context.Context, id, ownerID uuid.UUID) error

	// Messages
	CreateMessage(ctx context.Context, m *db.Message) (uuid.UUID, error)
	ListMessagesForUser(ctx context.Context, userID uuid.UUID, email string) ([]db.Message, error)

	// Matches
	CreateMatch(ctx context.Context, m *db.Match) (uuid.UUID, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*db.Match, error)
	ListMatchesForUser(ctx context.Context, userID uuid.UUID) ([]db.Match, error)
	DecideMatch(ctx context.Context, id uuid.UUID, status string) (bool, error)

	// Notifications
	CreateNotification(ctx context.Context, n *db.Notification) (uuid.UUID, error)
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]db.Notification, error)
	ListNotificationsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]db.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error
	ClearNotifications(ctx context.Context, userID uuid.UUID) error

	// Recommendations
	GetRecommendations(ctx context.Context, userID uuid.UUID) (*db.RecommendationSet, error)
	SaveRecommendations(ctx context.Context, userID uuid.UUID, recs []types.Recommendation) error
}

var _ DBClient = (*db.DB)(nil)
