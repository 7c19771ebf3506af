package server

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-api/internal/db"
	"github.com/skillswap/skillswap-api/internal/types"
)

// mockDB is an in-memory DBClient for handler and service tests.
type mockDB struct {
	mu              sync.Mutex
	users           map[uuid.UUID]*db.User
	skills          map[uuid.UUID]*db.Skill
	messages        map[uuid.UUID]*db.Message
	matches         map[uuid.UUID]*db.Match
	notifications   map[uuid.UUID]*db.Notification
	recommendations map[uuid.UUID]*db.RecommendationSet

	failures map[string]error // method name -> forced error
	calls    map[string]int   // method name -> invocation count
}

func newMockDB() *mockDB {
	return &mockDB{
		users:           make(map[uuid.UUID]*db.User),
		skills:          make(map[uuid.UUID]*db.Skill),
		messages:        make(map[uuid.UUID]*db.Message),
		matches:         make(map[uuid.UUID]*db.Match),
		notifications:   make(map[uuid.UUID]*db.Notification),
		recommendations: make(map[uuid.UUID]*db.RecommendationSet),
		failures:        make(map[string]error),
		calls:           make(map[string]int),
	}
}

func (m *mockDB) failOn(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[method] = fmt.Errorf("forced failure: %s", method)
}

// forced records the call and returns any forced error for the method.
// Callers hold the lock.
func (m *mockDB) forced(method string) error {
	m.calls[method]++
	return m.failures[method]
}

func (m *mockDB) callCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// Users

func (m *mockDB) CreateUser(_ context.Context, email, displayName string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("CreateUser"); err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	now := time.Now()
	m.users[id] = &db.User{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		Skills:      db.StringArray{},
		Interests:   db.StringArray{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return id, nil
}

func (m *mockDB) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("GetUser"); err != nil {
		return nil, err
	}
	u, ok := m.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *mockDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("GetUserByEmail"); err != nil {
		return nil, err
	}
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockDB) CheckEmailExists(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("CheckEmailExists"); err != nil {
		return false, err
	}
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDB) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("UpdatePassword"); err != nil {
		return err
	}
	u, ok := m.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

func (m *mockDB) UpdateProfile(_ context.Context, in *db.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("UpdateProfile"); err != nil {
		return err
	}
	u, ok := m.users[in.ID]
	if !ok {
		return fmt.Errorf("user not found: %s", in.ID)
	}
	u.DisplayName = in.DisplayName
	u.PhotoURL = in.PhotoURL
	u.Skills = in.Skills
	u.Interests = in.Interests
	u.LearningGoals = in.LearningGoals
	u.IsProfileComplete = in.IsProfileComplete
	u.UpdatedAt = time.Now()
	return nil
}

func (m *mockDB) ListCompleteProfiles(_ context.Context, excludeID uuid.UUID) ([]db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("ListCompleteProfiles"); err != nil {
		return nil, err
	}
	var out []db.User
	for _, u := range m.users {
		if u.ID != excludeID && u.IsProfileComplete {
			out = append(out, *u)
		}
	}
	return out, nil
}

// Skills

func (m *mockDB) ListAvailableSkills(_ context.Context, _ int) ([]db.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("ListAvailableSkills"); err != nil {
		return nil, err
	}
	var out []db.Skill
	for _, s := range m.skills {
		if s.IsAvailable {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockDB) ListSkillsByOwner(_ context.Context, ownerID uuid.UUID) ([]db.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("ListSkillsByOwner"); err != nil {
		return nil, err
	}
	var out []db.Skill
	for _, s := range m.skills {
		if s.UserID == ownerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockDB) CreateSkill(_ context.Context, s *db.Skill) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("CreateSkill"); err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	cp := *s
	cp.ID = id
	cp.CreatedAt = time.Now()
	m.skills[id] = &cp
	return id, nil
}

func (m *mockDB) GetSkill(_ context.Context, id uuid.UUID) (*db.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("GetSkill"); err != nil {
		return nil, err
	}
	s, ok := m.skills[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *mockDB) DeleteSkill(_ context.Context, id, ownerID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("DeleteSkill"); err != nil {
		return err
	}
	s, ok := m.skills[id]
	if !ok || s.UserID != ownerID {
		return fmt.Errorf("skill not found: %s", id)
	}
	delete(m.skills, id)
	return nil
}

// Messages

func (m *mockDB) CreateMessage(_ context.Context, msg *db.Message) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("CreateMessage"); err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	cp := *msg
	cp.ID = id
	cp.Status = db.MessageStatusSent
	cp.CreatedAt = time.Now()
	m.messages[id] = &cp
	return id, nil
}

func (m *mockDB) ListMessagesForUser(_ context.Context, userID uuid.UUID, email string) ([]db.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("ListMessagesForUser"); err != nil {
		return nil, err
	}
	var out []db.Message
	for _, msg := range m.messages {
		if msg.SenderID == userID || msg.RecipientEmail == email {
			out = append(out, *msg)
		}
	}
	return out, nil
}

// Matches

func (m *mockDB) CreateMatch(_ context.Context, match *db.Match) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("CreateMatch"); err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	cp := *match
	cp.ID = id
	cp.CreatedAt = time.Now()
	m.matches[id] = &cp
	return id, nil
}

func (m *mockDB) GetMatch(_ context.Context, id uuid.UUID) (*db.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("GetMatch"); err != nil {
		return nil, err
	}
	match, ok := m.matches[id]
	if !ok {
		return nil, nil
	}
	cp := *match
	return &cp, nil
}

func (m *mockDB) ListMatchesForUser(_ context.Context, userID uuid.UUID) ([]db.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("ListMatchesForUser"); err != nil {
		return nil, err
	}
	var out []db.Match
	for _, match := range m.matches {
		if match.InitiatorID == userID || match.PartnerID == userID {
			out = append(out, *match)
		}
	}
	return out, nil
}

func (m *mockDB) DecideMatch(_ context.Context, id uuid.UUID, status string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("DecideMatch"); err != nil {
		return false, err
	}
	match, ok := m.matches[id]
	if !ok || match.Status != db.MatchStatusPending {
		return false, nil
	}
	now := time.Now()
	match.Status = status
	match.DecidedAt = &now
	return true, nil
}

// Notifications

func (m *mockDB) CreateNotification(_ context.Context, n *db.Notification) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("CreateNotification"); err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	cp := *n
	cp.ID = id
	cp.CreatedAt = time.Now()
	m.notifications[id] = &cp
	return id, nil
}

func (m *mockDB) ListNotifications(_ context.Context, userID uuid.UUID) ([]db.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("ListNotifications"); err != nil {
		return nil, err
	}
	var out []db.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	// Newest first, like the real query.
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockDB) ListNotificationsSince(_ context.Context, userID uuid.UUID, since time.Time) ([]db.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("ListNotificationsSince"); err != nil {
		return nil, err
	}
	var out []db.Notification
	for _, n := range m.notifications {
		if n.UserID == userID && n.CreatedAt.After(since) {
			out = append(out, *n)
		}
	}
	// Oldest first, like the real query.
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *mockDB) MarkNotificationRead(_ context.Context, id, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("MarkNotificationRead"); err != nil {
		return err
	}
	n, ok := m.notifications[id]
	if !ok || n.UserID != userID {
		return fmt.Errorf("notification not found: %s", id)
	}
	n.Read = true
	return nil
}

func (m *mockDB) ClearNotifications(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("ClearNotifications"); err != nil {
		return err
	}
	for id, n := range m.notifications {
		if n.UserID == userID {
			delete(m.notifications, id)
		}
	}
	return nil
}

// Recommendations

func (m *mockDB) GetRecommendations(_ context.Context, userID uuid.UUID) (*db.RecommendationSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("GetRecommendations"); err != nil {
		return nil, err
	}
	set, ok := m.recommendations[userID]
	if !ok {
		return nil, nil
	}
	cp := *set
	return &cp, nil
}

func (m *mockDB) SaveRecommendations(_ context.Context, userID uuid.UUID, recs []types.Recommendation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forced("SaveRecommendations"); err != nil {
		return err
	}
	m.recommendations[userID] = &db.RecommendationSet{
		UserID:          userID,
		Recommendations: recs,
		GeneratedAt:     time.Now(),
	}
	return nil
}

var _ DBClient = (*mockDB)(nil)
