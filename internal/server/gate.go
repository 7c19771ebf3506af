package server

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-api/internal/db"
	"github.com/skillswap/skillswap-api/internal/server/middleware"
)

// GateResult is the access decision for a request. Clients resolve a
// loading state on their side; the server always decides synchronously.
type GateResult string

const (
	StateUnauthenticated GateResult = "unauthenticated"
	StateIncomplete      GateResult = "incomplete"
	StateComplete        GateResult = "complete"
)

// SessionUser is the authenticated principal as seen by the gate.
type SessionUser struct {
	ID              uuid.UUID
	Email           string
	DisplayName     string
	ProfileComplete bool
}

// GateState classifies a principal. A nil principal is unauthenticated; a
// principal missing a display name or email, or not yet marked complete,
// is incomplete.
func GateState(principal *SessionUser) GateResult {
	if principal == nil {
		return StateUnauthenticated
	}
	if principal.DisplayName == "" || principal.Email == "" || !principal.ProfileComplete {
		return StateIncomplete
	}
	return StateComplete
}

// profileGate tracks which users have already been warned about an
// incomplete profile so the warning notification fires at most once until
// their profile state changes.
type profileGate struct {
	mu     sync.Mutex
	warned map[uuid.UUID]bool
}

func newProfileGate() *profileGate {
	return &profileGate{warned: make(map[uuid.UUID]bool)}
}

func (g *profileGate) shouldWarn(userID uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.warned[userID] {
		return false
	}
	g.warned[userID] = true
	return true
}

func (g *profileGate) reset(userID uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.warned, userID)
}

// requireCompleteProfile wraps a handler so it only runs for users whose
// profile passes the gate. Incomplete profiles get a 403 with a redirect
// hint and, once per user, a warning notification.
func (s *Server) requireCompleteProfile(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.GetUserID(r)
		if err != nil {
			s.jsonResponse(w, http.StatusUnauthorized, map[string]string{
				"error":    "unauthorized",
				"redirect": "/login",
			})
			return
		}

		principal, err := s.sessionUser(r)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
			return
		}

		switch GateState(principal) {
		case StateUnauthenticated:
			s.jsonResponse(w, http.StatusUnauthorized, map[string]string{
				"error":    "unauthorized",
				"redirect": "/login",
			})
		case StateIncomplete:
			if s.gate.shouldWarn(userID) {
				n := &db.Notification{
					UserID:  userID,
					Message: "Please complete your profile to access all features.",
					Type:    db.NotificationWarning,
				}
				if _, err := s.db.CreateNotification(r.Context(), n); err != nil {
					s.logger.Warn("failed to write profile warning notification", "error", err, "user_id", userID)
				}
			}
			s.jsonResponse(w, http.StatusForbidden, map[string]string{
				"error":    "profile incomplete",
				"redirect": "/complete-profile",
			})
		case StateComplete:
			next(w, r)
		}
	}
}

// sessionUser loads the authenticated user's gate-relevant profile fields.
// Returns nil when the account no longer exists.
func (s *Server) sessionUser(r *http.Request) (*SessionUser, error) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		return nil, nil
	}

	u, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	return principalFrom(u), nil
}

// principalFrom projects a user row onto the gate's view of it.
func principalFrom(u *db.User) *SessionUser {
	if u == nil {
		return nil
	}
	return &SessionUser{
		ID:              u.ID,
		Email:           u.Email,
		DisplayName:     u.DisplayName,
		ProfileComplete: u.IsProfileComplete,
	}
}
