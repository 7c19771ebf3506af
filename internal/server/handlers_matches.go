package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-api/internal/db"
	"github.com/skillswap/skillswap-api/internal/matching"
	"github.com/skillswap/skillswap-api/internal/server/middleware"
)

// ---------------------------------------------------------------------
// Match Handlers
// ---------------------------------------------------------------------

// ProposeMatchRequest is the payload for proposing a skill exchange.
type ProposeMatchRequest struct {
	PartnerID uuid.UUID `json:"partnerId"`
}

func (s *Server) handleProposeMatch(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ProposeMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.PartnerID == uuid.Nil {
		verr := &ErrValidation{Field: "partnerId", Message: "required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}
	if req.PartnerID == userID {
		verr := &ErrValidation{Field: "partnerId", Message: "cannot match with yourself"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	initiator, err := s.db.GetUser(r.Context(), userID)
	if err != nil || initiator == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	partner, err := s.db.GetUser(r.Context(), req.PartnerID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if partner == nil {
		nf := &ErrUserNotFound{UserID: req.PartnerID}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	score := matching.Score(
		matching.Profile{Skills: initiator.Skills, Interests: initiator.Interests},
		matching.Profile{Skills: partner.Skills, Interests: partner.Interests},
	)

	match := &db.Match{
		InitiatorID:     userID,
		PartnerID:       partner.ID,
		InitiatorSkills: initiator.Skills,
		PartnerSkills:   partner.Skills,
		Status:          db.MatchStatusPending,
		Compatibility:   score,
	}

	id, err := s.db.CreateMatch(r.Context(), match)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	n := &db.Notification{
		UserID:  partner.ID,
		Message: initiator.DisplayName + " proposed a skill exchange with you.",
		Type:    db.NotificationInfo,
	}
	if _, err := s.db.CreateNotification(r.Context(), n); err != nil {
		s.logger.Warn("failed to write match notification", "error", err, "partner_id", partner.ID)
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":            id.String(),
		"status":        db.MatchStatusPending,
		"compatibility": score,
	})
}

func (s *Server) handleAcceptMatch(w http.ResponseWriter, r *http.Request) {
	s.decideMatch(w, r, db.MatchStatusAccepted)
}

func (s *Server) handleRejectMatch(w http.ResponseWriter, r *http.Request) {
	s.decideMatch(w, r, db.MatchStatusRejected)
}

// decideMatch applies an accept or reject decision. Only the partner of a
// pending match may decide, and a match is decided at most once.
func (s *Server) decideMatch(w http.ResponseWriter, r *http.Request, status string) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	idStr := r.PathValue("id")
	matchID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid match ID")
		return
	}

	match, err := s.db.GetMatch(r.Context(), matchID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if match == nil {
		nf := &ErrMatchNotFound{MatchID: matchID}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}
	if match.PartnerID != userID {
		fb := &ErrForbidden{Action: "decide a match you are not the partner of"}
		s.errorResponse(w, HTTPStatus(fb), fb.Error())
		return
	}

	decided, err := s.db.DecideMatch(r.Context(), matchID, status)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !decided {
		// Lost the race or already decided; only pending matches flip.
		cf := &ErrConflict{Message: "match already decided"}
		s.errorResponse(w, HTTPStatus(cf), cf.Error())
		return
	}

	partner, err := s.db.GetUser(r.Context(), userID)
	name := "Your partner"
	if err == nil && partner != nil {
		name = partner.DisplayName
	}
	n := &db.Notification{
		UserID:  match.InitiatorID,
		Message: name + " " + status + " your skill exchange proposal.",
		Type:    notificationTypeForDecision(status),
	}
	if _, err := s.db.CreateNotification(r.Context(), n); err != nil {
		s.logger.Warn("failed to write decision notification", "error", err, "initiator_id", match.InitiatorID)
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": status})
}

func notificationTypeForDecision(status string) string {
	if status == db.MatchStatusAccepted {
		return db.NotificationSuccess
	}
	return db.NotificationInfo
}

// handleListMatches returns matches the caller participates in.
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matches, err := s.db.ListMatchesForUser(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to list matches", "error", err, "user_id", userID)
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"matches": []db.Match{},
			"error":   "failed to load matches",
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches})
}

// MatchSuggestion is one ranked partner candidate.
type MatchSuggestion struct {
	UserID        uuid.UUID `json:"userId"`
	DisplayName   string    `json:"displayName"`
	PhotoURL      string    `json:"photoURL,omitempty"`
	Skills        []string  `json:"skills"`
	Interests     []string  `json:"interests"`
	Compatibility float64   `json:"compatibility"`
}

// handleMatchSuggestions ranks other complete profiles against the caller
// and returns the best candidates above the compatibility threshold.
func (s *Server) handleMatchSuggestions(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	me, err := s.db.GetUser(r.Context(), userID)
	if err != nil || me == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	others, err := s.db.ListCompleteProfiles(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to list candidate profiles", "error", err, "user_id", userID)
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"suggestions": []MatchSuggestion{},
			"error":       "failed to load suggestions",
		})
		return
	}

	byID := make(map[string]*db.User, len(others))
	candidates := make([]matching.Candidate, 0, len(others))
	for i := range others {
		u := &others[i]
		byID[u.ID.String()] = u
		candidates = append(candidates, matching.Candidate{
			ID:      u.ID.String(),
			Profile: matching.Profile{Skills: u.Skills, Interests: u.Interests},
		})
	}

	ranked := matching.Rank(
		matching.Profile{Skills: me.Skills, Interests: me.Interests},
		candidates,
		matching.RankOptions{},
	)

	suggestions := make([]MatchSuggestion, 0, len(ranked))
	for _, rk := range ranked {
		u := byID[rk.ID]
		suggestions = append(suggestions, MatchSuggestion{
			UserID:        u.ID,
			DisplayName:   u.DisplayName,
			PhotoURL:      u.PhotoURL,
			Skills:        u.Skills,
			Interests:     u.Interests,
			Compatibility: rk.Score,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}
