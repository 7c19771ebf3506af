package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/skillswap/skillswap-api/internal/ai"
	"github.com/skillswap/skillswap-api/internal/server/middleware"
)

// ---------------------------------------------------------------------
// Recommendation and Chat Handlers
// ---------------------------------------------------------------------

// handleGetRecommendations returns AI skill recommendations for the caller.
// The recommender never fails; at worst the caller sees the fallback set.
func (s *Server) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	u, err := s.db.GetUser(r.Context(), userID)
	if err != nil || u == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	recs := s.recommender.SkillRecommendations(r.Context(), ai.UserContext{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Skills:      u.Skills,
		Interests:   u.Interests,
	})

	s.jsonResponse(w, http.StatusOK, map[string]any{"recommendations": recs})
}

// ChatRequest is the payload for the assistant endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		verr := &ErrValidation{Field: "message", Message: "must not be empty"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	reply := s.recommender.ChatResponse(r.Context(), message)
	s.jsonResponse(w, http.StatusOK, map[string]string{"reply": reply})
}
