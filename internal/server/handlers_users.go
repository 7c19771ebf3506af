package server

import (
	"io"
	"net/http"

	"github.com/skillswap/skillswap-api/internal/server/middleware"
)

// ---------------------------------------------------------------------
// Profile Handlers
// ---------------------------------------------------------------------

// handleGetMe returns the caller's profile together with the computed gate
// state so clients can drive their own routing.
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	u, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	if u == nil {
		s.errorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"user":  convertDBUserToTypesUser(u),
		"state": GateState(principalFrom(u)),
	})
}

// handleUpdateMe merges profile changes. Unknown fields are rejected.
func (s *Server) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	upd, err := DecodeProfileUpdate(body)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	user, err := s.userService.UpdateProfile(r.Context(), userID, upd)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	// A now-complete profile re-arms the incomplete-profile warning.
	if user.IsProfileComplete {
		s.gate.reset(userID)
	}

	s.jsonResponse(w, http.StatusOK, user)
}
