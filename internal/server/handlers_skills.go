package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-api/internal/db"
	"github.com/skillswap/skillswap-api/internal/server/middleware"
)

// ---------------------------------------------------------------------
// Skill Handlers
// ---------------------------------------------------------------------

// CreateSkillRequest is the payload for posting a new skill.
type CreateSkillRequest struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	Type             string `json:"type"`
	ProficiencyLevel string `json:"proficiencyLevel"`
}

func (r *CreateSkillRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ErrValidation{Field: "name", Message: "required"}
	}
	if strings.TrimSpace(r.Category) == "" {
		return &ErrValidation{Field: "category", Message: "required"}
	}
	if strings.TrimSpace(r.ProficiencyLevel) == "" {
		return &ErrValidation{Field: "proficiencyLevel", Message: "required"}
	}
	switch r.Type {
	case db.SkillTypeOffer, db.SkillTypeRequest:
	default:
		return &ErrValidation{Field: "type", Message: "must be offer or request"}
	}
	return nil
}

// handleListSkills returns available skill postings. On a storage failure
// the list degrades to empty with an error field rather than failing the
// request, so browsing stays usable.
func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := s.db.ListAvailableSkills(r.Context(), 0)
	if err != nil {
		s.logger.Error("failed to list skills", "error", err)
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"skills": []db.Skill{},
			"error":  "failed to load skills",
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

// handleListUserSkills returns one user's skill postings.
func (s *Server) handleListUserSkills(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	ownerID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	skills, err := s.db.ListSkillsByOwner(r.Context(), ownerID)
	if err != nil {
		s.logger.Error("failed to list user skills", "error", err, "owner_id", ownerID)
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"skills": []db.Skill{},
			"error":  "failed to load skills",
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	owner, err := s.db.GetUser(r.Context(), userID)
	if err != nil || owner == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	skill := &db.Skill{
		Name:             strings.TrimSpace(req.Name),
		Category:         strings.TrimSpace(req.Category),
		Description:      strings.TrimSpace(req.Description),
		Type:             req.Type,
		ProficiencyLevel: strings.TrimSpace(req.ProficiencyLevel),
		UserID:           userID,
		UserEmail:        owner.Email,
		IsAvailable:      true,
	}

	id, err := s.db.CreateSkill(r.Context(), skill)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// handleDeleteSkill removes a posting. Only the owner may delete; the
// ownership check happens in the delete statement itself.
func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	idStr := r.PathValue("id")
	skillID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid skill ID")
		return
	}

	skill, err := s.db.GetSkill(r.Context(), skillID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if skill == nil {
		s.errorResponse(w, http.StatusNotFound, "Skill not found")
		return
	}
	if skill.UserID != userID {
		err := &ErrForbidden{Action: "delete another user's skill"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.db.DeleteSkill(r.Context(), skillID, userID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
