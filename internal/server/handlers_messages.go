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
// Message Handlers
// ---------------------------------------------------------------------

// SendMessageRequest is the payload for sending a message. The sender is
// taken from the token, never from the payload.
type SendMessageRequest struct {
	RecipientEmail string     `json:"recipientEmail"`
	Body           string     `json:"body"`
	SkillID        *uuid.UUID `json:"skillId,omitempty"`
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Validate before any write. An empty body after trimming never
	// reaches storage.
	body := strings.TrimSpace(req.Body)
	if body == "" {
		verr := &ErrValidation{Field: "body", Message: "must not be empty"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}
	recipient := strings.TrimSpace(req.RecipientEmail)
	if recipient == "" {
		verr := &ErrValidation{Field: "recipientEmail", Message: "required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	sender, err := s.db.GetUser(r.Context(), userID)
	if err != nil || sender == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	msg := &db.Message{
		SenderID:       userID,
		SenderEmail:    sender.Email,
		RecipientEmail: recipient,
		Body:           body,
		SkillID:        req.SkillID,
	}

	id, err := s.db.CreateMessage(r.Context(), msg)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	// Notify the recipient when they have an account. A missing recipient
	// is not an error; the message still exists.
	if recipientUser, err := s.db.GetUserByEmail(r.Context(), recipient); err == nil && recipientUser != nil {
		n := &db.Notification{
			UserID:  recipientUser.ID,
			Message: "New message from " + sender.Email,
			Type:    db.NotificationInfo,
		}
		if _, err := s.db.CreateNotification(r.Context(), n); err != nil {
			s.logger.Warn("failed to write message notification", "error", err, "recipient", recipient)
		}
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{
		"id":     id.String(),
		"status": db.MessageStatusSent,
	})
}

// handleListMessages returns messages where the caller is sender or
// recipient.
func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	caller, err := s.db.GetUser(r.Context(), userID)
	if err != nil || caller == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	messages, err := s.db.ListMessagesForUser(r.Context(), userID, caller.Email)
	if err != nil {
		s.logger.Error("failed to list messages", "error", err, "user_id", userID)
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"messages": []db.Message{},
			"error":    "failed to load messages",
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"messages": messages})
}
