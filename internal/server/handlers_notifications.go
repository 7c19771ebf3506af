package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-api/internal/db"
	"github.com/skillswap/skillswap-api/internal/server/middleware"
)

// ---------------------------------------------------------------------
// Notification Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	notifications, err := s.db.ListNotifications(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to list notifications", "error", err, "user_id", userID)
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"notifications": []db.Notification{},
			"error":         "failed to load notifications",
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"notifications": notifications})
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	if err := s.db.MarkNotificationRead(r.Context(), id, userID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "read"})
}

func (s *Server) handleClearNotifications(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := s.db.ClearNotifications(r.Context(), userID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// notificationPollInterval is how often the stream checks for new rows.
// Tests shorten it.
var notificationPollInterval = 3 * time.Second

// handleNotificationStream pushes new notifications to the client over
// server-sent events until the client disconnects.
func (s *Server) handleNotificationStream(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Send the current backlog first, then poll for anything newer.
	backlog, err := s.db.ListNotifications(r.Context(), userID)
	if err != nil {
		sse.WriteError("failed to load notifications")
		return
	}
	for i := len(backlog) - 1; i >= 0; i-- {
		// Backlog is newest first; replay oldest first.
		if err := sse.WriteEvent("notification", backlog[i]); err != nil {
			return
		}
	}

	since := time.Now()
	if len(backlog) > 0 {
		since = backlog[0].CreatedAt
	}

	ticker := time.NewTicker(notificationPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			fresh, err := s.db.ListNotificationsSince(r.Context(), userID, since)
			if err != nil {
				s.logger.Warn("notification poll failed", "error", err, "user_id", userID)
				continue
			}
			for _, n := range fresh {
				if err := sse.WriteEvent("notification", n); err != nil {
					return
				}
				if n.CreatedAt.After(since) {
					since = n.CreatedAt
				}
			}
		}
	}
}
