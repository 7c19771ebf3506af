package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-api/internal/db"
)

// streamEvents parses the message payloads out of a recorded SSE body.
func streamEvents(t *testing.T, body string) []string {
	t.Helper()
	var messages []string
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var n db.Notification
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &n))
		messages = append(messages, n.Message)
	}
	return messages
}

func TestNotificationStream(t *testing.T) {
	mock := newMockDB()
	s := newTestServer(t, mock)
	user := seedUser(t, mock, "stream@example.com", "Stream User", true)

	saved := notificationPollInterval
	notificationPollInterval = 10 * time.Millisecond
	defer func() { notificationPollInterval = saved }()

	// Backlog with explicit timestamps so replay order is unambiguous.
	base := time.Now()
	firstID, err := mock.CreateNotification(context.Background(),
		&db.Notification{UserID: user.ID, Message: "first", Type: db.NotificationInfo})
	require.NoError(t, err)
	mock.notifications[firstID].CreatedAt = base.Add(-2 * time.Minute)
	secondID, err := mock.CreateNotification(context.Background(),
		&db.Notification{UserID: user.ID, Message: "second", Type: db.NotificationInfo})
	require.NoError(t, err)
	mock.notifications[secondID].CreatedAt = base.Add(-1 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/notifications/stream", nil).WithContext(ctx)
	req = authedRequest(req, user.ID)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		s.handleNotificationStream(rec, req)
		close(done)
	}()

	// Let the backlog replay, then create a notification mid-stream.
	time.Sleep(50 * time.Millisecond)
	_, err = mock.CreateNotification(context.Background(),
		&db.Notification{UserID: user.ID, Message: "live", Type: db.NotificationSuccess})
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not stop after client disconnect")
	}

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, []string{"first", "second", "live"}, streamEvents(t, rec.Body.String()),
		"backlog replays oldest first, then live notifications follow")
}

func TestNotificationStream_BacklogLoadFailure(t *testing.T) {
	mock := newMockDB()
	s := newTestServer(t, mock)
	user := seedUser(t, mock, "stream@example.com", "Stream User", true)
	mock.failOn("ListNotifications")

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/notifications/stream", nil), user.ID)
	rec := httptest.NewRecorder()
	s.handleNotificationStream(rec, req)

	assert.Contains(t, rec.Body.String(), "event: error")
}
