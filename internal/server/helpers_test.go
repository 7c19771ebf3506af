package server

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-api/internal/ai"
	"github.com/skillswap/skillswap-api/internal/config"
	"github.com/skillswap/skillswap-api/internal/db"
	"github.com/skillswap/skillswap-api/internal/server/middleware"
)

// newTestServer builds a Server over the in-memory mock without touching
// Postgres or the network.
func newTestServer(t *testing.T, mock *mockDB) *Server {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-for-unit-tests")
	t.Setenv("BCRYPT_COST", "10")

	passwordConfig, err := config.NewPasswordConfig()
	require.NoError(t, err)
	jwtConfig, err := config.NewJWTConfig()
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	s := &Server{
		db:          mock,
		logger:      logger,
		gate:        newProfileGate(),
		recommender: ai.NewRecommender(nil, mock, logger),
	}
	s.userService = NewUserService(mock, passwordConfig)
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)
	return s
}

// seedUser inserts a user directly into the mock and returns it.
func seedUser(t *testing.T, mock *mockDB, email, displayName string, complete bool) *db.User {
	t.Helper()
	id, err := mock.CreateUser(context.Background(), email, displayName)
	require.NoError(t, err)
	u := mock.users[id]
	u.IsProfileComplete = complete
	return u
}

// authedRequest stamps the request context with an authenticated user ID,
// simulating what the auth middleware does.
func authedRequest(r *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UserIDKey(), userID)
	return r.WithContext(ctx)
}
