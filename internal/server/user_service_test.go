package server

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-api/internal/config"
	"github.com/skillswap/skillswap-api/internal/db"
	"github.com/skillswap/skillswap-api/internal/types"
)

func testUserService(t *testing.T, mock *mockDB) *UserService {
	t.Helper()
	t.Setenv("BCRYPT_COST", "10")
	passwordConfig, err := config.NewPasswordConfig()
	require.NoError(t, err)
	return NewUserService(mock, passwordConfig)
}

func TestConvertDBUserToTypesUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		now := time.Now()
		dbUser := &db.User{
			ID:                uuid.New(),
			Email:             "maya@example.com",
			DisplayName:       "Maya",
			PhotoURL:          "https://example.com/maya.png",
			PasswordHash:      "hashed-password",
			PasswordSet:       true,
			Skills:            db.StringArray{"Go", "SQL"},
			Interests:         db.StringArray{"Teaching"},
			LearningGoals:     db.StringArray{"Rust"},
			IsProfileComplete: true,
			CreatedAt:         now,
			UpdatedAt:         now,
		}

		u := convertDBUserToTypesUser(dbUser)
		require.NotNil(t, u)
		assert.Equal(t, dbUser.ID, u.ID)
		assert.Equal(t, dbUser.Email, u.Email)
		assert.Equal(t, dbUser.DisplayName, u.DisplayName)
		assert.Equal(t, []string{"Go", "SQL"}, u.Skills)
		assert.True(t, u.IsProfileComplete)
		// types.User has no password hash field at all
	})

	t.Run("nil user", func(t *testing.T) {
		assert.Nil(t, convertDBUserToTypesUser(nil))
	})
}

func TestUserService_Register(t *testing.T) {
	mock := newMockDB()
	svc := testUserService(t, mock)

	user, err := svc.Register(t.Context(), &types.CreateUserRequest{
		DisplayName: "Maya",
		Email:       "maya@example.com",
		Password:    "long-enough-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "maya@example.com", user.Email)
	assert.Equal(t, "Maya", user.DisplayName)
	assert.True(t, user.PasswordSet)

	// The stored hash must not be the plaintext password.
	stored, err := mock.GetUserByEmail(t.Context(), "maya@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "long-enough-pass", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	mock := newMockDB()
	svc := testUserService(t, mock)
	seedUser(t, mock, "taken@example.com", "First", false)

	_, err := svc.Register(t.Context(), &types.CreateUserRequest{
		DisplayName: "Second",
		Email:       "taken@example.com",
		Password:    "long-enough-pass",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserService_Login(t *testing.T) {
	mock := newMockDB()
	svc := testUserService(t, mock)

	_, err := svc.Register(t.Context(), &types.CreateUserRequest{
		DisplayName: "Maya",
		Email:       "maya@example.com",
		Password:    "long-enough-pass",
	})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := svc.Login(t.Context(), &types.LoginRequest{
			Email:    "maya@example.com",
			Password: "long-enough-pass",
		})
		require.NoError(t, err)
		assert.Equal(t, "maya@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(t.Context(), &types.LoginRequest{
			Email:    "maya@example.com",
			Password: "wrong-password-x",
		})
		assert.IsType(t, &ErrInvalidCredentials{}, err)
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		_, err := svc.Login(t.Context(), &types.LoginRequest{
			Email:    "nobody@example.com",
			Password: "long-enough-pass",
		})
		assert.IsType(t, &ErrInvalidCredentials{}, err)
	})
}

func TestUserService_UpdatePassword(t *testing.T) {
	mock := newMockDB()
	svc := testUserService(t, mock)

	user, err := svc.Register(t.Context(), &types.CreateUserRequest{
		DisplayName: "Maya",
		Email:       "maya@example.com",
		Password:    "old-password-123",
	})
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.UpdatePassword(t.Context(), user.ID, "not-the-password", "new-password-123")
		assert.IsType(t, &ErrPasswordMismatch{}, err)
	})

	t.Run("success", func(t *testing.T) {
		err := svc.UpdatePassword(t.Context(), user.ID, "old-password-123", "new-password-123")
		require.NoError(t, err)

		_, err = svc.Login(t.Context(), &types.LoginRequest{
			Email:    "maya@example.com",
			Password: "new-password-123",
		})
		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.UpdatePassword(t.Context(), uuid.New(), "x", "new-password-123")
		assert.IsType(t, &ErrUserNotFound{}, err)
	})
}

func TestDecodeProfileUpdate(t *testing.T) {
	t.Run("known fields", func(t *testing.T) {
		upd, err := DecodeProfileUpdate([]byte(`{"displayName": "Maya", "skills": ["Go"]}`))
		require.NoError(t, err)
		require.NotNil(t, upd.DisplayName)
		assert.Equal(t, "Maya", *upd.DisplayName)
		require.NotNil(t, upd.Skills)
		assert.Equal(t, []string{"Go"}, *upd.Skills)
		assert.Nil(t, upd.Interests)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		_, err := DecodeProfileUpdate([]byte(`{"displayName": "Maya", "isAdmin": true}`))
		require.Error(t, err)
		assert.IsType(t, &ErrValidation{}, err)
	})

	t.Run("type mismatch rejected", func(t *testing.T) {
		_, err := DecodeProfileUpdate([]byte(`{"skills": "Go"}`))
		require.Error(t, err)
		assert.IsType(t, &ErrValidation{}, err)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	mock := newMockDB()
	svc := testUserService(t, mock)
	u := seedUser(t, mock, "maya@example.com", "Maya", false)

	t.Run("merge touches only provided fields", func(t *testing.T) {
		skills := []string{"Go", " SQL ", ""}
		updated, err := svc.UpdateProfile(t.Context(), u.ID, &ProfileUpdate{Skills: &skills})
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "SQL"}, updated.Skills)
		assert.Equal(t, "Maya", updated.DisplayName)
	})

	t.Run("empty display name rejected", func(t *testing.T) {
		blank := "   "
		_, err := svc.UpdateProfile(t.Context(), u.ID, &ProfileUpdate{DisplayName: &blank})
		assert.IsType(t, &ErrValidation{}, err)
	})

	t.Run("completeness derived from name and email", func(t *testing.T) {
		name := "Maya Chen"
		updated, err := svc.UpdateProfile(t.Context(), u.ID, &ProfileUpdate{DisplayName: &name})
		require.NoError(t, err)
		assert.True(t, updated.IsProfileComplete)
	})

	t.Run("unknown user", func(t *testing.T) {
		name := "Ghost"
		_, err := svc.UpdateProfile(t.Context(), uuid.New(), &ProfileUpdate{DisplayName: &name})
		assert.IsType(t, &ErrUserNotFound{}, err)
	})
}
