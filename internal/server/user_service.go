package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-api/internal/config"
	"github.com/skillswap/skillswap-api/internal/db"
	"github.com/skillswap/skillswap-api/internal/types"
)

// UserService provides business logic for account and profile operations
type UserService struct {
	db             DBClient
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(db DBClient, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// convertDBUserToTypesUser converts db.User to types.User, excluding password hash
func convertDBUserToTypesUser(dbUser *db.User) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:                dbUser.ID,
		Email:             dbUser.Email,
		DisplayName:       dbUser.DisplayName,
		PhotoURL:          dbUser.PhotoURL,
		Skills:            dbUser.Skills,
		Interests:         dbUser.Interests,
		LearningGoals:     dbUser.LearningGoals,
		IsProfileComplete: dbUser.IsProfileComplete,
		PasswordSet:       dbUser.PasswordSet,
		CreatedAt:         dbUser.CreatedAt,
		UpdatedAt:         dbUser.UpdatedAt,
	}
}

// Register creates a new user with password authentication
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	exists, err := s.db.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Two-step: create user, then set password
	userID, err := s.db.CreateUser(ctx, req.Email, req.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	err = s.db.UpdatePassword(ctx, userID, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if dbUser == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	return convertDBUserToTypesUser(dbUser), nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: always return the same generic error whether the user is
	// missing or the password is wrong
	if dbUser == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	if !dbUser.PasswordSet {
		return nil, &ErrInvalidCredentials{}
	}

	return convertDBUserToTypesUser(dbUser), nil
}

// UpdatePassword updates a user's password
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return &ErrUserNotFound{UserID: userID}
	}

	if !s.passwordConfig.VerifyPassword(currentPassword, dbUser.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	newPasswordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	err = s.db.UpdatePassword(ctx, userID, newPasswordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// ProfileUpdate holds the fields a user may change on their own profile.
// Pointer fields distinguish "absent" from "set to empty".
type ProfileUpdate struct {
	DisplayName   *string   `json:"displayName"`
	PhotoURL      *string   `json:"photoURL"`
	Skills        *[]string `json:"skills"`
	Interests     *[]string `json:"interests"`
	LearningGoals *[]string `json:"learningGoals"`
}

// DecodeProfileUpdate parses a profile update payload, rejecting unknown
// fields so typos and stale clients fail loudly instead of silently
// dropping data.
func DecodeProfileUpdate(body []byte) (*ProfileUpdate, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	var upd ProfileUpdate
	if err := dec.Decode(&upd); err != nil {
		return nil, &ErrValidation{Field: "body", Message: err.Error()}
	}
	return &upd, nil
}

// UpdateProfile merges the provided fields into the stored profile and
// recomputes profile completeness. Only fields present in the update are
// touched.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd *ProfileUpdate) (*types.User, error) {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}

	if upd.DisplayName != nil {
		name := strings.TrimSpace(*upd.DisplayName)
		if name == "" {
			return nil, &ErrValidation{Field: "displayName", Message: "must not be empty"}
		}
		dbUser.DisplayName = name
	}
	if upd.PhotoURL != nil {
		dbUser.PhotoURL = strings.TrimSpace(*upd.PhotoURL)
	}
	if upd.Skills != nil {
		dbUser.Skills = cleanList(*upd.Skills)
	}
	if upd.Interests != nil {
		dbUser.Interests = cleanList(*upd.Interests)
	}
	if upd.LearningGoals != nil {
		dbUser.LearningGoals = cleanList(*upd.LearningGoals)
	}

	dbUser.IsProfileComplete = profileComplete(dbUser)

	if err := s.db.UpdateProfile(ctx, dbUser); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return convertDBUserToTypesUser(dbUser), nil
}

// profileComplete reports whether the profile satisfies the completeness
// requirement: a non-empty display name and email.
func profileComplete(u *db.User) bool {
	return strings.TrimSpace(u.DisplayName) != "" && strings.TrimSpace(u.Email) != ""
}

// cleanList trims entries and drops empties, preserving order.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
