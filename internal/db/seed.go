package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// DemoStore is the subset of storage operations demo seeding needs.
type DemoStore interface {
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, email, displayName string) (uuid.UUID, error)
	UpdateProfile(ctx context.Context, u *User) error
	CreateSkill(ctx context.Context, s *Skill) (uuid.UUID, error)
}

type demoAccount struct {
	email       string
	displayName string
	skills      StringArray
	interests   StringArray
	listings    []Skill
}

// demoAccounts is the fixed dataset inserted by the seed command. Profiles
// are marked complete so the accounts can browse, message, and match
// immediately.
var demoAccounts = []demoAccount{
	{
		email:       "ana@skillswap.demo",
		displayName: "Ana Costa",
		skills:      StringArray{"Go", "PostgreSQL"},
		interests:   StringArray{"Photography", "Spanish"},
		listings: []Skill{
			{Name: "Go", Category: "Technical", Type: SkillTypeOffer,
				ProficiencyLevel: "expert", Description: "Backend services and tooling"},
			{Name: "Photography", Category: "Creative", Type: SkillTypeRequest,
				ProficiencyLevel: "beginner"},
		},
	},
	{
		email:       "marcus@skillswap.demo",
		displayName: "Marcus Webb",
		skills:      StringArray{"Photography", "Video Editing"},
		interests:   StringArray{"Go", "Public Speaking"},
		listings: []Skill{
			{Name: "Photography", Category: "Creative", Type: SkillTypeOffer,
				ProficiencyLevel: "expert", Description: "Portrait and street photography"},
			{Name: "Go", Category: "Technical", Type: SkillTypeRequest,
				ProficiencyLevel: "beginner"},
		},
	},
	{
		email:       "priya@skillswap.demo",
		displayName: "Priya Nair",
		skills:      StringArray{"Spanish", "Public Speaking"},
		interests:   StringArray{"PostgreSQL", "Video Editing"},
		listings: []Skill{
			{Name: "Spanish", Category: "Languages", Type: SkillTypeOffer,
				ProficiencyLevel: "native", Description: "Conversational practice at any level"},
			{Name: "Public Speaking", Category: "Soft Skills", Type: SkillTypeOffer,
				ProficiencyLevel: "intermediate"},
		},
	},
}

// SeedDemo inserts the demo accounts and their skill listings. Accounts
// that already exist are skipped along with their listings, so running the
// seed repeatedly adds nothing the second time. Returns how many users and
// skills were created.
func SeedDemo(ctx context.Context, store DemoStore) (int, int, error) {
	var users, skills int

	for _, acct := range demoAccounts {
		existing, err := store.GetUserByEmail(ctx, acct.email)
		if err != nil {
			return users, skills, fmt.Errorf("failed to look up %s: %w", acct.email, err)
		}
		if existing != nil {
			continue
		}

		id, err := store.CreateUser(ctx, acct.email, acct.displayName)
		if err != nil {
			return users, skills, fmt.Errorf("failed to create %s: %w", acct.email, err)
		}

		profile := &User{
			ID:                id,
			Email:             acct.email,
			DisplayName:       acct.displayName,
			Skills:            acct.skills,
			Interests:         acct.interests,
			LearningGoals:     StringArray{},
			IsProfileComplete: true,
		}
		if err := store.UpdateProfile(ctx, profile); err != nil {
			return users, skills, fmt.Errorf("failed to fill profile for %s: %w", acct.email, err)
		}
		users++

		for _, listing := range acct.listings {
			sk := listing
			sk.UserID = id
			sk.UserEmail = acct.email
			sk.IsAvailable = true
			if _, err := store.CreateSkill(ctx, &sk); err != nil {
				return users, skills, fmt.Errorf("failed to create skill %q for %s: %w", sk.Name, acct.email, err)
			}
			skills++
		}
	}

	return users, skills, nil
}
