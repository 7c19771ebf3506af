package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/skillswap/skillswap-api/internal/ai"
	"github.com/skillswap/skillswap-api/internal/config"
	"github.com/skillswap/skillswap-api/internal/db"
	"github.com/skillswap/skillswap-api/internal/observability"
)

var recommendUserID string

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate skill recommendations for a user",
	Long:  `Generate AI skill recommendations for one user and print them as JSON. Useful for warming the cache and inspecting AI output.`,
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendUserID, "user", "", "User ID (required)")
	recommendCmd.MarkFlagRequired("user") //nolint:errcheck
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(recommendUserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := observability.NewLogger(cfg.LogLevel)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	user, err := database.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user not found: %s", userID)
	}

	client, err := ai.NewClient(ctx, cfg.AIProvider, cfg.AIKey)
	if err != nil {
		return fmt.Errorf("failed to create AI client: %w", err)
	}
	if client != nil {
		defer client.Close() //nolint:errcheck
	}

	recommender := ai.NewRecommender(client, database, logger)
	recs := recommender.SkillRecommendations(ctx, ai.UserContext{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Skills:      user.Skills,
		Interests:   user.Interests,
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(recs)
}
