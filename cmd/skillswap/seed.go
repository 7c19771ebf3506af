package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillswap/skillswap-api/internal/config"
	"github.com/skillswap/skillswap-api/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the database schema and demo data",
	Long: `Run the idempotent schema migration against DATABASE_URL, then insert
a small set of demo users and skill listings. Existing demo accounts are
left alone, so the command is safe to run repeatedly.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	fmt.Println("schema is up to date")

	users, skills, err := db.SeedDemo(ctx, database)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	if users == 0 && skills == 0 {
		fmt.Println("demo data already present")
	} else {
		fmt.Printf("seeded %d demo users and %d skill listings\n", users, skills)
	}
	return nil
}
