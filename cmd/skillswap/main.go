// Package main provides the entry point for the SkillSwap HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillswap",
	Short: "SkillSwap HTTP API Server",
	Long:  "SkillSwap is a skill exchange marketplace: users post skills to teach or learn, get AI recommendations, and match with compatible partners via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
