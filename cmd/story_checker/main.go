// Package main provides the entry point for the story checker CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "story_checker",
	Short: "Story Checker evaluation service",
	Long:  "Story Checker evaluates structured business documents against a catalog of rhetorical and logical quality criteria using an LLM, producing scored reports with improvement feedback.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
