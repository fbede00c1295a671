package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmatsu/story-checker/internal/types"
)

var reviewCommand = &cobra.Command{
	Use:   "review",
	Short: "Evaluate a document from a JSON file and print the report",
	Long: `Reads a document JSON file ({"title", "summary", "paragraphs", "full_text"}),
runs the full evaluation, and prints the report as JSON to stdout.`,
	RunE: runReviewCmd,
}

var (
	reviewConfigPath string
	reviewFile       string
	reviewAPIKey     string
	reviewVerbose    bool
)

func init() {
	reviewCommand.Flags().StringVar(&reviewConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	reviewCommand.Flags().StringVarP(&reviewFile, "file", "f", "", "Path to document JSON file (required)")
	reviewCommand.Flags().StringVar(&reviewAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	reviewCommand.Flags().BoolVarP(&reviewVerbose, "verbose", "v", false, "Print formatted report details")
	_ = reviewCommand.MarkFlagRequired("file")

	rootCmd.AddCommand(reviewCommand)
}

func runReviewCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(reviewConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = reviewAPIKey
	}
	if reviewVerbose {
		cfg.Verbose = true
	}

	data, err := os.ReadFile(reviewFile)
	if err != nil {
		return fmt.Errorf("failed to read document file: %w", err)
	}
	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse document JSON: %w", err)
	}

	ctx := context.Background()
	p, client, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	report, err := p.Evaluate(ctx, &doc)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if report.Error != "" {
		return fmt.Errorf("evaluation failed: %s", report.Error)
	}
	return nil
}
