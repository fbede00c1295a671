package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kmatsu/story-checker/internal/config"
	"github.com/kmatsu/story-checker/internal/llm"
	"github.com/kmatsu/story-checker/internal/observability"
	"github.com/kmatsu/story-checker/internal/pipeline"
)

// loadConfig reads the optional config file, layers environment variables
// under it, and validates the result.
func loadConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildPipeline constructs the model client and evaluation pipeline from
// configuration. The caller owns closing the returned client.
func buildPipeline(ctx context.Context, cfg config.Config) (*pipeline.Pipeline, llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("API key is required (set %s or api_key in config)", config.EnvAPIKey)
	}

	llmCfg := llm.DefaultGeminiConfig()
	if cfg.ModelLite != "" {
		llmCfg = llmCfg.WithModel(llm.TierLite, cfg.ModelLite)
	}
	if cfg.ModelDefault != "" {
		llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.ModelDefault)
	}
	if cfg.ModelPro != "" {
		llmCfg = llmCfg.WithModel(llm.TierAdvanced, cfg.ModelPro)
	}

	client, err := llm.NewClient(ctx, llmCfg, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create model client: %w", err)
	}

	p, err := pipeline.New(pipeline.Options{
		Client:      client,
		Concurrency: cfg.Concurrency,
		Verbose:     cfg.Verbose,
		Printer:     observability.NewPrinter(os.Stdout),
	})
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return p, client, nil
}
