package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmatsu/story-checker/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP evaluation API server",
	Long: `Starts the REST API exposing POST /api/review and GET /api/health.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runServeCmd,
}

var (
	serveConfigPath  string
	servePort        int
	serveAPIKey      string
	serveConcurrency int
	serveTimeout     int
	serveVerbose     bool
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 8000, "HTTP listen port")
	serveCommand.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	serveCommand.Flags().IntVar(&serveConcurrency, "concurrency", 0, "Max in-flight model calls per category")
	serveCommand.Flags().IntVar(&serveTimeout, "timeout", 300, "Per-request evaluation timeout in seconds")
	serveCommand.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = serveAPIKey
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = serveConcurrency
	}
	if cmd.Flags().Changed("timeout") || cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = serveTimeout
	}
	if serveVerbose {
		cfg.Verbose = true
	}

	p, client, err := buildPipeline(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	s, err := server.New(server.Config{
		Port:           cfg.Port,
		AllowedOrigins: cfg.AllowedOrigins,
		ReviewTimeout:  time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, p)
	if err != nil {
		return err
	}

	return s.Start()
}
