package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jmatsumo/resume-screener/internal/config"
	"github.com/jmatsumo/resume-screener/internal/lifecycle"
	"github.com/jmatsumo/resume-screener/internal/llm"
	"github.com/jmatsumo/resume-screener/internal/metadata"
	"github.com/jmatsumo/resume-screener/internal/server"
)

var (
	servePort  int
	serveModel string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for parsing, screening and archiving resumes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().StringVar(&serveModel, "model", llm.DefaultModel, "Generative model to use")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.EnsureDirs(); err != nil {
		return fmt.Errorf("failed to prepare storage directories: %w", err)
	}

	client, err := llm.NewGeminiClient(context.Background(), cfg.APIKey, serveModel)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}

	// Drop stale temp uploads left over from previous runs.
	store := metadata.NewFileStore(cfg.MetadataPath())
	manager := lifecycle.New(cfg.TempDir(), cfg.SavedDir(), store, client, nil)
	if removed, err := manager.SweepTemp(cfg.TempRetention); err != nil {
		log.Printf("Temp sweep failed: %v", err)
	} else if removed > 0 {
		log.Printf("Swept %d stale temp upload(s)", removed)
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		FrontendURL:  cfg.FrontendURL,
		TempDir:      cfg.TempDir(),
		SavedDir:     cfg.SavedDir(),
		MetadataPath: cfg.MetadataPath(),
		Client:       client,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
