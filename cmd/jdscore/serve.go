package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hirewithprachi/jdscore/internal/config"
	"github.com/hirewithprachi/jdscore/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the analysis endpoint and the persisted-analysis CRUD endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfig != "" {
		loaded, err := config.Load(serveConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	merged := cfg.WithDefaults()
	if servePort != 0 {
		merged.Port = servePort
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:         merged.Port,
		DatabaseURL:  merged.DatabaseURL,
		CacheEnabled: merged.CacheEnabled,
		MaxJobChars:  merged.MaxJobChars,
		FetchTimeout: time.Duration(merged.FetchTimeout) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
