// Package main provides the entry point for the JD score service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jdscore",
	Short: "Job-description / resume match scoring service",
	Long:  "jdscore scores structured resumes against job-description text: keyword matching, improvement suggestions and ATS compatibility checks, served over a REST API or run one-shot from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
