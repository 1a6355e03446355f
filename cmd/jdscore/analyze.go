package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hirewithprachi/jdscore/internal/analysis"
	"github.com/hirewithprachi/jdscore/internal/fetch"
	"github.com/hirewithprachi/jdscore/internal/schemas"
	"github.com/hirewithprachi/jdscore/internal/types"
)

var (
	analyzeResume string
	analyzeJob    string
	analyzeJobURL string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long:  `Run one analysis locally: read a structured resume JSON file and a job description (text file or URL), print the analysis result as JSON.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResume, "resume", "", "Path to resume JSON file (required)")
	analyzeCmd.Flags().StringVar(&analyzeJob, "job", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of the job posting")
	_ = analyzeCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if (analyzeJob == "") == (analyzeJobURL == "") {
		return fmt.Errorf("exactly one of --job and --job-url is required")
	}

	resumeData, err := os.ReadFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	if err := schemas.ValidateResume(resumeData); err != nil {
		return err
	}
	var resume types.ResumeDocument
	if err := json.Unmarshal(resumeData, &resume); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var jdText string
	if analyzeJob != "" {
		data, err := os.ReadFile(analyzeJob)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		jdText = string(data)
	} else {
		jdText, err = fetch.JobPosting(ctx, analyzeJobURL, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	}

	result, err := analysis.Analyze(ctx, jdText, &resume)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
