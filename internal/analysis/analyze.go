package analysis

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hirewithprachi/jdscore/internal/keywords"
	"github.com/hirewithprachi/jdscore/internal/types"
)

// Analyze runs the full pipeline for one job-description/resume pair:
// keyword extraction on both text sources, match scoring, suggestion
// generation and the ATS check. It is pure and side-effect free; the
// same inputs always produce the same result. The two extractions are
// independent and run concurrently.
func Analyze(ctx context.Context, jdText string, resume *types.ResumeDocument) (*types.AnalysisResult, error) {
	if resume == nil {
		return nil, fmt.Errorf("resume document is required")
	}

	var jdKeywords, resumeKeywords *keywords.Map

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		jdKeywords = keywords.Extract(jdText)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		resumeKeywords = keywords.Extract(ExtractResumeText(resume))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("keyword extraction interrupted: %w", err)
	}

	return calculateMatchScore(jdKeywords, resumeKeywords, resume), nil
}
