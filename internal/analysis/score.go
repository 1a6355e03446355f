package analysis

import (
	"math"
	"sort"

	"github.com/hirewithprachi/jdscore/internal/keywords"
	"github.com/hirewithprachi/jdscore/internal/types"
)

// Scoring weights. Heuristic constants; the defaults are load-bearing
// for existing clients, so change them only deliberately.
const (
	exactMatchWeight   = 10.0
	partialMatchWeight = 5.0

	experienceBonus = 5.0
	educationBonus  = 3.0

	// Missing keywords above this importance are critical and incur a
	// per-keyword penalty.
	criticalImportance = 1.5
	criticalPenalty    = 5.0

	maxMatchedKeywords = 20
	maxMissingKeywords = 15
	maxSuggestions     = 10
)

// calculateMatchScore compares the job-description keyword map against
// the resume keyword map and assembles the full analysis result.
// Every JD keyword ends up either matched (exact or partial) or
// missing, so matched+missing always equals the JD map size before the
// top-N caps are applied.
func calculateMatchScore(jdKeywords, resumeKeywords *keywords.Map, resume *types.ResumeDocument) *types.AnalysisResult {
	matched := make([]types.MatchResult, 0, jdKeywords.Len())
	missing := make([]types.MissingKeyword, 0)

	var totalScore, maxPossibleScore float64

	for _, jdEntry := range jdKeywords.Entries() {
		maxPossibleScore += jdEntry.Importance * exactMatchWeight

		if resumeEntry, ok := resumeKeywords.Get(jdEntry.Keyword); ok {
			score := float64(min(resumeEntry.Count, jdEntry.Count)) * jdEntry.Importance * exactMatchWeight
			totalScore += score
			matched = append(matched, types.MatchResult{
				Keyword:     jdEntry.Keyword,
				Category:    jdEntry.Category,
				JDCount:     jdEntry.Count,
				ResumeCount: resumeEntry.Count,
				Importance:  jdEntry.Importance,
				Score:       score,
			})
			continue
		}

		if pm := findPartialMatch(jdEntry.Keyword, resumeKeywords); pm != nil {
			score := pm.score * jdEntry.Importance * partialMatchWeight
			totalScore += score
			matched = append(matched, types.MatchResult{
				Keyword:     jdEntry.Keyword,
				Category:    jdEntry.Category,
				JDCount:     jdEntry.Count,
				ResumeCount: pm.count,
				Importance:  jdEntry.Importance,
				Score:       score,
				MatchedAs:   pm.keyword,
				Partial:     true,
			})
			continue
		}

		missing = append(missing, types.MissingKeyword{
			Keyword:     jdEntry.Keyword,
			Category:    jdEntry.Category,
			Importance:  jdEntry.Importance,
			Suggestions: generateKeywordSuggestions(jdEntry.Keyword, jdEntry.Category),
		})
	}

	rawScore := 0.0
	if maxPossibleScore > 0 {
		rawScore = totalScore / maxPossibleScore * 100
	}

	bonus := 0.0
	if len(resume.Experience) > 0 {
		bonus += experienceBonus
	}
	if len(resume.Education) > 0 {
		bonus += educationBonus
	}

	criticalMissing := 0
	for _, mk := range missing {
		if mk.Importance > criticalImportance {
			criticalMissing++
		}
	}
	penalty := float64(criticalMissing) * criticalPenalty

	finalScore := clampScore(int(math.Round(rawScore + bonus - penalty)))

	summary := types.KeywordMatchSummary{
		Total:   jdKeywords.Len(),
		Matched: len(matched),
		Missing: len(missing),
	}
	if summary.Total > 0 {
		summary.Percentage = int(math.Round(float64(summary.Matched) / float64(summary.Total) * 100))
	}

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Score > matched[j].Score })
	sort.SliceStable(missing, func(i, j int) bool { return missing[i].Importance > missing[j].Importance })

	suggestions := generateImprovementSuggestions(missing)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return &types.AnalysisResult{
		Score:           finalScore,
		ATSScore:        CalculateATSScore(resume),
		KeywordMatch:    summary,
		MatchedKeywords: capMatches(matched, maxMatchedKeywords),
		MissingKeywords: capMissing(missing, maxMissingKeywords),
		Suggestions:     suggestions,
		Details: types.ScoreDetails{
			TotalPossibleScore: maxPossibleScore,
			EarnedScore:        totalScore,
			BonusApplied:       float64(finalScore) - rawScore,
			CriticalMissing:    criticalMissing,
		},
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func capMatches(matches []types.MatchResult, n int) []types.MatchResult {
	if len(matches) > n {
		return matches[:n]
	}
	return matches
}

func capMissing(missing []types.MissingKeyword, n int) []types.MissingKeyword {
	if len(missing) > n {
		return missing[:n]
	}
	return missing
}
