package analysis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewithprachi/jdscore/internal/types"
)

const pythonAwsJD = "Looking for a Python developer with AWS and Docker experience. Must have strong communication skills."

func pythonAwsResume() *types.ResumeDocument {
	return &types.ResumeDocument{
		Profile: types.Profile{Email: "dev@example.com", Location: "Pune"},
		Skills:  types.Skills{Core: []string{"Python", "AWS"}},
	}
}

func findMatch(t *testing.T, matches []types.MatchResult, keyword string) types.MatchResult {
	t.Helper()
	for _, m := range matches {
		if m.Keyword == keyword {
			return m
		}
	}
	t.Fatalf("keyword %q not in matched list", keyword)
	return types.MatchResult{}
}

func findMissing(matches []types.MissingKeyword, keyword string) *types.MissingKeyword {
	for i, m := range matches {
		if m.Keyword == keyword {
			return &matches[i]
		}
	}
	return nil
}

func TestAnalyze_MatchedAndMissing(t *testing.T) {
	result, err := Analyze(context.Background(), pythonAwsJD, pythonAwsResume())
	require.NoError(t, err)

	python := findMatch(t, result.MatchedKeywords, "python")
	assert.False(t, python.Partial)
	assert.Equal(t, 1, python.ResumeCount)

	findMatch(t, result.MatchedKeywords, "aws")

	docker := findMissing(result.MissingKeywords, "docker")
	require.NotNil(t, docker, "docker should be missing")
	assert.Equal(t, types.CategoryTechnical, docker.Category)
	assert.Greater(t, docker.Importance, 1.5, "must-have boost makes docker critical")
	assert.NotEmpty(t, docker.Suggestions)

	assert.GreaterOrEqual(t, result.Details.CriticalMissing, 1)
}

func TestAnalyze_SynonymPartialMatch(t *testing.T) {
	resume := &types.ResumeDocument{
		Profile: types.Profile{Email: "dev@example.com"},
		Skills:  types.Skills{Core: []string{"Kubernetes"}},
	}

	result, err := Analyze(context.Background(), "We run k8s in production.", resume)
	require.NoError(t, err)

	k8s := findMatch(t, result.MatchedKeywords, "k8s")
	assert.True(t, k8s.Partial)
	assert.Equal(t, "kubernetes", k8s.MatchedAs)
	// synonym confidence 0.8 at half weight: 0.8 * importance(1.1) * 5
	assert.InDelta(t, 4.4, k8s.Score, 0.001)
}

func TestAnalyze_AllCriticalMissingFloorsAtZero(t *testing.T) {
	jd := "Python required. AWS required. Docker required. Kubernetes required."
	result, err := Analyze(context.Background(), jd, &types.ResumeDocument{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Score)
	assert.GreaterOrEqual(t, result.Details.CriticalMissing, 4)
}

func TestAnalyze_EmptyJobDescription(t *testing.T) {
	resume := &types.ResumeDocument{
		Profile:    types.Profile{Email: "dev@example.com", Location: "Pune"},
		Experience: []types.Experience{{Role: "Engineer", Company: "Acme"}},
		Education:  []types.Education{{Degree: "MBA", School: "Somewhere"}},
	}

	result, err := Analyze(context.Background(), "", resume)
	require.NoError(t, err)

	assert.Equal(t, 0, result.KeywordMatch.Total)
	assert.Equal(t, 0, result.KeywordMatch.Percentage)
	assert.Empty(t, result.MatchedKeywords)
	assert.Empty(t, result.MissingKeywords)
	// only the experience and education bonuses apply
	assert.Equal(t, 8, result.Score)
	assert.InDelta(t, 8.0, result.Details.BonusApplied, 0.001)
}

func TestAnalyze_Conservation(t *testing.T) {
	result, err := Analyze(context.Background(), pythonAwsJD, pythonAwsResume())
	require.NoError(t, err)

	assert.Equal(t, result.KeywordMatch.Total,
		result.KeywordMatch.Matched+result.KeywordMatch.Missing)
}

func TestAnalyze_Caps(t *testing.T) {
	jd := `Requirements:
	python java javascript typescript golang rust ruby php sql nosql
	postgresql mysql mongodb redis aws azure gcp docker kubernetes
	terraform jenkins git linux react angular vue graphql microservices
	excel tableau salesforce jira agile scrum communication leadership`

	result, err := Analyze(context.Background(), jd, &types.ResumeDocument{})
	require.NoError(t, err)

	assert.LessOrEqual(t, len(result.MatchedKeywords), 20)
	assert.LessOrEqual(t, len(result.MissingKeywords), 15)
	assert.LessOrEqual(t, len(result.Suggestions), 10)
	assert.LessOrEqual(t, len(result.ATSScore.Issues), 10)
	// summary counts are taken before the caps
	assert.Greater(t, result.KeywordMatch.Missing, 15)
}

func TestAnalyze_ScoreBounds(t *testing.T) {
	cases := []struct {
		name   string
		jd     string
		resume *types.ResumeDocument
	}{
		{"empty everything", "", &types.ResumeDocument{}},
		{"no overlap", "Kubernetes required. Terraform required.", pythonAwsResume()},
		{"full overlap", "Python and AWS.", pythonAwsResume()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Analyze(context.Background(), tc.jd, tc.resume)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
			assert.GreaterOrEqual(t, result.ATSScore.Score, 0)
			assert.LessOrEqual(t, result.ATSScore.Score, 100)
		})
	}
}

func TestAnalyze_AddingMissingKeywordNeverLowersScore(t *testing.T) {
	before, err := Analyze(context.Background(), pythonAwsJD, pythonAwsResume())
	require.NoError(t, err)

	improved := pythonAwsResume()
	improved.Skills.Core = append(improved.Skills.Core, "Docker")
	after, err := Analyze(context.Background(), pythonAwsJD, improved)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, after.Score, before.Score)
}

func TestAnalyze_Deterministic(t *testing.T) {
	first, err := Analyze(context.Background(), pythonAwsJD, pythonAwsResume())
	require.NoError(t, err)
	second, err := Analyze(context.Background(), pythonAwsJD, pythonAwsResume())
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestAnalyze_NilResume(t *testing.T) {
	_, err := Analyze(context.Background(), "anything", nil)
	assert.Error(t, err)
}

func TestAnalyze_MatchedSortedByScore(t *testing.T) {
	resume := pythonAwsResume()
	resume.Skills.Core = append(resume.Skills.Core, "Docker", "Communication")

	result, err := Analyze(context.Background(), pythonAwsJD, resume)
	require.NoError(t, err)
	require.NotEmpty(t, result.MatchedKeywords)

	for i := 1; i < len(result.MatchedKeywords); i++ {
		assert.GreaterOrEqual(t, result.MatchedKeywords[i-1].Score, result.MatchedKeywords[i].Score)
	}
}
