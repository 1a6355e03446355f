package types

// KeywordCategory classifies where a keyword was discovered.
type KeywordCategory string

// Keyword categories. Dictionary hits carry the category of the
// dictionary they came from; n-gram discoveries are phrases.
const (
	CategoryTechnical KeywordCategory = "technical"
	CategorySoft      KeywordCategory = "soft"
	CategoryRole      KeywordCategory = "role"
	CategoryEducation KeywordCategory = "education"
	CategoryPhrase    KeywordCategory = "phrase"
)

// KeywordEntry is one detected keyword occurrence record.
type KeywordEntry struct {
	Keyword    string          `json:"keyword"`
	Count      int             `json:"count"`
	Category   KeywordCategory `json:"category"`
	Importance float64         `json:"importance"`
}

// MatchResult is one scored comparison of a job-description keyword
// against the resume keywords.
type MatchResult struct {
	Keyword     string          `json:"keyword"`
	Category    KeywordCategory `json:"category"`
	JDCount     int             `json:"jdCount"`
	ResumeCount int             `json:"resumeCount"`
	Importance  float64         `json:"importance"`
	Score       float64         `json:"score"`
	MatchedAs   string          `json:"matchedAs,omitempty"`
	Partial     bool            `json:"partial,omitempty"`
}

// MissingKeyword is a job-description keyword absent from the resume.
type MissingKeyword struct {
	Keyword     string          `json:"keyword"`
	Category    KeywordCategory `json:"category"`
	Importance  float64         `json:"importance"`
	Suggestions []string        `json:"suggestions"`
}

// KeywordMatchSummary summarizes matched vs missing counts.
type KeywordMatchSummary struct {
	Total      int `json:"total"`
	Matched    int `json:"matched"`
	Missing    int `json:"missing"`
	Percentage int `json:"percentage"`
}

// ATSScore is the structural compatibility score, independent of
// job-description content.
type ATSScore struct {
	Score  int      `json:"score"`
	Issues []string `json:"issues"`
}

// Suggestion is one aggregate improvement recommendation.
type Suggestion struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Keywords    []string `json:"keywords"`
}

// ScoreDetails carries diagnostic scoring totals.
type ScoreDetails struct {
	TotalPossibleScore float64 `json:"totalPossibleScore"`
	EarnedScore        float64 `json:"earnedScore"`
	BonusApplied       float64 `json:"bonusApplied"`
	CriticalMissing    int     `json:"criticalMissing"`
}

// AnalysisResult is the top-level output of one analysis run.
type AnalysisResult struct {
	Score           int                 `json:"score"`
	ATSScore        ATSScore            `json:"atsScore"`
	KeywordMatch    KeywordMatchSummary `json:"keywordMatch"`
	MatchedKeywords []MatchResult       `json:"matchedKeywords"`
	MissingKeywords []MissingKeyword    `json:"missingKeywords"`
	Suggestions     []Suggestion        `json:"suggestions"`
	Details         ScoreDetails        `json:"details"`
}
