package analysis

import (
	"strings"

	"github.com/hirewithprachi/jdscore/internal/keywords"
)

// Partial-match confidence factors relative to an exact match.
const (
	synonymConfidence   = 0.8
	substringConfidence = 0.6

	// Substring matching only applies to longer keywords; short terms
	// produce too many false containments.
	minSubstringKeywordLen = 7
)

// synonymTable maps a keyword to terms treated as equivalent. Lookup is
// bidirectional, so one direction per pair is enough. Read-only after
// init.
var synonymTable = map[string][]string{
	"javascript":       {"js", "ecmascript"},
	"typescript":       {"ts"},
	"kubernetes":       {"k8s"},
	"golang":           {"go"},
	"postgresql":       {"postgres"},
	"aws":              {"amazon web services"},
	"gcp":              {"google cloud"},
	"machine learning": {"ml"},
	"ci/cd":            {"continuous integration", "continuous delivery"},
	"node.js":          {"nodejs", "node"},
	"power bi":         {"powerbi"},
	"ats":              {"applicant tracking system"},
}

func isSynonym(a, b string) bool {
	for _, s := range synonymTable[a] {
		if s == b {
			return true
		}
	}
	for _, s := range synonymTable[b] {
		if s == a {
			return true
		}
	}
	return false
}

// partialMatch is a non-exact correspondence between a JD keyword and a
// resume keyword.
type partialMatch struct {
	keyword string
	count   int
	score   float64
}

// findPartialMatch looks for a synonym first, then for a substring
// containment in either direction. Resume keywords are scanned in
// insertion order and the first hit wins.
func findPartialMatch(keyword string, resumeKeywords *keywords.Map) *partialMatch {
	for _, entry := range resumeKeywords.Entries() {
		if isSynonym(keyword, entry.Keyword) {
			return &partialMatch{keyword: entry.Keyword, count: entry.Count, score: synonymConfidence}
		}
	}

	if len(keyword) < minSubstringKeywordLen {
		return nil
	}
	for _, entry := range resumeKeywords.Entries() {
		if strings.Contains(entry.Keyword, keyword) || strings.Contains(keyword, entry.Keyword) {
			return &partialMatch{keyword: entry.Keyword, count: entry.Count, score: substringConfidence}
		}
	}

	return nil
}
