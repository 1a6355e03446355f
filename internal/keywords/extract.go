package keywords

import (
	"math"
	"regexp"
	"strings"

	"github.com/hirewithprachi/jdscore/internal/types"
)

// Phrase discovery constants. Bigrams and trigrams below these lengths
// are too generic to be useful keywords.
const (
	minTokenLen     = 3
	bigramMinChars  = 5 // joined phrase must be longer than this
	trigramMinChars = 8

	bigramImportance  = 0.5
	trigramImportance = 0.3

	maxImportance = 2.0
)

var (
	nonWordRe       = regexp.MustCompile(`[^\w\s.-]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	sectionHeaderRe = regexp.MustCompile(`(?i)(requirements|qualifications|skills|experience)`)
	// A section ends at the next "NEW HEADER:" style line. The pattern
	// is deliberately literal about capitalization; changing it changes
	// which requirement terms get their importance boost.
	sectionStopRe = regexp.MustCompile(`^[A-Z][^a-z]*:`)
)

// Normalize lower-cases text, strips characters outside word
// characters, whitespace, '.' and '-', and collapses whitespace runs.
func Normalize(text string) string {
	t := strings.ToLower(text)
	t = nonWordRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(t, " "))
}

// Extract builds a weighted keyword map from free text. Dictionary
// terms are matched against the original text with case-insensitive
// word-boundary patterns so punctuation and casing inside phrases
// still match; n-gram discovery runs over the normalized token
// sequence. Empty input yields an empty map.
func Extract(text string) *Map {
	m := NewMap()
	if strings.TrimSpace(text) == "" {
		return m
	}

	for _, dict := range dictionaries {
		for _, ct := range dict.terms {
			hits := ct.re.FindAllStringIndex(text, -1)
			if len(hits) == 0 {
				continue
			}
			m.PutIfAbsent(types.KeywordEntry{
				Keyword:    ct.term,
				Count:      len(hits),
				Category:   dict.category,
				Importance: calculateImportance(ct, text, len(hits)),
			})
		}
	}

	// Phrase discovery never overwrites dictionary hits.
	tokens := phraseTokens(Normalize(text))
	for i := 0; i+1 < len(tokens); i++ {
		bigram := tokens[i] + " " + tokens[i+1]
		if len(bigram) > bigramMinChars {
			m.PutIfAbsent(types.KeywordEntry{
				Keyword:    bigram,
				Count:      1,
				Category:   types.CategoryPhrase,
				Importance: bigramImportance,
			})
		}
		if i+2 < len(tokens) {
			trigram := bigram + " " + tokens[i+2]
			if len(trigram) > trigramMinChars {
				m.PutIfAbsent(types.KeywordEntry{
					Keyword:    trigram,
					Count:      1,
					Category:   types.CategoryPhrase,
					Importance: trigramImportance,
				})
			}
		}
	}

	return m
}

// phraseTokens splits normalized text into tokens, discarding tokens
// too short to participate in phrases.
func phraseTokens(normalized string) []string {
	fields := strings.Fields(normalized)
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= minTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// calculateImportance computes a context weight for a dictionary term:
// base 1.0, +0.5 when the term appears inside a requirements-style
// section, +0.8 when a required/must-have/essential marker sits near
// the term, +0.1 per occurrence capped at +0.5, clamped to 2.0.
func calculateImportance(ct compiledTerm, text string, occurrences int) float64 {
	importance := 1.0

	if sectionHeaderRe.MatchString(text) {
		if section := extractSection(text); section != "" && ct.re.MatchString(section) {
			importance += 0.5
		}
	}

	if ct.nearRe.MatchString(text) {
		importance += 0.8
	}

	importance += math.Min(float64(occurrences)*0.1, 0.5)

	return math.Min(importance, maxImportance)
}

// extractSection returns the lines from the first requirements-style
// header up to (not including) the next all-caps "Header:" line. The
// header line itself is part of the section.
func extractSection(text string) string {
	var captured []string
	capturing := false
	for _, line := range strings.Split(text, "\n") {
		if !capturing {
			if sectionHeaderRe.MatchString(line) {
				capturing = true
				captured = append(captured, line)
			}
			continue
		}
		if sectionStopRe.MatchString(strings.TrimSpace(line)) {
			break
		}
		captured = append(captured, line)
	}
	return strings.Join(captured, "\n")
}
