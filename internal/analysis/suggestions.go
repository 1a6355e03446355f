package analysis

import (
	"fmt"
	"strings"

	"github.com/hirewithprachi/jdscore/internal/types"
)

// generateKeywordSuggestions returns short, actionable hints for a
// single missing keyword, worded by category.
func generateKeywordSuggestions(keyword string, category types.KeywordCategory) []string {
	switch category {
	case types.CategoryTechnical:
		return []string{
			fmt.Sprintf("Add %q to your skills section", keyword),
			fmt.Sprintf("Mention %q in a project or experience bullet", keyword),
		}
	case types.CategorySoft:
		return []string{
			fmt.Sprintf("Demonstrate %q through a concrete example in your experience bullets", keyword),
		}
	case types.CategoryRole:
		return []string{
			fmt.Sprintf("Include %q in your headline or summary", keyword),
		}
	case types.CategoryEducation:
		return []string{
			fmt.Sprintf("Add %q to your education or certifications section", keyword),
		}
	default:
		return []string{
			fmt.Sprintf("Consider working %q into your resume where it is truthful", keyword),
		}
	}
}

// generateImprovementSuggestions groups missing keywords by category
// and emits at most one aggregate suggestion per group. Role and
// phrase keywords merge into a single experience-focused suggestion.
// Output order is fixed: technical, experience, soft, education.
func generateImprovementSuggestions(missing []types.MissingKeyword) []types.Suggestion {
	byCategory := make(map[types.KeywordCategory][]string)
	for _, mk := range missing {
		byCategory[mk.Category] = append(byCategory[mk.Category], mk.Keyword)
	}

	suggestions := make([]types.Suggestion, 0, 4)

	if tech := byCategory[types.CategoryTechnical]; len(tech) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Type:        "technical_skills",
			Title:       "Add Missing Technical Skills",
			Description: fmt.Sprintf("Your resume does not mention: %s", joinTop(tech, 5)),
			Priority:    "high",
			Keywords:    tech,
		})
	}

	experience := append(append([]string{}, byCategory[types.CategoryRole]...), byCategory[types.CategoryPhrase]...)
	if len(experience) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Type:        "experience",
			Title:       "Strengthen Experience Descriptions",
			Description: fmt.Sprintf("Work these terms into your experience bullets: %s", joinTop(experience, 5)),
			Priority:    "medium",
			Keywords:    experience,
		})
	}

	if soft := byCategory[types.CategorySoft]; len(soft) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Type:        "soft_skills",
			Title:       "Highlight Soft Skills",
			Description: fmt.Sprintf("Show evidence of: %s", joinTop(soft, 3)),
			Priority:    "medium",
			Keywords:    soft,
		})
	}

	if edu := byCategory[types.CategoryEducation]; len(edu) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Type:        "education",
			Title:       "Update Education & Certifications",
			Description: fmt.Sprintf("The posting asks for: %s", joinTop(edu, 3)),
			Priority:    "low",
			Keywords:    edu,
		})
	}

	return suggestions
}

// joinTop comma-joins up to n keywords.
func joinTop(keywords []string, n int) string {
	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return strings.Join(keywords, ", ")
}
