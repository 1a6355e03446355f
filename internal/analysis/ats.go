package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hirewithprachi/jdscore/internal/types"
)

// ATS deduction amounts. The score starts at 100 and never goes below 0.
const (
	dateFormatDeduction   = 5
	fewBulletsDeduction   = 5
	bulletLengthDeduction = 2
	thinSkillsDeduction   = 10
	badEmailDeduction     = 15
	noLocationDeduction   = 5

	minBulletsPerEntry = 2
	minBulletWords     = 12
	maxBulletWords     = 25
	minCoreSkills      = 5

	maxATSIssues = 10
)

// atsDateRe matches the "Jan 2024" start-date format ATS parsers
// handle most reliably.
var atsDateRe = regexp.MustCompile(`^(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) \d{4}$`)

// CalculateATSScore runs structural checks over the resume alone; the
// job description never influences it. Deductions keep accruing past
// the issue cap so the score stays honest even when the issue list is
// truncated.
func CalculateATSScore(resume *types.ResumeDocument) types.ATSScore {
	score := 100
	issues := make([]string, 0, maxATSIssues)

	addIssue := func(format string, args ...any) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	for i, exp := range resume.Experience {
		label := exp.Company
		if label == "" {
			label = fmt.Sprintf("experience entry %d", i+1)
		}
		if !atsDateRe.MatchString(exp.Start) {
			score -= dateFormatDeduction
			addIssue("Use a \"Jan 2024\" style start date for %s", label)
		}
		if len(exp.Bullets) < minBulletsPerEntry {
			score -= fewBulletsDeduction
			addIssue("Add at least %d bullets to %s", minBulletsPerEntry, label)
		}
		for _, bullet := range exp.Bullets {
			words := len(strings.Split(bullet, " "))
			if words < minBulletWords || words > maxBulletWords {
				score -= bulletLengthDeduction
				addIssue("Rework a bullet under %s to %d-%d words", label, minBulletWords, maxBulletWords)
			}
		}
	}

	if len(resume.Skills.Core) < minCoreSkills {
		score -= thinSkillsDeduction
		addIssue("List at least %d core skills", minCoreSkills)
	}

	if !strings.Contains(resume.Profile.Email, "@") {
		score -= badEmailDeduction
		addIssue("Add a valid email address to your contact details")
	}

	if resume.Profile.Location == "" {
		score -= noLocationDeduction
		addIssue("Add your location to your contact details")
	}

	if score < 0 {
		score = 0
	}
	if len(issues) > maxATSIssues {
		issues = issues[:maxATSIssues]
	}

	return types.ATSScore{Score: score, Issues: issues}
}
