// Package analysis scores a structured resume against job-description
// text: keyword matching, improvement suggestions and an independent
// ATS compatibility check.
package analysis

import (
	"strings"

	"github.com/hirewithprachi/jdscore/internal/types"
)

// ExtractResumeText linearizes a resume document into plain text for
// keyword extraction. Field order is fixed and absent fields are
// skipped; changing either changes scoring semantics.
func ExtractResumeText(resume *types.ResumeDocument) string {
	var parts []string
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}
	addAll := func(ss []string) {
		for _, s := range ss {
			add(s)
		}
	}

	add(resume.Summary)

	for _, exp := range resume.Experience {
		add(exp.Role)
		add(exp.Company)
		addAll(exp.Bullets)
		addAll(exp.Technologies)
	}

	for _, proj := range resume.Projects {
		add(proj.Name)
		add(proj.Role)
		addAll(proj.Bullets)
		addAll(proj.Technologies)
	}

	for _, edu := range resume.Education {
		add(edu.Degree)
		add(edu.School)
		add(edu.Details)
	}

	addAll(resume.Skills.Core)
	addAll(resume.Skills.Tools)
	addAll(resume.Skills.Soft)

	addAll(resume.Extras.Certifications)
	addAll(resume.Extras.Awards)
	addAll(resume.Extras.Languages)

	return strings.Join(parts, " ")
}
