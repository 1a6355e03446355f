package keywords

import (
	"regexp"

	"github.com/hirewithprachi/jdscore/internal/types"
)

// Fixed term dictionaries. The lists are closed and disjoint; a hit is
// categorized by the dictionary it came from. They are read-only after
// init and safe for concurrent use.
var technicalSkills = []string{
	"python", "java", "javascript", "typescript", "golang", "rust", "ruby", "php",
	"sql", "nosql", "postgresql", "mysql", "mongodb", "redis",
	"aws", "azure", "gcp", "docker", "kubernetes", "k8s", "terraform", "jenkins",
	"git", "linux", "react", "angular", "vue", "node.js", "graphql",
	"microservices", "machine learning", "data analysis", "etl",
	"excel", "tableau", "power bi", "salesforce", "sap", "jira",
	"agile", "scrum", "ci/cd", "hris", "payroll", "ats",
}

var softSkills = []string{
	"communication", "leadership", "teamwork", "collaboration",
	"problem solving", "adaptability", "time management",
	"critical thinking", "creativity", "negotiation", "mentoring",
	"stakeholder management", "attention to detail",
}

var roleTerms = []string{
	"developer", "engineer", "manager", "analyst", "consultant",
	"architect", "designer", "administrator", "recruiter",
	"coordinator", "specialist", "director", "lead",
}

var educationTerms = []string{
	"bachelor", "master", "phd", "mba", "degree",
	"certification", "certified", "diploma", "bootcamp",
}

// compiledTerm pairs a dictionary term with its match pattern and the
// pattern detecting a "required/must have/essential" marker near it.
type compiledTerm struct {
	term   string
	re     *regexp.Regexp
	nearRe *regexp.Regexp
}

func compileTerms(terms []string) []compiledTerm {
	out := make([]compiledTerm, 0, len(terms))
	for _, term := range terms {
		quoted := regexp.QuoteMeta(term)
		out = append(out, compiledTerm{
			term: term,
			re:   regexp.MustCompile(`(?i)\b` + quoted + `\b`),
			nearRe: regexp.MustCompile(
				`(?is)(?:required|must have|essential).{0,50}\b` + quoted + `\b` +
					`|\b` + quoted + `\b.{0,50}(?:required|must have|essential)`),
		})
	}
	return out
}

// dictionary binds a compiled term list to its keyword category.
type dictionary struct {
	category types.KeywordCategory
	terms    []compiledTerm
}

var dictionaries = []dictionary{
	{types.CategoryTechnical, compileTerms(technicalSkills)},
	{types.CategorySoft, compileTerms(softSkills)},
	{types.CategoryRole, compileTerms(roleTerms)},
	{types.CategoryEducation, compileTerms(educationTerms)},
}
