// Package types provides type definitions for structured data used throughout the JD score system.
package types

// Profile holds the candidate's contact information.
type Profile struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Experience represents one employment entry on a resume.
type Experience struct {
	Role         string   `json:"role,omitempty"`
	Company      string   `json:"company,omitempty"`
	Start        string   `json:"start,omitempty"`
	End          string   `json:"end,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Project represents one project entry on a resume.
type Project struct {
	Name         string   `json:"name,omitempty"`
	Role         string   `json:"role,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Education represents one education entry on a resume.
type Education struct {
	Degree  string `json:"degree,omitempty"`
	School  string `json:"school,omitempty"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
	Details string `json:"details,omitempty"`
}

// Skills groups skill names by kind.
type Skills struct {
	Core  []string `json:"core,omitempty"`
	Tools []string `json:"tools,omitempty"`
	Soft  []string `json:"soft,omitempty"`
}

// Extras holds additional resume sections.
type Extras struct {
	Certifications []string `json:"certifications,omitempty"`
	Awards         []string `json:"awards,omitempty"`
	Languages      []string `json:"languages,omitempty"`
}

// ResumeDocument is the structured resume as submitted by clients.
// All fields besides the top-level object itself are optional; stages
// downstream skip absent fields rather than failing.
type ResumeDocument struct {
	Profile    Profile      `json:"profile"`
	Summary    string       `json:"summary,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Projects   []Project    `json:"projects,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	Skills     Skills       `json:"skills"`
	Extras     Extras       `json:"extras"`
}
