package resumes

import "time"

// CareerEntry is one position in a resume's work history. Entries keep the
// order the trainer wrote them in.
type CareerEntry struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Period   string `json:"period"`
}

// EducationEntry is one school in a resume's education history.
type EducationEntry struct {
	School string `json:"school"`
	Major  string `json:"major"`
	Period string `json:"period"`
}

// Resume represents a trainer's resume.
type Resume struct {
	ID              string
	UserID          string
	Title           string
	Categories      []string
	Region          string
	ExperienceLevel string
	Gender          string
	BirthYear       int
	Introduction    string
	Certifications  []string
	CareerHistory   []CareerEntry
	Education       []EducationEntry
	IsPrimary       bool
	IsPublic        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
