package applications

import "time"

// Application represents one trainer's application to one job posting.
type Application struct {
	ID           string
	JobPostingID string
	UserID       string
	ResumeID     string
	Status       string
	Message      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserApplication is a trainer-facing list row with posting context.
type UserApplication struct {
	Application
	PostingTitle string
	CenterName   string
}

// PostingApplication is a center-facing list row with applicant context.
type PostingApplication struct {
	Application
	ApplicantName  string
	ApplicantEmail string
	ResumeTitle    string
}

// ApplicantProfile is the applicant part of an application detail.
type ApplicantProfile struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	AvatarURL string
}

// ResumeSummary is the resume part of an application detail.
type ResumeSummary struct {
	ID              string
	Title           string
	Categories      []string
	Region          string
	ExperienceLevel string
}

// PostingSummary is the posting part of an application detail.
type PostingSummary struct {
	ID         string
	Title      string
	Region     string
	CenterID   string
	CenterName string
}

// Detail is the fully joined application view, shaped the same way for the
// applicant and for the owning center.
type Detail struct {
	Application
	Applicant ApplicantProfile
	Resume    ResumeSummary
	Posting   PostingSummary
}

// RecentApplicant is a row in the center dashboard's recent-applicants feed.
type RecentApplicant struct {
	ID             string
	Status         string
	CreatedAt      time.Time
	ApplicantName  string
	ApplicantEmail string
	ResumeID       string
	ResumeTitle    string
	JobPostingID   string
	PostingTitle   string
}

// CenterStats aggregates applicant counts across a center's postings.
type CenterStats struct {
	Total int
	Today int
	Week  int
}
