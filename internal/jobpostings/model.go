package jobpostings

import "time"

// Gender requirements a posting may carry.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderAny    = "any"
)

// Salary types.
const (
	SalaryMonthly    = "monthly"
	SalaryHourly     = "hourly"
	SalaryNegotiable = "negotiable"
)

// JobPosting represents an open position published by a center.
type JobPosting struct {
	ID              string
	CenterID        string
	Title           string
	Description     string
	Region          string
	Categories      []string
	Gender          string
	EmploymentType  string
	ExperienceLevel string
	SalaryType      string
	SalaryMin       *int64
	SalaryMax       *int64
	Deadline        *time.Time
	IsActive        bool
	ViewCount       int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Filter holds the optional listing constraints. Zero-valued fields add no
// constraint; present fields combine conjunctively.
type Filter struct {
	Region          string
	Categories      []string
	Gender          string
	EmploymentType  string
	ExperienceLevel string
	Search          string
	Limit           int
	Offset          int
}

func validGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderAny
}

func validSalaryType(t string) bool {
	return t == SalaryMonthly || t == SalaryHourly || t == SalaryNegotiable
}
