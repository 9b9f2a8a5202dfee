package jobpostings

import "time"

// JobPostingResponse is the outward-facing representation of a posting.
type JobPostingResponse struct {
	ID              string     `json:"id"`
	CenterID        string     `json:"centerId"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Region          string     `json:"region"`
	Categories      []string   `json:"categories"`
	Gender          string     `json:"gender"`
	EmploymentType  string     `json:"employmentType"`
	ExperienceLevel string     `json:"experienceLevel"`
	SalaryType      string     `json:"salaryType,omitempty"`
	SalaryMin       *int64     `json:"salaryMin,omitempty"`
	SalaryMax       *int64     `json:"salaryMax,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	IsActive        bool       `json:"isActive"`
	ViewCount       int64      `json:"viewCount"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func toResponse(posting JobPosting) JobPostingResponse {
	return JobPostingResponse{
		ID:              posting.ID,
		CenterID:        posting.CenterID,
		Title:           posting.Title,
		Description:     posting.Description,
		Region:          posting.Region,
		Categories:      posting.Categories,
		Gender:          posting.Gender,
		EmploymentType:  posting.EmploymentType,
		ExperienceLevel: posting.ExperienceLevel,
		SalaryType:      posting.SalaryType,
		SalaryMin:       posting.SalaryMin,
		SalaryMax:       posting.SalaryMax,
		Deadline:        posting.Deadline,
		IsActive:        posting.IsActive,
		ViewCount:       posting.ViewCount,
		CreatedAt:       posting.CreatedAt,
		UpdatedAt:       posting.UpdatedAt,
	}
}

func toResponses(postings []JobPosting) []JobPostingResponse {
	out := make([]JobPostingResponse, 0, len(postings))
	for _, posting := range postings {
		out = append(out, toResponse(posting))
	}
	return out
}
