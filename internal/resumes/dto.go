package resumes

import "time"

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ID              string           `json:"id"`
	UserID          string           `json:"userId"`
	Title           string           `json:"title"`
	Categories      []string         `json:"categories"`
	Region          string           `json:"region,omitempty"`
	ExperienceLevel string           `json:"experienceLevel,omitempty"`
	Gender          string           `json:"gender,omitempty"`
	BirthYear       int              `json:"birthYear,omitempty"`
	Introduction    string           `json:"introduction,omitempty"`
	Certifications  []string         `json:"certifications"`
	CareerHistory   []CareerEntry    `json:"careerHistory"`
	Education       []EducationEntry `json:"education"`
	IsPrimary       bool             `json:"isPrimary"`
	IsPublic        bool             `json:"isPublic"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func toResponse(resume Resume) ResumeResponse {
	resp := ResumeResponse{
		ID:              resume.ID,
		UserID:          resume.UserID,
		Title:           resume.Title,
		Categories:      resume.Categories,
		Region:          resume.Region,
		ExperienceLevel: resume.ExperienceLevel,
		Gender:          resume.Gender,
		BirthYear:       resume.BirthYear,
		Introduction:    resume.Introduction,
		Certifications:  resume.Certifications,
		CareerHistory:   resume.CareerHistory,
		Education:       resume.Education,
		IsPrimary:       resume.IsPrimary,
		IsPublic:        resume.IsPublic,
		CreatedAt:       resume.CreatedAt,
		UpdatedAt:       resume.UpdatedAt,
	}
	if resp.Certifications == nil {
		resp.Certifications = []string{}
	}
	if resp.CareerHistory == nil {
		resp.CareerHistory = []CareerEntry{}
	}
	if resp.Education == nil {
		resp.Education = []EducationEntry{}
	}
	return resp
}

func toResponses(resumes []Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(resumes))
	for _, resume := range resumes {
		out = append(out, toResponse(resume))
	}
	return out
}
