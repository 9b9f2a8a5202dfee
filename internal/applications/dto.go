package applications

import "time"

// ApplicationResponse is the outward-facing representation of an application.
type ApplicationResponse struct {
	ID           string    `json:"id"`
	JobPostingID string    `json:"jobPostingId"`
	UserID       string    `json:"userId"`
	ResumeID     string    `json:"resumeId"`
	Status       string    `json:"status"`
	Message      string    `json:"message,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserApplicationResponse is a trainer-facing list row.
type UserApplicationResponse struct {
	ApplicationResponse
	PostingTitle string `json:"postingTitle"`
	CenterName   string `json:"centerName"`
}

// PostingApplicationResponse is a center-facing list row.
type PostingApplicationResponse struct {
	ApplicationResponse
	ApplicantName  string `json:"applicantName"`
	ApplicantEmail string `json:"applicantEmail"`
	ResumeTitle    string `json:"resumeTitle"`
}

// ApplicantResponse is the applicant block of a detail response.
type ApplicantResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// ResumeSummaryResponse is the resume block of a detail response.
type ResumeSummaryResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Categories      []string `json:"categories"`
	Region          string   `json:"region,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
}

// PostingSummaryResponse is the posting block of a detail response.
type PostingSummaryResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Region     string `json:"region"`
	CenterID   string `json:"centerId"`
	CenterName string `json:"centerName"`
}

// DetailResponse is the joined application view.
type DetailResponse struct {
	ApplicationResponse
	Applicant ApplicantResponse      `json:"applicant"`
	Resume    ResumeSummaryResponse  `json:"resume"`
	Posting   PostingSummaryResponse `json:"posting"`
}

func toResponse(app Application) ApplicationResponse {
	return ApplicationResponse{
		ID:           app.ID,
		JobPostingID: app.JobPostingID,
		UserID:       app.UserID,
		ResumeID:     app.ResumeID,
		Status:       app.Status,
		Message:      app.Message,
		CreatedAt:    app.CreatedAt,
		UpdatedAt:    app.UpdatedAt,
	}
}

func toDetailResponse(detail Detail) DetailResponse {
	categories := detail.Resume.Categories
	if categories == nil {
		categories = []string{}
	}
	return DetailResponse{
		ApplicationResponse: toResponse(detail.Application),
		Applicant: ApplicantResponse{
			ID:        detail.Applicant.ID,
			Name:      detail.Applicant.Name,
			Email:     detail.Applicant.Email,
			Phone:     detail.Applicant.Phone,
			AvatarURL: detail.Applicant.AvatarURL,
		},
		Resume: ResumeSummaryResponse{
			ID:              detail.Resume.ID,
			Title:           detail.Resume.Title,
			Categories:      categories,
			Region:          detail.Resume.Region,
			ExperienceLevel: detail.Resume.ExperienceLevel,
		},
		Posting: PostingSummaryResponse{
			ID:         detail.Posting.ID,
			Title:      detail.Posting.Title,
			Region:     detail.Posting.Region,
			CenterID:   detail.Posting.CenterID,
			CenterName: detail.Posting.CenterName,
		},
	}
}

func toUserResponses(apps []UserApplication) []UserApplicationResponse {
	out := make([]UserApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, UserApplicationResponse{
			ApplicationResponse: toResponse(app.Application),
			PostingTitle:        app.PostingTitle,
			CenterName:          app.CenterName,
		})
	}
	return out
}

func toPostingResponses(apps []PostingApplication) []PostingApplicationResponse {
	out := make([]PostingApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, PostingApplicationResponse{
			ApplicationResponse: toResponse(app.Application),
			ApplicantName:       app.ApplicantName,
			ApplicantEmail:      app.ApplicantEmail,
			ResumeTitle:         app.ResumeTitle,
		})
	}
	return out
}
