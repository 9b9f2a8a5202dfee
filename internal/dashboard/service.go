package dashboard

import (
	"context"
	"sync"
	"time"

	"fithire-backend/internal/applications"
	"fithire-backend/internal/centers"
	"fithire-backend/internal/jobpostings"
	"fithire-backend/internal/likes"
	"fithire-backend/internal/resumes"
)

// Service aggregates per-account overview counts. The reads are independent,
// so each overview fans them out concurrently and joins the results.
type Service struct {
	Resumes      resumes.ResumesRepo
	Applications applications.ApplicationsRepo
	Likes        likes.LikesRepo
	Postings     jobpostings.JobPostingsRepo
	Centers      centers.CentersRepo
}

// NewService constructs a Service.
func NewService(resumesRepo resumes.ResumesRepo, appsRepo applications.ApplicationsRepo, likesRepo likes.LikesRepo, postings jobpostings.JobPostingsRepo, centersRepo centers.CentersRepo) *Service {
	return &Service{
		Resumes:      resumesRepo,
		Applications: appsRepo,
		Likes:        likesRepo,
		Postings:     postings,
		Centers:      centersRepo,
	}
}

// TrainerOverview summarizes a trainer's activity.
type TrainerOverview struct {
	ResumeCount         int `json:"resumeCount"`
	TotalApplications   int `json:"totalApplications"`
	PendingApplications int `json:"pendingApplications"`
	LikeCount           int `json:"likeCount"`
}

// Trainer builds the trainer overview for an account.
func (s *Service) Trainer(ctx context.Context, userID string) (TrainerOverview, error) {
	var overview TrainerOverview
	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		overview.ResumeCount, errs[0] = s.Resumes.CountByUser(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		overview.TotalApplications, overview.PendingApplications, errs[1] = s.Applications.CountByUser(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		overview.LikeCount, errs[2] = s.Likes.CountByUser(ctx, userID)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return TrainerOverview{}, err
		}
	}
	return overview, nil
}

// recentApplicantsLimit caps the center overview's applicant feed.
const recentApplicantsLimit = 5

// RecentApplicant is one row of the center overview's applicant feed.
type RecentApplicant struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	ApplicantName  string    `json:"applicantName"`
	ApplicantEmail string    `json:"applicantEmail"`
	ResumeID       string    `json:"resumeId"`
	ResumeTitle    string    `json:"resumeTitle"`
	JobPostingID   string    `json:"jobPostingId"`
	PostingTitle   string    `json:"postingTitle"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CenterOverview summarizes a center's postings and applicant volume.
type CenterOverview struct {
	JobPostingCount  int               `json:"jobPostingCount"`
	ActiveJobCount   int               `json:"activeJobCount"`
	TotalApplicants  int               `json:"totalApplicants"`
	TodayApplicants  int               `json:"todayApplicants"`
	WeekApplicants   int               `json:"weekApplicants"`
	RecentApplicants []RecentApplicant `json:"recentApplicants"`
}

// Center builds the center overview for an owning account.
func (s *Service) Center(ctx context.Context, ownerID string) (CenterOverview, error) {
	center, err := s.Centers.GetByOwner(ctx, ownerID)
	if err != nil {
		return CenterOverview{}, err
	}

	var overview CenterOverview
	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		overview.JobPostingCount, overview.ActiveJobCount, errs[0] = s.Postings.CountByCenter(ctx, center.ID)
	}()
	go func() {
		defer wg.Done()
		var stats applications.CenterStats
		stats, errs[1] = s.Applications.CountByCenter(ctx, center.ID)
		overview.TotalApplicants = stats.Total
		overview.TodayApplicants = stats.Today
		overview.WeekApplicants = stats.Week
	}()
	go func() {
		defer wg.Done()
		var recent []applications.RecentApplicant
		recent, errs[2] = s.Applications.ListRecentByCenter(ctx, center.ID, recentApplicantsLimit)
		rows := make([]RecentApplicant, 0, len(recent))
		for _, app := range recent {
			rows = append(rows, RecentApplicant{
				ID:             app.ID,
				Status:         app.Status,
				ApplicantName:  app.ApplicantName,
				ApplicantEmail: app.ApplicantEmail,
				ResumeID:       app.ResumeID,
				ResumeTitle:    app.ResumeTitle,
				JobPostingID:   app.JobPostingID,
				PostingTitle:   app.PostingTitle,
				CreatedAt:      app.CreatedAt,
			})
		}
		overview.RecentApplicants = rows
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return CenterOverview{}, err
		}
	}
	return overview, nil
}
