package applications

import (
	"context"
	"sort"
	"sync"
	"time"

	"fithire-backend/internal/accounts"
	"fithire-backend/internal/centers"
	"fithire-backend/internal/jobpostings"
	"fithire-backend/internal/resumes"
)

// MemoryRepo is an in-memory implementation of ApplicationsRepo. Joined
// reads resolve related entities through the sibling repos.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Application // id -> application

	Postings jobpostings.JobPostingsRepo
	Centers  centers.CentersRepo
	Resumes  resumes.ResumesRepo
	Profiles accounts.ProfilesRepo
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo(postings jobpostings.JobPostingsRepo, centersRepo centers.CentersRepo, resumesRepo resumes.ResumesRepo, profiles accounts.ProfilesRepo) *MemoryRepo {
	return &MemoryRepo{
		data:     make(map[string]Application),
		Postings: postings,
		Centers:  centersRepo,
		Resumes:  resumesRepo,
		Profiles: profiles,
	}
}

func (r *MemoryRepo) Create(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data {
		if existing.UserID == app.UserID && existing.JobPostingID == app.JobPostingID {
			return ErrAlreadyApplied
		}
	}
	r.data[app.ID] = app
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.data[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	return app, nil
}

func (r *MemoryRepo) GetDetail(ctx context.Context, id string) (Detail, error) {
	app, err := r.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}

	detail := Detail{Application: app}

	if profile, err := r.Profiles.GetByID(ctx, app.UserID); err == nil {
		detail.Applicant = ApplicantProfile{
			ID:        profile.ID,
			Name:      profile.Name,
			Email:     profile.Email,
			Phone:     profile.Phone,
			AvatarURL: profile.AvatarURL,
		}
	}
	if resume, err := r.Resumes.GetByID(ctx, app.ResumeID); err == nil {
		detail.Resume = ResumeSummary{
			ID:              resume.ID,
			Title:           resume.Title,
			Categories:      resume.Categories,
			Region:          resume.Region,
			ExperienceLevel: resume.ExperienceLevel,
		}
	}
	if posting, err := r.Postings.GetByID(ctx, app.JobPostingID); err == nil {
		detail.Posting = PostingSummary{
			ID:       posting.ID,
			Title:    posting.Title,
			Region:   posting.Region,
			CenterID: posting.CenterID,
		}
		if center, err := r.Centers.GetByID(ctx, posting.CenterID); err == nil {
			detail.Posting.CenterName = center.Name
		}
	}
	return detail, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]UserApplication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	matched := []Application{}
	for _, app := range r.data {
		if app.UserID == userID {
			matched = append(matched, app)
		}
	}
	r.mu.RUnlock()

	sortNewestFirst(matched)

	apps := []UserApplication{}
	for _, app := range matched {
		row := UserApplication{Application: app}
		if posting, err := r.Postings.GetByID(ctx, app.JobPostingID); err == nil {
			row.PostingTitle = posting.Title
			if center, err := r.Centers.GetByID(ctx, posting.CenterID); err == nil {
				row.CenterName = center.Name
			}
		}
		apps = append(apps, row)
	}
	return apps, nil
}

func (r *MemoryRepo) ListByPosting(ctx context.Context, postingID string) ([]PostingApplication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	matched := []Application{}
	for _, app := range r.data {
		if app.JobPostingID == postingID {
			matched = append(matched, app)
		}
	}
	r.mu.RUnlock()

	sortNewestFirst(matched)

	apps := []PostingApplication{}
	for _, app := range matched {
		row := PostingApplication{Application: app}
		if profile, err := r.Profiles.GetByID(ctx, app.UserID); err == nil {
			row.ApplicantName = profile.Name
			row.ApplicantEmail = profile.Email
		}
		if resume, err := r.Resumes.GetByID(ctx, app.ResumeID); err == nil {
			row.ResumeTitle = resume.Title
		}
		apps = append(apps, row)
	}
	return apps, nil
}

func (r *MemoryRepo) ListRecentByCenter(ctx context.Context, centerID string, limit int) ([]RecentApplicant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	all := make([]Application, 0, len(r.data))
	for _, app := range r.data {
		all = append(all, app)
	}
	r.mu.RUnlock()

	sortNewestFirst(all)

	recent := []RecentApplicant{}
	for _, app := range all {
		posting, err := r.Postings.GetByID(ctx, app.JobPostingID)
		if err != nil || posting.CenterID != centerID {
			continue
		}
		row := RecentApplicant{
			ID:           app.ID,
			Status:       app.Status,
			CreatedAt:    app.CreatedAt,
			JobPostingID: posting.ID,
			PostingTitle: posting.Title,
		}
		if profile, err := r.Profiles.GetByID(ctx, app.UserID); err == nil {
			row.ApplicantName = profile.Name
			row.ApplicantEmail = profile.Email
		}
		if resume, err := r.Resumes.GetByID(ctx, app.ResumeID); err == nil {
			row.ResumeID = resume.ID
			row.ResumeTitle = resume.Title
		}
		recent = append(recent, row)
		if len(recent) == limit {
			break
		}
	}
	return recent, nil
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, id, fromStatus, toStatus, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.data[id]
	if !ok || app.Status != fromStatus {
		return ErrNotFound
	}
	app.Status = toStatus
	app.Message = message
	app.UpdatedAt = time.Now().UTC()
	r.data[id] = app
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func (r *MemoryRepo) CountByUser(ctx context.Context, userID string) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	total, pending := 0, 0
	for _, app := range r.data {
		if app.UserID != userID {
			continue
		}
		total++
		if app.Status == StatusPending {
			pending++
		}
	}
	return total, pending, nil
}

func (r *MemoryRepo) CountByCenter(ctx context.Context, centerID string) (CenterStats, error) {
	if err := ctx.Err(); err != nil {
		return CenterStats{}, err
	}

	r.mu.RLock()
	apps := make([]Application, 0, len(r.data))
	for _, app := range r.data {
		apps = append(apps, app)
	}
	r.mu.RUnlock()

	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := now.Add(-7 * 24 * time.Hour)

	var stats CenterStats
	for _, app := range apps {
		posting, err := r.Postings.GetByID(ctx, app.JobPostingID)
		if err != nil || posting.CenterID != centerID {
			continue
		}
		stats.Total++
		if !app.CreatedAt.Before(dayStart) {
			stats.Today++
		}
		if !app.CreatedAt.Before(weekStart) {
			stats.Week++
		}
	}
	return stats, nil
}

func sortNewestFirst(apps []Application) {
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].CreatedAt.After(apps[j].CreatedAt)
	})
}
