package applications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fithire-backend/internal/centers"
	"fithire-backend/internal/jobpostings"
	"fithire-backend/internal/resumes"
	"fithire-backend/internal/shared/metrics"
)

// Service contains the application workflow. Status changes go through the
// transition table; ownership is checked against the stored rows on every
// call, never against anything the client sends.
type Service struct {
	Repo     ApplicationsRepo
	Postings jobpostings.JobPostingsRepo
	Centers  centers.CentersRepo
	Resumes  resumes.ResumesRepo
}

// NewService constructs a Service.
func NewService(repo ApplicationsRepo, postings jobpostings.JobPostingsRepo, centersRepo centers.CentersRepo, resumesRepo resumes.ResumesRepo) *Service {
	return &Service{Repo: repo, Postings: postings, Centers: centersRepo, Resumes: resumesRepo}
}

// Apply submits an application to a posting. The caller must own the resume,
// the posting must be open, and the unique constraint enforces one
// application per applicant and posting.
func (s *Service) Apply(ctx context.Context, userID, postingID, resumeID string) (Application, error) {
	if strings.TrimSpace(resumeID) == "" {
		return Application{}, fmt.Errorf("%w: resumeId is required", ErrInvalidInput)
	}

	resume, err := s.Resumes.GetByID(ctx, resumeID)
	if err != nil {
		return Application{}, err
	}
	if resume.UserID != userID {
		return Application{}, ErrForbidden
	}

	posting, err := s.Postings.GetByID(ctx, postingID)
	if err != nil {
		return Application{}, err
	}
	if !posting.IsActive {
		return Application{}, ErrPostingClosed
	}
	if posting.Deadline != nil && posting.Deadline.Before(startOfToday()) {
		return Application{}, ErrPostingClosed
	}

	now := time.Now().UTC()
	app := Application{
		ID:           uuid.NewString(),
		JobPostingID: posting.ID,
		UserID:       userID,
		ResumeID:     resume.ID,
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, err
	}
	metrics.IncApplicationSubmitted()
	return app, nil
}

// Cancel withdraws the caller's own application while it is still pending.
func (s *Service) Cancel(ctx context.Context, userID, applicationID string) error {
	app, err := s.Repo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app.UserID != userID {
		return ErrForbidden
	}
	if app.Status != StatusPending {
		return ErrNotCancellable
	}
	if err := s.Repo.Delete(ctx, applicationID); err != nil {
		return err
	}
	metrics.IncApplicationCancelled()
	return nil
}

// UpdateStatus moves an application through the workflow. Only the center
// that owns the posting may call it; rejection requires a message, checked
// before anything is written. The returned label is "from->to", or empty
// for a same-status message refresh.
func (s *Service) UpdateStatus(ctx context.Context, callerID, applicationID, status, message string) (Application, string, error) {
	status = strings.TrimSpace(status)
	message = strings.TrimSpace(message)

	if !ValidStatus(status) {
		return Application{}, "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	if status == StatusRejected && message == "" {
		return Application{}, "", fmt.Errorf("%w: a message is required when rejecting", ErrInvalidInput)
	}

	app, err := s.Repo.GetByID(ctx, applicationID)
	if err != nil {
		return Application{}, "", err
	}

	if err := s.requirePostingOwner(ctx, callerID, app.JobPostingID); err != nil {
		return Application{}, "", err
	}

	if !allowedTransition(app.Status, status) {
		return Application{}, "", fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, app.Status, status)
	}

	if err := s.Repo.UpdateStatus(ctx, applicationID, app.Status, status, message); err != nil {
		return Application{}, "", err
	}
	transition := ""
	if app.Status != status {
		transition = app.Status + "->" + status
		metrics.IncStatusTransition(app.Status, status)
	}

	app.Status = status
	app.Message = message
	app.UpdatedAt = time.Now().UTC()
	return app, transition, nil
}

// Detail returns the joined application view for the applicant or the
// owning center; everyone else gets ErrForbidden.
func (s *Service) Detail(ctx context.Context, callerID, applicationID string) (Detail, error) {
	detail, err := s.Repo.GetDetail(ctx, applicationID)
	if err != nil {
		return Detail{}, err
	}
	if detail.UserID == callerID {
		return detail, nil
	}
	center, err := s.Centers.GetByOwner(ctx, callerID)
	if err == nil && center.ID == detail.Posting.CenterID {
		return detail, nil
	}
	return Detail{}, ErrForbidden
}

// ListMine returns the caller's applications with posting context.
func (s *Service) ListMine(ctx context.Context, userID string) ([]UserApplication, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// ListForPosting returns the applicants of a posting owned by the caller.
func (s *Service) ListForPosting(ctx context.Context, callerID, postingID string) ([]PostingApplication, error) {
	if err := s.requirePostingOwner(ctx, callerID, postingID); err != nil {
		return nil, err
	}
	return s.Repo.ListByPosting(ctx, postingID)
}

func (s *Service) requirePostingOwner(ctx context.Context, callerID, postingID string) error {
	posting, err := s.Postings.GetByID(ctx, postingID)
	if err != nil {
		return err
	}
	center, err := s.Centers.GetByOwner(ctx, callerID)
	if err != nil {
		if errors.Is(err, centers.ErrNotFound) {
			return ErrForbidden
		}
		return err
	}
	if posting.CenterID != center.ID {
		return ErrForbidden
	}
	return nil
}

func startOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
