package jobpostings

import "context"

// JobPostingsRepo defines persistence operations for job postings.
type JobPostingsRepo interface {
	Create(ctx context.Context, posting JobPosting) error
	GetByID(ctx context.Context, id string) (JobPosting, error)
	List(ctx context.Context, filter Filter) ([]JobPosting, error)
	ListByCenter(ctx context.Context, centerID string) ([]JobPosting, error)
	Update(ctx context.Context, posting JobPosting) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
	IncrementView(ctx context.Context, id string) error
	CountByCenter(ctx context.Context, centerID string) (total int, active int, err error)
}
