package applications

import "context"

// ApplicationsRepo defines persistence operations for applications.
type ApplicationsRepo interface {
	Create(ctx context.Context, app Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	GetDetail(ctx context.Context, id string) (Detail, error)
	ListByUser(ctx context.Context, userID string) ([]UserApplication, error)
	ListByPosting(ctx context.Context, postingID string) ([]PostingApplication, error)
	// UpdateStatus applies the change only while the row still holds
	// fromStatus; a zero-row update reports ErrNotFound.
	UpdateStatus(ctx context.Context, id, fromStatus, toStatus, message string) error
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (total int, pending int, err error)
	CountByCenter(ctx context.Context, centerID string) (CenterStats, error)
	// ListRecentByCenter returns the newest applications across all of a
	// center's postings, capped at limit rows.
	ListRecentByCenter(ctx context.Context, centerID string, limit int) ([]RecentApplicant, error)
}
