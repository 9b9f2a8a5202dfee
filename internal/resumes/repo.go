package resumes

import "context"

// ResumesRepo defines persistence operations for resumes.
type ResumesRepo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, id string) (Resume, error)
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	Update(ctx context.Context, resume Resume) error
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int, error)
}
