package likes

import (
	"context"

	"fithire-backend/internal/jobpostings"
	"fithire-backend/internal/shared/metrics"
)

// Service contains business logic for likes.
type Service struct {
	Repo     LikesRepo
	Postings jobpostings.JobPostingsRepo
}

// NewService constructs a Service.
func NewService(repo LikesRepo, postings jobpostings.JobPostingsRepo) *Service {
	return &Service{Repo: repo, Postings: postings}
}

// Toggle flips the like state for a posting and returns the new state.
func (s *Service) Toggle(ctx context.Context, userID, postingID string) (bool, error) {
	if _, err := s.Postings.GetByID(ctx, postingID); err != nil {
		return false, err
	}
	liked, err := s.Repo.Toggle(ctx, userID, postingID)
	if err != nil {
		return false, err
	}
	metrics.IncLikeToggled()
	return liked, nil
}

// IsLiked reports whether the caller has liked the posting.
func (s *Service) IsLiked(ctx context.Context, userID, postingID string) (bool, error) {
	return s.Repo.IsLiked(ctx, userID, postingID)
}

// ListMine returns the caller's liked postings, newest first.
func (s *Service) ListMine(ctx context.Context, userID string) ([]LikedPosting, error) {
	return s.Repo.ListByUser(ctx, userID)
}
