package likes

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fithire-backend/internal/centers"
	"fithire-backend/internal/jobpostings"
)

// MemoryRepo is an in-memory implementation of LikesRepo.
type MemoryRepo struct {
	mu   sync.Mutex
	data map[string]Like // userID+postingID -> like

	Postings jobpostings.JobPostingsRepo
	Centers  centers.CentersRepo
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo(postings jobpostings.JobPostingsRepo, centersRepo centers.CentersRepo) *MemoryRepo {
	return &MemoryRepo{
		data:     make(map[string]Like),
		Postings: postings,
		Centers:  centersRepo,
	}
}

func likeKey(userID, postingID string) string {
	return userID + "|" + postingID
}

func (r *MemoryRepo) Toggle(ctx context.Context, userID, postingID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := likeKey(userID, postingID)
	if _, ok := r.data[key]; ok {
		delete(r.data, key)
		return false, nil
	}
	r.data[key] = Like{
		ID:           uuid.NewString(),
		UserID:       userID,
		JobPostingID: postingID,
		CreatedAt:    time.Now().UTC(),
	}
	return true, nil
}

func (r *MemoryRepo) IsLiked(ctx context.Context, userID, postingID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.data[likeKey(userID, postingID)]
	return ok, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]LikedPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	matched := []Like{}
	for _, like := range r.data {
		if like.UserID == userID {
			matched = append(matched, like)
		}
	}
	r.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	liked := []LikedPosting{}
	for _, like := range matched {
		row := LikedPosting{
			JobPostingID: like.JobPostingID,
			LikedAt:      like.CreatedAt,
		}
		if posting, err := r.Postings.GetByID(ctx, like.JobPostingID); err == nil {
			row.Title = posting.Title
			row.Region = posting.Region
			row.IsActive = posting.IsActive
			if center, err := r.Centers.GetByID(ctx, posting.CenterID); err == nil {
				row.CenterName = center.Name
			}
		}
		liked = append(liked, row)
	}
	return liked, nil
}

func (r *MemoryRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, like := range r.data {
		if like.UserID == userID {
			count++
		}
	}
	return count, nil
}
