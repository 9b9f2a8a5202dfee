package likes

import "context"

// LikesRepo defines persistence operations for likes.
type LikesRepo interface {
	// Toggle flips the like state atomically and reports the new state.
	Toggle(ctx context.Context, userID, postingID string) (liked bool, err error)
	IsLiked(ctx context.Context, userID, postingID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]LikedPosting, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}
