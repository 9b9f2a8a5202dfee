package centers

import "context"

// CentersRepo defines persistence operations for centers.
type CentersRepo interface {
	Create(ctx context.Context, center Center) error
	GetByID(ctx context.Context, id string) (Center, error)
	GetByOwner(ctx context.Context, ownerID string) (Center, error)
	Update(ctx context.Context, center Center) error
}
