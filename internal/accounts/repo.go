package accounts

import "context"

// ProfilesRepo defines persistence operations for account profiles.
type ProfilesRepo interface {
	Create(ctx context.Context, profile Profile) error
	GetByID(ctx context.Context, id string) (Profile, error)
	GetByEmail(ctx context.Context, email string) (Profile, error)
	Update(ctx context.Context, profile Profile) error
}
