package accounts

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of ProfilesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Profile // id -> profile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Profile),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, profile Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data {
		if strings.EqualFold(existing.Email, profile.Email) {
			return ErrDuplicateEmail
		}
	}
	r.data[profile.ID] = profile
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.data[id]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return profile, nil
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, profile := range r.data {
		if strings.EqualFold(profile.Email, email) {
			return profile, nil
		}
	}
	return Profile{}, ErrNotFound
}

func (r *MemoryRepo) Update(ctx context.Context, profile Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[profile.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Name = profile.Name
	existing.Phone = profile.Phone
	existing.AvatarURL = profile.AvatarURL
	existing.UpdatedAt = profile.UpdatedAt
	r.data[profile.ID] = existing
	return nil
}
