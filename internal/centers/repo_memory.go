package centers

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of CentersRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Center // id -> center
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Center),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, center Center) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data {
		if existing.OwnerID == center.OwnerID {
			return ErrAlreadyExists
		}
	}
	r.data[center.ID] = center
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Center, error) {
	if err := ctx.Err(); err != nil {
		return Center{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	center, ok := r.data[id]
	if !ok {
		return Center{}, ErrNotFound
	}
	return center, nil
}

func (r *MemoryRepo) GetByOwner(ctx context.Context, ownerID string) (Center, error) {
	if err := ctx.Err(); err != nil {
		return Center{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, center := range r.data {
		if center.OwnerID == ownerID {
			return center, nil
		}
	}
	return Center{}, ErrNotFound
}

func (r *MemoryRepo) Update(ctx context.Context, center Center) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[center.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Name = center.Name
	existing.Description = center.Description
	existing.Address = center.Address
	existing.Region = center.Region
	existing.LogoURL = center.LogoURL
	existing.ContactEmail = center.ContactEmail
	existing.ContactPhone = center.ContactPhone
	existing.UpdatedAt = center.UpdatedAt
	r.data[center.ID] = existing
	return nil
}
