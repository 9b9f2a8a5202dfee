package jobpostings

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of JobPostingsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]JobPosting // id -> posting
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]JobPosting),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, posting JobPosting) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[posting.ID] = posting
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return JobPosting{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	posting, ok := r.data[id]
	if !ok {
		return JobPosting{}, ErrNotFound
	}
	return posting, nil
}

func (r *MemoryRepo) List(ctx context.Context, filter Filter) ([]JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	matched := []JobPosting{}
	for _, posting := range r.data {
		if matches(posting, filter) {
			matched = append(matched, posting)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return paginate(matched, filter.Limit, filter.Offset), nil
}

func (r *MemoryRepo) ListByCenter(ctx context.Context, centerID string) ([]JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	matched := []JobPosting{}
	for _, posting := range r.data {
		if posting.CenterID == centerID {
			matched = append(matched, posting)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *MemoryRepo) Update(ctx context.Context, posting JobPosting) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[posting.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Title = posting.Title
	existing.Description = posting.Description
	existing.Region = posting.Region
	existing.Categories = posting.Categories
	existing.Gender = posting.Gender
	existing.EmploymentType = posting.EmploymentType
	existing.ExperienceLevel = posting.ExperienceLevel
	existing.SalaryType = posting.SalaryType
	existing.SalaryMin = posting.SalaryMin
	existing.SalaryMax = posting.SalaryMax
	existing.Deadline = posting.Deadline
	existing.UpdatedAt = posting.UpdatedAt
	r.data[posting.ID] = existing
	return nil
}

func (r *MemoryRepo) SetActive(ctx context.Context, id string, active bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	posting, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	posting.IsActive = active
	r.data[id] = posting
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func (r *MemoryRepo) IncrementView(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	posting, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	posting.ViewCount++
	r.data[id] = posting
	return nil
}

func (r *MemoryRepo) CountByCenter(ctx context.Context, centerID string) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	total, active := 0, 0
	for _, posting := range r.data {
		if posting.CenterID != centerID {
			continue
		}
		total++
		if posting.IsActive {
			active++
		}
	}
	return total, active, nil
}

func matches(posting JobPosting, filter Filter) bool {
	if !posting.IsActive {
		return false
	}
	if filter.Region != "" && posting.Region != filter.Region {
		return false
	}
	if len(filter.Categories) > 0 && !overlaps(posting.Categories, filter.Categories) {
		return false
	}
	if filter.Gender != "" && posting.Gender != filter.Gender && posting.Gender != GenderAny {
		return false
	}
	if filter.EmploymentType != "" && posting.EmploymentType != filter.EmploymentType {
		return false
	}
	if filter.ExperienceLevel != "" && posting.ExperienceLevel != filter.ExperienceLevel {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		title := strings.ToLower(posting.Title)
		description := strings.ToLower(posting.Description)
		if !strings.Contains(title, needle) && !strings.Contains(description, needle) {
			return false
		}
	}
	return true
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func paginate(postings []JobPosting, limit, offset int) []JobPosting {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(postings) {
		return []JobPosting{}
	}
	end := len(postings)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return postings[offset:end]
}
