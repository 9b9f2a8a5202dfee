package jobpostings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fithire-backend/internal/centers"
)

// Service contains business logic for job postings. Write operations resolve
// the caller's center and reject postings the center does not own.
type Service struct {
	Repo    JobPostingsRepo
	Centers centers.CentersRepo
}

// NewService constructs a Service.
func NewService(repo JobPostingsRepo, centersRepo centers.CentersRepo) *Service {
	return &Service{Repo: repo, Centers: centersRepo}
}

// Input carries the writable posting fields.
type Input struct {
	Title           string
	Description     string
	Region          string
	Categories      []string
	Gender          string
	EmploymentType  string
	ExperienceLevel string
	SalaryType      string
	SalaryMin       *int64
	SalaryMax       *int64
	Deadline        *time.Time
}

func (in *Input) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Region = strings.TrimSpace(in.Region)
	in.EmploymentType = strings.TrimSpace(in.EmploymentType)
	in.ExperienceLevel = strings.TrimSpace(in.ExperienceLevel)
	in.Gender = strings.TrimSpace(in.Gender)
	in.SalaryType = strings.TrimSpace(in.SalaryType)

	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.Region == "" {
		return fmt.Errorf("%w: region is required", ErrInvalidInput)
	}
	in.Categories = trimNonEmpty(in.Categories)
	if len(in.Categories) == 0 {
		return fmt.Errorf("%w: at least one category is required", ErrInvalidInput)
	}
	if in.EmploymentType == "" {
		return fmt.Errorf("%w: employment type is required", ErrInvalidInput)
	}
	if in.ExperienceLevel == "" {
		return fmt.Errorf("%w: experience level is required", ErrInvalidInput)
	}
	if in.Gender == "" {
		in.Gender = GenderAny
	}
	if !validGender(in.Gender) {
		return fmt.Errorf("%w: gender must be male, female or any", ErrInvalidInput)
	}
	if in.SalaryType != "" && !validSalaryType(in.SalaryType) {
		return fmt.Errorf("%w: salary type must be monthly, hourly or negotiable", ErrInvalidInput)
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return fmt.Errorf("%w: salary minimum cannot exceed maximum", ErrInvalidInput)
	}
	return nil
}

// Create publishes a new posting under the caller's center.
func (s *Service) Create(ctx context.Context, ownerID string, in Input) (JobPosting, error) {
	if err := in.validate(); err != nil {
		return JobPosting{}, err
	}

	center, err := s.Centers.GetByOwner(ctx, ownerID)
	if err != nil {
		return JobPosting{}, err
	}

	now := time.Now().UTC()
	posting := JobPosting{
		ID:              uuid.NewString(),
		CenterID:        center.ID,
		Title:           in.Title,
		Description:     strings.TrimSpace(in.Description),
		Region:          in.Region,
		Categories:      in.Categories,
		Gender:          in.Gender,
		EmploymentType:  in.EmploymentType,
		ExperienceLevel: in.ExperienceLevel,
		SalaryType:      in.SalaryType,
		SalaryMin:       in.SalaryMin,
		SalaryMax:       in.SalaryMax,
		Deadline:        in.Deadline,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.Create(ctx, posting); err != nil {
		return JobPosting{}, err
	}
	return posting, nil
}

// List returns active postings matching the filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]JobPosting, error) {
	filter.Region = strings.TrimSpace(filter.Region)
	filter.Categories = trimNonEmpty(filter.Categories)
	filter.Gender = strings.TrimSpace(filter.Gender)
	filter.EmploymentType = strings.TrimSpace(filter.EmploymentType)
	filter.ExperienceLevel = strings.TrimSpace(filter.ExperienceLevel)
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Gender != "" && !validGender(filter.Gender) {
		return nil, fmt.Errorf("%w: gender must be male, female or any", ErrInvalidInput)
	}
	return s.Repo.List(ctx, filter)
}

// View returns a posting for public display and bumps its view counter.
func (s *Service) View(ctx context.Context, id string) (JobPosting, error) {
	posting, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return JobPosting{}, err
	}
	// The counter is best effort; a failed bump never hides the posting.
	if err := s.Repo.IncrementView(ctx, id); err == nil {
		posting.ViewCount++
	}
	return posting, nil
}

// ListMine returns every posting of the caller's center, active or not.
func (s *Service) ListMine(ctx context.Context, ownerID string) ([]JobPosting, error) {
	center, err := s.Centers.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByCenter(ctx, center.ID)
}

// GetMine returns one of the caller's own postings.
func (s *Service) GetMine(ctx context.Context, ownerID, postingID string) (JobPosting, error) {
	return s.owned(ctx, ownerID, postingID)
}

// Update edits a posting owned by the caller's center.
func (s *Service) Update(ctx context.Context, ownerID, postingID string, in Input) (JobPosting, error) {
	if err := in.validate(); err != nil {
		return JobPosting{}, err
	}

	posting, err := s.owned(ctx, ownerID, postingID)
	if err != nil {
		return JobPosting{}, err
	}

	posting.Title = in.Title
	posting.Description = strings.TrimSpace(in.Description)
	posting.Region = in.Region
	posting.Categories = in.Categories
	posting.Gender = in.Gender
	posting.EmploymentType = in.EmploymentType
	posting.ExperienceLevel = in.ExperienceLevel
	posting.SalaryType = in.SalaryType
	posting.SalaryMin = in.SalaryMin
	posting.SalaryMax = in.SalaryMax
	posting.Deadline = in.Deadline
	posting.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, posting); err != nil {
		return JobPosting{}, err
	}
	return posting, nil
}

// SetActive opens or closes a posting owned by the caller's center.
func (s *Service) SetActive(ctx context.Context, ownerID, postingID string, active bool) (JobPosting, error) {
	posting, err := s.owned(ctx, ownerID, postingID)
	if err != nil {
		return JobPosting{}, err
	}
	if err := s.Repo.SetActive(ctx, postingID, active); err != nil {
		return JobPosting{}, err
	}
	posting.IsActive = active
	posting.UpdatedAt = time.Now().UTC()
	return posting, nil
}

// Delete removes a posting owned by the caller's center.
func (s *Service) Delete(ctx context.Context, ownerID, postingID string) error {
	if _, err := s.owned(ctx, ownerID, postingID); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, postingID)
}

func (s *Service) owned(ctx context.Context, ownerID, postingID string) (JobPosting, error) {
	center, err := s.Centers.GetByOwner(ctx, ownerID)
	if err != nil {
		return JobPosting{}, err
	}
	posting, err := s.Repo.GetByID(ctx, postingID)
	if err != nil {
		return JobPosting{}, err
	}
	if posting.CenterID != center.ID {
		return JobPosting{}, ErrForbidden
	}
	return posting, nil
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
