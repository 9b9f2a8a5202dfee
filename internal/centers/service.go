package centers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for centers.
type Service struct {
	Repo CentersRepo
}

// NewService constructs a Service.
func NewService(repo CentersRepo) *Service {
	return &Service{Repo: repo}
}

// Input carries the writable center fields.
type Input struct {
	Name         string
	Description  string
	Address      string
	Region       string
	LogoURL      string
	ContactEmail string
	ContactPhone string
}

func (in *Input) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Region = strings.TrimSpace(in.Region)
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Region == "" {
		return fmt.Errorf("%w: region is required", ErrInvalidInput)
	}
	return nil
}

// Create registers the caller's center. The unique owner constraint backs
// the one-center-per-account rule.
func (s *Service) Create(ctx context.Context, ownerID string, in Input) (Center, error) {
	if err := in.validate(); err != nil {
		return Center{}, err
	}

	now := time.Now().UTC()
	center := Center{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		Name:         in.Name,
		Description:  strings.TrimSpace(in.Description),
		Address:      strings.TrimSpace(in.Address),
		Region:       in.Region,
		LogoURL:      strings.TrimSpace(in.LogoURL),
		ContactEmail: strings.TrimSpace(in.ContactEmail),
		ContactPhone: strings.TrimSpace(in.ContactPhone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(ctx, center); err != nil {
		return Center{}, err
	}
	return center, nil
}

// Mine returns the caller's own center.
func (s *Service) Mine(ctx context.Context, ownerID string) (Center, error) {
	return s.Repo.GetByOwner(ctx, ownerID)
}

// Get returns a center by ID.
func (s *Service) Get(ctx context.Context, id string) (Center, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update edits the caller's own center.
func (s *Service) Update(ctx context.Context, ownerID string, in Input) (Center, error) {
	if err := in.validate(); err != nil {
		return Center{}, err
	}

	center, err := s.Repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return Center{}, err
	}

	center.Name = in.Name
	center.Description = strings.TrimSpace(in.Description)
	center.Address = strings.TrimSpace(in.Address)
	center.Region = in.Region
	center.LogoURL = strings.TrimSpace(in.LogoURL)
	center.ContactEmail = strings.TrimSpace(in.ContactEmail)
	center.ContactPhone = strings.TrimSpace(in.ContactPhone)
	center.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, center); err != nil {
		return Center{}, err
	}
	return center, nil
}
