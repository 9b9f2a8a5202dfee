package resumes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for resumes.
type Service struct {
	Repo ResumesRepo
}

// NewService constructs a Service.
func NewService(repo ResumesRepo) *Service {
	return &Service{Repo: repo}
}

// Input carries the writable resume fields.
type Input struct {
	Title           string
	Categories      []string
	Region          string
	ExperienceLevel string
	Gender          string
	BirthYear       int
	Introduction    string
	Certifications  []string
	CareerHistory   []CareerEntry
	Education       []EducationEntry
	IsPrimary       bool
	IsPublic        bool
}

func (in *Input) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Region = strings.TrimSpace(in.Region)
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	in.Categories = trimNonEmpty(in.Categories)
	if len(in.Categories) == 0 {
		return fmt.Errorf("%w: at least one category is required", ErrInvalidInput)
	}
	if in.Region == "" {
		return fmt.Errorf("%w: region is required", ErrInvalidInput)
	}
	in.Certifications = trimNonEmpty(in.Certifications)
	for i := range in.CareerHistory {
		entry := &in.CareerHistory[i]
		entry.Company = strings.TrimSpace(entry.Company)
		entry.Position = strings.TrimSpace(entry.Position)
		entry.Period = strings.TrimSpace(entry.Period)
		if entry.Company == "" || entry.Position == "" || entry.Period == "" {
			return fmt.Errorf("%w: career entries need company, position and period", ErrInvalidInput)
		}
	}
	for i := range in.Education {
		entry := &in.Education[i]
		entry.School = strings.TrimSpace(entry.School)
		entry.Major = strings.TrimSpace(entry.Major)
		entry.Period = strings.TrimSpace(entry.Period)
		if entry.School == "" || entry.Major == "" || entry.Period == "" {
			return fmt.Errorf("%w: education entries need school, major and period", ErrInvalidInput)
		}
	}
	return nil
}

// Create writes a new resume for the caller.
func (s *Service) Create(ctx context.Context, userID string, in Input) (Resume, error) {
	if err := in.validate(); err != nil {
		return Resume{}, err
	}

	now := time.Now().UTC()
	resume := Resume{
		ID:              uuid.NewString(),
		UserID:          userID,
		Title:           in.Title,
		Categories:      in.Categories,
		Region:          in.Region,
		ExperienceLevel: strings.TrimSpace(in.ExperienceLevel),
		Gender:          strings.TrimSpace(in.Gender),
		BirthYear:       in.BirthYear,
		Introduction:    strings.TrimSpace(in.Introduction),
		Certifications:  in.Certifications,
		CareerHistory:   in.CareerHistory,
		Education:       in.Education,
		IsPrimary:       in.IsPrimary,
		IsPublic:        in.IsPublic,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// List returns the caller's resumes, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns one of the caller's own resumes.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	return s.owned(ctx, userID, resumeID)
}

// Update edits one of the caller's own resumes.
func (s *Service) Update(ctx context.Context, userID, resumeID string, in Input) (Resume, error) {
	if err := in.validate(); err != nil {
		return Resume{}, err
	}

	resume, err := s.owned(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, err
	}

	resume.Title = in.Title
	resume.Categories = in.Categories
	resume.Region = in.Region
	resume.ExperienceLevel = strings.TrimSpace(in.ExperienceLevel)
	resume.Gender = strings.TrimSpace(in.Gender)
	resume.BirthYear = in.BirthYear
	resume.Introduction = strings.TrimSpace(in.Introduction)
	resume.Certifications = in.Certifications
	resume.CareerHistory = in.CareerHistory
	resume.Education = in.Education
	resume.IsPrimary = in.IsPrimary
	resume.IsPublic = in.IsPublic
	resume.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Delete removes one of the caller's own resumes.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	if _, err := s.owned(ctx, userID, resumeID); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, resumeID)
}

func (s *Service) owned(ctx context.Context, userID, resumeID string) (Resume, error) {
	resume, err := s.Repo.GetByID(ctx, resumeID)
	if err != nil {
		return Resume{}, err
	}
	if resume.UserID != userID {
		return Resume{}, ErrForbidden
	}
	return resume, nil
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
