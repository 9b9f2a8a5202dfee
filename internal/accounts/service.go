package accounts

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fithire-backend/internal/shared/auth"
)

const minPasswordLength = 6

// Service contains business logic for account signup, login and profiles.
type Service struct {
	Repo ProfilesRepo
}

// NewService constructs a Service.
func NewService(repo ProfilesRepo) *Service {
	return &Service{Repo: repo}
}

// SignupInput carries the fields accepted at registration.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// Signup registers a new account and returns the profile with a session token.
func (s *Service) Signup(ctx context.Context, in SignupInput) (Profile, string, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	in.Role = strings.TrimSpace(in.Role)

	if _, err := mail.ParseAddress(in.Email); err != nil {
		return Profile{}, "", fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLength {
		return Profile{}, "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if in.Name == "" {
		return Profile{}, "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !ValidRole(in.Role) {
		return Profile{}, "", fmt.Errorf("%w: role must be trainer or center", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Profile{}, "", err
	}

	now := time.Now().UTC()
	profile := Profile{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(ctx, profile); err != nil {
		return Profile{}, "", err
	}

	token, err := s.issueToken(profile)
	if err != nil {
		return Profile{}, "", err
	}
	return profile, token, nil
}

// Login verifies credentials and returns the profile with a session token.
// Unknown email and wrong password both map to ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (Profile, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Profile{}, "", ErrInvalidCredentials
	}

	profile, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Profile{}, "", ErrInvalidCredentials
		}
		return Profile{}, "", err
	}
	if profile.PasswordHash == "" {
		return Profile{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return Profile{}, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(profile)
	if err != nil {
		return Profile{}, "", err
	}
	return profile, token, nil
}

// Get returns the profile for an account ID.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID)
}

// UpdateInput carries the editable profile fields. Email and role are fixed.
type UpdateInput struct {
	Name      string
	Phone     string
	AvatarURL string
}

// Update edits the caller's own profile.
func (s *Service) Update(ctx context.Context, userID string, in UpdateInput) (Profile, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return Profile{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	profile, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	profile.Name = in.Name
	profile.Phone = strings.TrimSpace(in.Phone)
	profile.AvatarURL = strings.TrimSpace(in.AvatarURL)
	profile.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

func (s *Service) issueToken(profile Profile) (string, error) {
	return auth.SignJWT(auth.Claims{
		Sub:   profile.ID,
		Email: profile.Email,
		Name:  profile.Name,
		Role:  profile.Role,
	})
}
