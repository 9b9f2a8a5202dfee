package accounts

import "time"

// ProfileResponse is the outward-facing representation of a profile.
// The password hash never leaves the service.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionResponse carries a session token alongside the profile.
type SessionResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

func toResponse(profile Profile) ProfileResponse {
	return ProfileResponse{
		ID:        profile.ID,
		Email:     profile.Email,
		Name:      profile.Name,
		Phone:     profile.Phone,
		Role:      profile.Role,
		AvatarURL: profile.AvatarURL,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}
