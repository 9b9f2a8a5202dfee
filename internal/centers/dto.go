package centers

import "time"

// CenterResponse is the outward-facing representation of a center.
type CenterResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Address      string    `json:"address,omitempty"`
	Region       string    `json:"region"`
	LogoURL      string    `json:"logoUrl,omitempty"`
	ContactEmail string    `json:"contactEmail,omitempty"`
	ContactPhone string    `json:"contactPhone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toResponse(center Center) CenterResponse {
	return CenterResponse{
		ID:           center.ID,
		OwnerID:      center.OwnerID,
		Name:         center.Name,
		Description:  center.Description,
		Address:      center.Address,
		Region:       center.Region,
		LogoURL:      center.LogoURL,
		ContactEmail: center.ContactEmail,
		ContactPhone: center.ContactPhone,
		CreatedAt:    center.CreatedAt,
		UpdatedAt:    center.UpdatedAt,
	}
}
