package centers

import "time"

// Center represents a fitness center owned by a center-role account.
// Each account owns at most one center.
type Center struct {
	ID           string
	OwnerID      string
	Name         string
	Description  string
	Address      string
	Region       string
	LogoURL      string
	ContactEmail string
	ContactPhone string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
