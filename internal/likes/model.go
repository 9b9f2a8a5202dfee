package likes

import "time"

// Like marks a job posting saved by an account. One per account and posting.
type Like struct {
	ID           string
	UserID       string
	JobPostingID string
	CreatedAt    time.Time
}

// LikedPosting is a list row joining the like with its posting.
type LikedPosting struct {
	JobPostingID string
	Title        string
	Region       string
	CenterName   string
	IsActive     bool
	LikedAt      time.Time
}
