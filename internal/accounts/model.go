package accounts

import "time"

// Account roles. Role is chosen at signup and never changes afterwards.
const (
	RoleTrainer = "trainer"
	RoleCenter  = "center"
)

// Profile represents an account holder, either a trainer looking for work
// or the operator of a fitness center.
type Profile struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	Role         string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleTrainer || role == RoleCenter
}
