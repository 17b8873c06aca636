package user

import "time"

// User represents a row in the platform's "user" table. PasswordHash is
// populated only by write paths inside this package and never serialized.
type User struct {
	ID         string
	Email      string
	FirstName  *string
	LastName   *string
	Role       string
	RoleSlug   string
	Disabled   bool
	MFAEnabled bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Ref identifies a user without any profile or credential data. It is what
// the password-change flow looks up and what its response echoes back.
type Ref struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
