package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string // normalised
	PasswordHash string // argon2 encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserPatch holds the mutable profile fields. Nil means unchanged. UpdatedAt
// is stored as given.
type UserPatch struct {
	Username  *string
	Email     *string
	UpdatedAt time.Time
}

func (p UserPatch) IsEmpty() bool { return p.Username == nil && p.Email == nil }
