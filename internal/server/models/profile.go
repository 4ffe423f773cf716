package models

import "strings"

const (
	StateActive   = "active"
	StateInactive = "inactive"
)

// Profile is the user payload served to OAuth clients.
type Profile struct {
	ID       int64  `json:"id"`
	State    string `json:"state"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// NewProfile builds the payload of an active user; the login doubles as
// email and username.
func NewProfile(r *ProfileRecord) *Profile {
	return &Profile{
		ID:       r.ID,
		State:    StateActive,
		Email:    r.Email,
		Login:    r.Email,
		Name:     strings.TrimSpace(r.FirstName + " " + r.LastName),
		Username: r.Email,
	}
}

// Identity is the result of a fully verified login.
type Identity struct {
	UserID int64  `json:"user_id"`
	Login  string `json:"login"`
}
