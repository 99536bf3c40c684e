package models

import "github.com/google/uuid"

// Identity is the signed-in user's minimal profile as returned by GET /api/users/me
type Identity struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
}

// IdentityStatus is the outcome of resolving the identity of a request.
// Identity is nil until it has been resolved.
type IdentityStatus struct {
	Identity *Identity
	Err      error
}

// Ready reports whether the identity has loaded and loaded without error
func (s IdentityStatus) Ready() bool {
	return s.Err == nil && s.Identity != nil
}

// DisplayName returns the best human readable name for the identity
func (i *Identity) DisplayName() string {
	if i == nil {
		return ""
	}
	if i.FullName != "" {
		return i.FullName
	}
	return i.Username
}
