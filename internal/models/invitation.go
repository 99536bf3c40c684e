package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRef is the embedded summary of a user inside another resource
type UserRef struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
}

// OrganizationRef is the embedded summary of an organization inside another resource
type OrganizationRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Invitation is a request for a user to join an organization
type Invitation struct {
	ID             uuid.UUID        `json:"id"`
	UserID         *uuid.UUID       `json:"user_id,omitempty"` // the invited user, once known
	Email          string           `json:"email,omitempty"`   // the invitee email
	OrganizationID uuid.UUID        `json:"organization_id"`
	Organization   *OrganizationRef `json:"organization,omitempty"`
	From           *UserRef         `json:"from,omitempty"`
	ExpiresAt      time.Time        `json:"expires_at"`
}

// AddInvitation is the payload to create an invitation. One of Email or UserID is required.
type AddInvitation struct {
	Email          string     `json:"email,omitempty"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

// CanAcceptInvitation reports whether identity may act on record: both must be present
// and the identity must be the invitation's target user.
func CanAcceptInvitation(record *Invitation, identity *Identity) bool {
	if record == nil || identity == nil || record.UserID == nil {
		return false
	}
	return identity.ID == *record.UserID
}
