package models

import "github.com/google/uuid"

// Organization is a group of users owned by one of them
type Organization struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
}

// AddOrganization is the payload to create an organization
type AddOrganization struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// OrganizationFilter narrows an organization listing
type OrganizationFilter struct {
	OwnerID *uuid.UUID `json:"owner_id,omitempty"`
}

// Matches reports whether org satisfies the filter
func (f OrganizationFilter) Matches(org Organization) bool {
	if f.OwnerID != nil && org.OwnerID != *f.OwnerID {
		return false
	}
	return true
}

// IsZero reports whether the filter has no constraints
func (f OrganizationFilter) IsZero() bool {
	return f.OwnerID == nil
}
