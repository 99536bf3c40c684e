package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanAcceptInvitation(t *testing.T) {
	seven := uuid.MustParse("00000000-0000-0000-0000-000000000007")
	nine := uuid.MustParse("00000000-0000-0000-0000-000000000009")
	recordID := uuid.MustParse("00000000-0000-0000-0000-000000000042")

	tests := []struct {
		name     string
		record   *Invitation
		identity *Identity
		expected bool
	}{
		{
			name:     "identity is the invitee",
			record:   &Invitation{ID: recordID, UserID: &seven},
			identity: &Identity{ID: seven},
			expected: true,
		},
		{
			name:     "identity is someone else",
			record:   &Invitation{ID: recordID, UserID: &nine},
			identity: &Identity{ID: seven},
			expected: false,
		},
		{
			name:     "no record",
			record:   nil,
			identity: &Identity{ID: seven},
			expected: false,
		},
		{
			name:     "no identity",
			record:   &Invitation{ID: recordID, UserID: &seven},
			identity: nil,
			expected: false,
		},
		{
			name:     "invitation by email only",
			record:   &Invitation{ID: recordID, Email: "someone@example.com"},
			identity: &Identity{ID: seven},
			expected: false,
		},
		{
			name:     "neither present",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanAcceptInvitation(tt.record, tt.identity))
		})
	}
}

func TestIdentityStatusReady(t *testing.T) {
	id := &Identity{ID: uuid.New(), Username: "alice"}

	assert.True(t, IdentityStatus{Identity: id}.Ready())
	assert.False(t, IdentityStatus{}.Ready(), "not loaded yet")
	assert.False(t, IdentityStatus{Identity: id, Err: errors.New("boom")}.Ready())
	assert.False(t, IdentityStatus{Err: errors.New("boom")}.Ready())
}

func TestIdentityDisplayName(t *testing.T) {
	var nilIdentity *Identity
	assert.Equal(t, "", nilIdentity.DisplayName())
	assert.Equal(t, "alice", (&Identity{Username: "alice"}).DisplayName())
	assert.Equal(t, "Alice Doe", (&Identity{Username: "alice", FullName: "Alice Doe"}).DisplayName())
}

func TestOrganizationFilter(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	f := OrganizationFilter{OwnerID: &owner}
	assert.False(t, f.IsZero())
	assert.True(t, f.Matches(Organization{OwnerID: owner}))
	assert.False(t, f.Matches(Organization{OwnerID: other}))

	assert.True(t, OrganizationFilter{}.IsZero())
	assert.True(t, OrganizationFilter{}.Matches(Organization{OwnerID: other}))
}
