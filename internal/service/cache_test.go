package service

import (
	"errors"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordCacheRefresh(t *testing.T) {
	c := NewRecordCache(10, time.Minute)

	c.Put("alice", ResourceInvitations, []string{"a"})
	c.Put("bob", ResourceInvitations, []string{"b"})
	c.Put("alice", ResourceOrganizations, []string{"o"})

	got, ok := c.Get("alice", ResourceInvitations)
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, got)

	c.Refresh(ResourceInvitations)

	_, ok = c.Get("alice", ResourceInvitations)
	assert.False(t, ok)
	_, ok = c.Get("bob", ResourceInvitations)
	assert.False(t, ok)
	_, ok = c.Get("alice", ResourceOrganizations)
	assert.True(t, ok, "other resources stay cached")
}

func TestRecordCacheExpiry(t *testing.T) {
	c := NewRecordCache(10, 10*time.Millisecond)
	c.Put("alice", ResourceInvitations, 1)

	assert.Eventually(t, func() bool {
		_, ok := c.Get("alice", ResourceInvitations)
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestAcceptErrorMessage(t *testing.T) {
	assert.Equal(t, "Error accepting invitation", acceptErrorMessage(emptyError{}))
}

func TestAcceptErrorMessageHidesURL(t *testing.T) {
	err := fmt.Errorf("accept invitation: %w", &url.Error{
		Op:  "Post",
		URL: "https://api.nexodus.test/api/invitations/42/accept",
		Err: errors.New("dial tcp 10.0.0.5:443: connect: connection refused"),
	})

	msg := acceptErrorMessage(err)

	assert.Equal(t, "Error accepting invitation: dial tcp 10.0.0.5:443: connect: connection refused", msg)
	assert.NotContains(t, msg, "api.nexodus.test")
}

type emptyError struct{}

func (emptyError) Error() string { return "" }
