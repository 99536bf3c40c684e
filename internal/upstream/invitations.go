package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"nexodus-admin-backend/internal/models"

	"github.com/google/uuid"
)

// ListInvitations lists the invitations visible to the caller
func (c *Client) ListInvitations(ctx context.Context) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := c.doJSON(ctx, requestConfig{
		method: http.MethodGet,
		path:   "/api/invitations",
	}, &invitations)
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

// GetInvitation retrieves one invitation
func (c *Client) GetInvitation(ctx context.Context, id uuid.UUID) (*models.Invitation, error) {
	var invitation models.Invitation
	err := c.doJSON(ctx, requestConfig{
		method:     http.MethodGet,
		path:       "/api/invitations/%s",
		pathParams: []string{id.String()},
	}, &invitation)
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// CreateInvitation invites a user, by email or id, to an organization
func (c *Client) CreateInvitation(ctx context.Context, invitation models.AddInvitation) (*models.Invitation, error) {
	var created models.Invitation
	err := c.doJSON(ctx, requestConfig{
		method:      http.MethodPost,
		path:        "/api/invitations",
		body:        invitation,
		expectCodes: []int{http.StatusOK, http.StatusCreated},
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteInvitation deletes an invitation
func (c *Client) DeleteInvitation(ctx context.Context, id uuid.UUID) error {
	_, err := c.doRequest(ctx, requestConfig{
		method:      http.MethodDelete,
		path:        "/api/invitations/%s",
		pathParams:  []string{id.String()},
		expectCodes: []int{http.StatusOK, http.StatusNoContent},
	})
	return err
}

// AcceptInvitation accepts an invitation for the caller. The request has no body; the
// JSON response is returned as is.
func (c *Client) AcceptInvitation(ctx context.Context, id uuid.UUID) (json.RawMessage, error) {
	body, err := c.doRequest(ctx, requestConfig{
		method:      http.MethodPost,
		path:        "/api/invitations/%s/accept",
		pathParams:  []string{id.String()},
		expectCodes: []int{http.StatusOK, http.StatusNoContent},
	})
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
