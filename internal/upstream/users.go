package upstream

import (
	"context"
	"net/http"

	"nexodus-admin-backend/internal/models"
)

// GetCurrentUser returns the identity behind the caller's token
func (c *Client) GetCurrentUser(ctx context.Context) (*models.Identity, error) {
	var identity models.Identity
	err := c.doJSON(ctx, requestConfig{
		method: http.MethodGet,
		path:   "/api/users/me",
	}, &identity)
	if err != nil {
		return nil, err
	}
	return &identity, nil
}
