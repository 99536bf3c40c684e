package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"nexodus-admin-backend/internal/models"

	"github.com/google/uuid"
)

// ListOrganizations lists organizations. A non-empty filter is sent as the JSON
// encoded "filter" query parameter.
func (c *Client) ListOrganizations(ctx context.Context, filter models.OrganizationFilter) ([]models.Organization, error) {
	var query url.Values
	if !filter.IsZero() {
		raw, err := json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to encode organization filter: %w", err)
		}
		query = url.Values{"filter": []string{string(raw)}}
	}

	var orgs []models.Organization
	err := c.doJSON(ctx, requestConfig{
		method: http.MethodGet,
		path:   "/api/organizations",
		query:  query,
	}, &orgs)
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetOrganization retrieves one organization
func (c *Client) GetOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := c.doJSON(ctx, requestConfig{
		method:     http.MethodGet,
		path:       "/api/organizations/%s",
		pathParams: []string{id.String()},
	}, &org)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// CreateOrganization creates an organization owned by the caller
func (c *Client) CreateOrganization(ctx context.Context, org models.AddOrganization) (*models.Organization, error) {
	var created models.Organization
	err := c.doJSON(ctx, requestConfig{
		method:      http.MethodPost,
		path:        "/api/organizations",
		body:        org,
		expectCodes: []int{http.StatusOK, http.StatusCreated},
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteOrganization deletes an organization
func (c *Client) DeleteOrganization(ctx context.Context, id uuid.UUID) error {
	_, err := c.doRequest(ctx, requestConfig{
		method:      http.MethodDelete,
		path:        "/api/organizations/%s",
		pathParams:  []string{id.String()},
		expectCodes: []int{http.StatusOK, http.StatusNoContent},
	})
	return err
}
