package upstream

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"regexp"
	"testing"
	"time"

	"nexodus-admin-backend/internal/models"

	"github.com/google/uuid"
	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://api.nexodus.test"

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(testBaseURL+"/", 5*time.Second)
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	c, err := NewClient("https://api.nexodus.test/", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "https://api.nexodus.test", c.BaseURL())

	_, err = NewClient("api.nexodus.test", time.Second)
	assert.Error(t, err)

	_, err = NewClient("://bad", time.Second)
	assert.Error(t, err)
}

func TestTokenFromContext(t *testing.T) {
	_, ok := TokenFromContext(context.Background())
	assert.False(t, ok)

	_, ok = TokenFromContext(ContextWithToken(context.Background(), ""))
	assert.False(t, ok)

	token, ok := TokenFromContext(ContextWithToken(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
}

func TestAcceptInvitation_PostsToAcceptEndpoint(t *testing.T) {
	defer gock.Off()

	id := uuid.MustParse("00000000-0000-0000-0000-000000000042")
	gock.New(testBaseURL).
		Post("/api/invitations/" + id.String() + "/accept").
		MatchHeader("Authorization", "^Bearer user-token$").
		Reply(http.StatusOK).
		JSON(map[string]string{"status": "accepted"})

	c := newTestClient(t)
	ctx := ContextWithToken(context.Background(), "user-token")

	resp, err := c.AcceptInvitation(ctx, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"accepted"}`, string(resp))
	assert.True(t, gock.IsDone())
}

func TestAcceptInvitation_NoBody(t *testing.T) {
	id := uuid.New()
	c := newTestClient(t)
	c.httpClient.Transport = roundTripFunc(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/api/invitations/"+id.String()+"/accept", req.URL.Path)
		assert.Zero(t, req.ContentLength)
		assert.Empty(t, req.Header.Get("Content-Type"))
		return jsonResponse(http.StatusNoContent, ""), nil
	})

	resp, err := c.AcceptInvitation(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestAcceptInvitation_APIErrorMessage(t *testing.T) {
	defer gock.Off()

	id := uuid.New()
	gock.New(testBaseURL).
		Post("/api/invitations/" + id.String() + "/accept").
		Reply(http.StatusNotFound).
		JSON(map[string]string{"error": "invitation not found"})

	c := newTestClient(t)
	_, err := c.AcceptInvitation(context.Background(), id)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "invitation not found", apiErr.Message)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))
}

func TestAPIErrorWithoutMessage(t *testing.T) {
	c := newTestClient(t)
	c.httpClient.Transport = roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "<html>bad gateway</html>"), nil
	})

	_, err := c.ListInvitations(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "nexodus api error (status 502)", apiErr.Error())
	assert.True(t, errors.Is(err, ErrServerError))
}

func TestNewAPIErrorMessageField(t *testing.T) {
	apiErr := newAPIError(http.StatusBadRequest, []byte(`{"message":"email is invalid"}`))
	assert.Equal(t, "email is invalid", apiErr.Message)
	assert.True(t, errors.Is(apiErr, ErrBadRequest))

	apiErr = newAPIError(http.StatusConflict, []byte(`{"error":{"code":1}}`))
	assert.Empty(t, apiErr.Message)
	assert.True(t, errors.Is(apiErr, ErrConflict))
}

func TestListInvitations(t *testing.T) {
	defer gock.Off()

	userID := uuid.New()
	gock.New(testBaseURL).
		Get("/api/invitations").
		Reply(http.StatusOK).
		JSON([]map[string]interface{}{
			{
				"id":              uuid.New().String(),
				"user_id":         userID.String(),
				"email":           "bob@example.com",
				"organization_id": uuid.New().String(),
				"organization":    map[string]string{"name": "acme"},
				"from":            map[string]string{"full_name": "Alice Doe", "username": "alice"},
				"expires_at":      "2026-01-02T03:04:05Z",
			},
		})

	c := newTestClient(t)
	invitations, err := c.ListInvitations(context.Background())
	require.NoError(t, err)
	require.Len(t, invitations, 1)
	assert.Equal(t, "bob@example.com", invitations[0].Email)
	require.NotNil(t, invitations[0].UserID)
	assert.Equal(t, userID, *invitations[0].UserID)
	assert.Equal(t, "acme", invitations[0].Organization.Name)
	assert.Equal(t, "Alice Doe", invitations[0].From.FullName)
	assert.Equal(t, 2026, invitations[0].ExpiresAt.Year())
}

func TestCreateInvitation(t *testing.T) {
	orgID := uuid.New()
	c := newTestClient(t)
	c.httpClient.Transport = roundTripFunc(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/api/invitations", req.URL.Path)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		body, _ := io.ReadAll(req.Body)
		assert.JSONEq(t, `{"email":"bob@example.com","organization_id":"`+orgID.String()+`"}`, string(body))
		return jsonResponse(http.StatusCreated, `{"id":"`+uuid.NewString()+`","email":"bob@example.com","organization_id":"`+orgID.String()+`"}`), nil
	})

	created, err := c.CreateInvitation(context.Background(), models.AddInvitation{
		Email:          "bob@example.com",
		OrganizationID: orgID,
	})
	require.NoError(t, err)
	assert.Equal(t, orgID, created.OrganizationID)
}

func TestDeleteInvitation(t *testing.T) {
	defer gock.Off()

	id := uuid.New()
	gock.New(testBaseURL).
		Delete("/api/invitations/" + id.String()).
		Reply(http.StatusNoContent)

	c := newTestClient(t)
	require.NoError(t, c.DeleteInvitation(context.Background(), id))
	assert.True(t, gock.IsDone())
}

func TestListOrganizations_SendsOwnerFilter(t *testing.T) {
	defer gock.Off()

	owner := uuid.New()
	gock.New(testBaseURL).
		Get("/api/organizations").
		MatchParam("filter", regexp.QuoteMeta(`{"owner_id":"`+owner.String()+`"}`)).
		Reply(http.StatusOK).
		JSON([]map[string]string{{"id": uuid.NewString(), "name": "acme", "owner_id": owner.String()}})

	c := newTestClient(t)
	orgs, err := c.ListOrganizations(context.Background(), models.OrganizationFilter{OwnerID: &owner})
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, owner, orgs[0].OwnerID)
	assert.True(t, gock.IsDone())
}

func TestListOrganizations_NoFilter(t *testing.T) {
	c := newTestClient(t)
	c.httpClient.Transport = roundTripFunc(func(req *http.Request) (*http.Response, error) {
		assert.Empty(t, req.URL.RawQuery)
		return jsonResponse(http.StatusOK, `[]`), nil
	})

	orgs, err := c.ListOrganizations(context.Background(), models.OrganizationFilter{})
	require.NoError(t, err)
	assert.Empty(t, orgs)
}

func TestGetOrganizationAndCreate(t *testing.T) {
	defer gock.Off()

	id := uuid.New()
	gock.New(testBaseURL).
		Get("/api/organizations/" + id.String()).
		Reply(http.StatusOK).
		JSON(map[string]string{"id": id.String(), "name": "acme", "description": "Acme Corp"})
	gock.New(testBaseURL).
		Post("/api/organizations").
		MatchType("json").
		JSON(map[string]string{"name": "new-org", "description": "fresh"}).
		Reply(http.StatusCreated).
		JSON(map[string]string{"id": uuid.NewString(), "name": "new-org", "description": "fresh"})

	c := newTestClient(t)
	org, err := c.GetOrganization(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", org.Description)

	created, err := c.CreateOrganization(context.Background(), models.AddOrganization{Name: "new-org", Description: "fresh"})
	require.NoError(t, err)
	assert.Equal(t, "new-org", created.Name)
	assert.True(t, gock.IsDone())
}

func TestGetCurrentUser(t *testing.T) {
	defer gock.Off()

	id := uuid.New()
	gock.New(testBaseURL).
		Get("/api/users/me").
		MatchHeader("Authorization", "^Bearer tok$").
		Reply(http.StatusOK).
		JSON(map[string]string{"id": id.String(), "username": "alice", "full_name": "Alice Doe"})

	c := newTestClient(t)
	identity, err := c.GetCurrentUser(ContextWithToken(context.Background(), "tok"))
	require.NoError(t, err)
	assert.Equal(t, id, identity.ID)
	assert.Equal(t, "alice", identity.Username)
}

func TestGetCurrentUser_Unauthorized(t *testing.T) {
	c := newTestClient(t)
	c.httpClient.Transport = roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized, `{"error":"token expired"}`), nil
	})

	_, err := c.GetCurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestDoJSON_DecodeFailure(t *testing.T) {
	c := newTestClient(t)
	c.httpClient.Transport = roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `not json`), nil
	})

	_, err := c.GetOrganization(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode api response")
}

func TestTransportFailure(t *testing.T) {
	c := newTestClient(t)
	c.httpClient.Transport = roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := c.AcceptInvitation(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
