package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Client talks to the nexodus REST API on behalf of the signed-in user
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base URL '%s': %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api base URL '%s': scheme and host are required", baseURL)
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

type tokenKey struct{}

// ContextWithToken returns a context carrying the caller's access token. Requests made
// with that context are authenticated with it.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the access token stored by ContextWithToken
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// clientFor returns the http client to use for ctx, authenticated when ctx carries a token
func (c *Client) clientFor(ctx context.Context) *http.Client {
	token, ok := TokenFromContext(ctx)
	if !ok {
		return c.httpClient
	}
	return &http.Client{
		Timeout: c.httpClient.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   c.httpClient.Transport,
		},
	}
}
