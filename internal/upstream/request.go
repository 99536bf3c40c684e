package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"

	"nexodus-admin-backend/internal/logger"
)

const maxResponseSize = 10 * 1024 * 1024

// requestConfig contains parameters for an HTTP request
type requestConfig struct {
	method      string      // HTTP method
	path        string      // URL path template, e.g. "/api/invitations/%s"
	pathParams  []string    // substituted into path, URL-escaped
	query       url.Values  // query parameters
	body        interface{} // JSON-encoded when non-nil
	expectCodes []int       // accepted status codes, default 200
}

func (c *Client) buildURL(path string, params []string, query url.Values) string {
	if len(params) > 0 {
		escaped := make([]interface{}, len(params))
		for i, p := range params {
			escaped[i] = url.PathEscape(p)
		}
		path = fmt.Sprintf(path, escaped...)
	}
	u := *c.baseURL
	u.Path = u.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// doRequest executes an API request and returns the response body
func (c *Client) doRequest(ctx context.Context, cfg requestConfig) ([]byte, error) {
	apiURL := c.buildURL(cfg.path, cfg.pathParams, cfg.query)

	var bodyReader io.Reader
	if cfg.body != nil {
		bodyBytes, err := json.Marshal(cfg.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, cfg.method, apiURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if cfg.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.WithContext(ctx).Debugf("Invoking nexodus API %s %s", cfg.method, apiURL)

	resp, err := c.clientFor(ctx).Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	expect := cfg.expectCodes
	if len(expect) == 0 {
		expect = []int{http.StatusOK}
	}
	if !slices.Contains(expect, resp.StatusCode) {
		return respBody, newAPIError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// doJSON executes an API request and decodes the JSON response into out
func (c *Client) doJSON(ctx context.Context, cfg requestConfig, out interface{}) error {
	body, err := c.doRequest(ctx, cfg)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode api response: %w", err)
	}
	return nil
}
