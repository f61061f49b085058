// Package client talks to the guide search endpoint.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gcbaptista/guide-search/model"
)

// DefaultTimeout bounds every search request.
const DefaultTimeout = 5 * time.Second

// ErrUnexpectedStatus is returned for any non-200 response.
var ErrUnexpectedStatus = errors.New("unexpected search response status")

// Response mirrors the endpoint's JSON body.
type Response struct {
	Results []model.SearchResult `json:"results"`
	Total   int                  `json:"total"`
	Query   string               `json:"query"`
}

// Client fetches results from a search endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New returns a client for the given endpoint URL, e.g. http://localhost:8080/api/guide/search.
func New(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Search runs query against the endpoint.
func (c *Client) Search(ctx context.Context, query string, limit int) (Response, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return Response{}, fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)
	}
	params := u.Query()
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Response{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Response{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Response{}, fmt.Errorf("failed to decode search response: %w", err)
	}
	if body.Results == nil {
		body.Results = []model.SearchResult{}
	}
	return body, nil
}
