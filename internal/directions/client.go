// Package directions is a thin client for the Google Directions API.
// It resolves a pair of place IDs (plus optional waypoints) to the route's
// encoded overview polyline and nothing else — parsing of legs, steps, and
// distances is deliberately absent because no caller needs them.
package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/citystroll/backend/internal/domain"
)

// DefaultBaseURL is the production endpoint of the Google Maps web service.
const DefaultBaseURL = "https://maps.googleapis.com"

const routePath = "/maps/api/directions/json"

// ErrZeroResults is returned when the API answers successfully but finds no
// route between the given places in the requested travel mode.
var ErrZeroResults = errors.New("zero results")

// Client calls the external directions API. The zero value is not usable;
// construct with NewClient.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests to point the client
// at an httptest.Server.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a directions client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// routeResponse is the subset of the API response this client reads.
type routeResponse struct {
	Status string `json:"status"`
	Routes []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
	} `json:"routes"`
}

// Route performs one lookup in the given travel mode and returns the first
// route's encoded overview path. A successful response with no routes (or an
// explicit ZERO_RESULTS status) returns ErrZeroResults so callers can fall
// back to another mode.
func (c *Client) Route(ctx context.Context, q domain.DirectionsQuery, mode domain.TravelMode) (domain.Directions, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(q, mode, c.apiKey), nil)
	if err != nil {
		return domain.Directions{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Directions{}, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.Directions{}, fmt.Errorf("directions API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.Directions{}, fmt.Errorf("decoding response: %w", err)
	}

	switch {
	case result.Status == "ZERO_RESULTS", result.Status == "OK" && len(result.Routes) == 0:
		return domain.Directions{}, ErrZeroResults
	case result.Status != "OK":
		return domain.Directions{}, fmt.Errorf("directions API status %q", result.Status)
	}

	return domain.Directions{Points: result.Routes[0].OverviewPolyline.Points}, nil
}

// RequestURL returns the URL Route would request, with the API key redacted.
// Safe to log and to include in error responses.
func (c *Client) RequestURL(q domain.DirectionsQuery, mode domain.TravelMode) string {
	return c.requestURL(q, mode, "REDACTED")
}

// requestURL builds the lookup URL. Place IDs are prefixed per the API's
// place_id addressing scheme; waypoints pass through verbatim.
func (c *Client) requestURL(q domain.DirectionsQuery, mode domain.TravelMode, key string) string {
	v := url.Values{}
	v.Set("origin", "place_id:"+q.OriginPlaceID)
	v.Set("destination", "place_id:"+q.DestinationPlaceID)
	v.Set("mode", string(mode))
	if q.Waypoints != "" {
		v.Set("waypoints", q.Waypoints)
	}
	v.Set("key", key)
	return c.baseURL + routePath + "?" + v.Encode()
}
