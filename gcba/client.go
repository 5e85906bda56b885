package gcba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gtfs "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/encoding/protojson"
)

// DefaultBaseURL is the production city transit API root.
const DefaultBaseURL = "https://apitransporte.buenosaires.gob.ar"

// Client talks to the city transit API. Every request carries client_id and
// client_secret as query parameters.
type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
}

// NewClient creates a city API client. An empty baseURL selects production.
func NewClient(clientID, clientSecret, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// buildURL appends the auth query parameters to an endpoint path (which may
// itself carry a query string).
func (c *Client) buildURL(endpoint string) (string, error) {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("client_id", c.clientID)
	q.Set("client_secret", c.clientSecret)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// fetch performs an authenticated GET and returns the raw JSON body.
// Non-2xx status, non-JSON content type and provider-reported errors (a JSON
// "error" field) are surfaced as errors; nothing is retried.
func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	reqURL, err := c.buildURL(endpoint)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("API request failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, fmt.Errorf("API returned non-JSON response (%s): %s", contentType, preview)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", endpoint, err)
	}

	var probe struct {
		Error any `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response from API: %w", err)
	}
	if probe.Error != nil {
		return nil, fmt.Errorf("API error: %v", probe.Error)
	}

	return body, nil
}

// SubteForecast fetches the Subte real-time forecast feed.
func (c *Client) SubteForecast(ctx context.Context) (*SubteForecastResponse, error) {
	body, err := c.fetch(ctx, "/subtes/forecastGTFS")
	if err != nil {
		return nil, err
	}
	var forecast SubteForecastResponse
	if err := json.Unmarshal(body, &forecast); err != nil {
		return nil, fmt.Errorf("parse forecast feed: %w", err)
	}
	return &forecast, nil
}

// SubteAlerts fetches the Subte service-alert feed as a GTFS-RT FeedMessage.
// The feed uses proto field names (snake_case), which protojson accepts; the
// city adds a few nonstandard fields, hence DiscardUnknown.
func (c *Client) SubteAlerts(ctx context.Context) (*gtfs.FeedMessage, error) {
	body, err := c.fetch(ctx, "/subtes/serviceAlerts?json=1")
	if err != nil {
		return nil, err
	}
	feed := &gtfs.FeedMessage{}
	opts := protojson.UnmarshalOptions{DiscardUnknown: true, AllowPartial: true}
	if err := opts.Unmarshal(body, feed); err != nil {
		return nil, fmt.Errorf("parse alerts feed: %w", err)
	}
	return feed, nil
}
