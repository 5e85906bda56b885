package sofse

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the production SOFSE API root.
	DefaultBaseURL = "https://api-servicios.sofse.gob.ar/v1"

	authEndpoint = "/auth/authorize"

	// fallbackTokenTTL is used when a token carries no readable expiry.
	fallbackTokenTTL = time.Hour
)

// Client talks to the SOFSE API. It owns the auth token lifecycle: a token is
// obtained lazily, reused until expiry, and replaced once after a 403.
// Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a SOFSE client. An empty baseURL selects the production
// API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		now: time.Now,
	}
}

// getToken returns a cached token if still valid, otherwise performs the
// credential handshake.
func (c *Client) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.token != "" && c.now().Before(c.tokenExpiry) {
		token := c.token
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	creds := DeriveCredentials(c.now())
	body, err := json.Marshal(creds)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+authEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sofse auth request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("sofse auth failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var authResp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		return "", fmt.Errorf("sofse auth response: %w", err)
	}
	if authResp.Token == "" {
		return "", fmt.Errorf("sofse auth response missing token")
	}

	expiry := parseTokenExpiry(authResp.Token, c.now())

	c.mu.Lock()
	c.token = authResp.Token
	c.tokenExpiry = expiry
	c.mu.Unlock()

	return authResp.Token, nil
}

// parseTokenExpiry reads the exp claim from the middle part of a three-part
// dot-delimited token. Malformed tokens get the fallback lifetime.
func parseTokenExpiry(token string, now time.Time) time.Time {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return now.Add(fallbackTokenTTL)
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		payload, err = base64.RawStdEncoding.DecodeString(parts[1])
	}
	if err != nil {
		return now.Add(fallbackTokenTTL)
	}
	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil || claims.Exp == 0 {
		return now.Add(fallbackTokenTTL)
	}
	return time.Unix(claims.Exp, 0)
}

// invalidateToken drops the cached token so the next request re-authenticates.
func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.tokenExpiry = time.Time{}
	c.mu.Unlock()
}

// get performs an authenticated GET and decodes the JSON body into out.
// A 403 triggers exactly one retry with a freshly obtained token; a second
// 403 or any other non-2xx status is terminal.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	return c.getRetried(ctx, endpoint, out, false)
}

func (c *Client) getRetried(ctx context.Context, endpoint string, out any, retried bool) error {
	token, err := c.getToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sofse request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden && !retried {
		c.invalidateToken()
		return c.getRetried(ctx, endpoint, out, true)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sofse request failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("sofse returned non-JSON response (%s): %s", contentType, preview)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parse sofse response: %w", err)
	}
	return nil
}

// SearchStations searches stations by free-text name.
func (c *Client) SearchStations(ctx context.Context, name string) ([]Station, error) {
	var stations []Station
	err := c.get(ctx, "/infraestructura/estaciones?nombre="+url.QueryEscape(name), &stations)
	return stations, err
}

// StationsByRamal lists the stations belonging to a ramal.
func (c *Client) StationsByRamal(ctx context.Context, ramalID int) ([]Station, error) {
	var stations []Station
	err := c.get(ctx, fmt.Sprintf("/infraestructura/estaciones?idRamal=%d", ramalID), &stations)
	return stations, err
}

// StationByID looks up a single station; nil when the id is unknown.
func (c *Client) StationByID(ctx context.Context, stationID int) (*Station, error) {
	var stations []Station
	if err := c.get(ctx, fmt.Sprintf("/infraestructura/estaciones?id=%d", stationID), &stations); err != nil {
		return nil, err
	}
	if len(stations) == 0 {
		return nil, nil
	}
	return &stations[0], nil
}

// Gerencias lists all metropolitan train lines (empresa 1).
func (c *Client) Gerencias(ctx context.Context) ([]Gerencia, error) {
	var gerencias []Gerencia
	err := c.get(ctx, "/infraestructura/gerencias?idEmpresa=1", &gerencias)
	return gerencias, err
}

// Ramales lists the branches of a gerencia.
func (c *Client) Ramales(ctx context.Context, gerenciaID int) ([]Ramal, error) {
	var ramales []Ramal
	err := c.get(ctx, fmt.Sprintf("/infraestructura/ramales?idGerencia=%d", gerenciaID), &ramales)
	return ramales, err
}

// ArrivalOptions narrows an arrivals query. Zero values are omitted.
type ArrivalOptions struct {
	Hasta    string
	Fecha    string
	Hora     string
	Cantidad int
	Ramal    int
	Sentido  int
}

// Arrivals fetches predicted arrivals for a station.
func (c *Client) Arrivals(ctx context.Context, stationID int, opts ArrivalOptions) (*ArribosResponse, error) {
	endpoint := fmt.Sprintf("/arribos/estacion/%d", stationID)

	params := url.Values{}
	if opts.Hasta != "" {
		params.Set("hasta", opts.Hasta)
	}
	if opts.Fecha != "" {
		params.Set("fecha", opts.Fecha)
	}
	if opts.Hora != "" {
		params.Set("hora", opts.Hora)
	}
	if opts.Cantidad > 0 {
		params.Set("cantidad", fmt.Sprintf("%d", opts.Cantidad))
	}
	if opts.Ramal > 0 {
		params.Set("ramal", fmt.Sprintf("%d", opts.Ramal))
	}
	if opts.Sentido > 0 {
		params.Set("sentido", fmt.Sprintf("%d", opts.Sentido))
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var resp ArribosResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
