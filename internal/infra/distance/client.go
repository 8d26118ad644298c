package distance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"

	"rv-portal/internal/pkg/config"
	"rv-portal/internal/usecase/shared"
)

const metersPerMile = 1609.344

var (
	ErrNotConfigured = errors.New("driving distance api key is not configured")
	ErrUpstream      = errors.New("driving distance api failed")
)

// Client talks to a Google Distance Matrix compatible endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	batchSize  int
}

func NewClient(cfg config.DistanceConfig) *Client {
	batch := cfg.BatchSize
	if batch <= 0 || batch > 25 {
		batch = 25
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		batchSize:  batch,
	}
}

type matrixResponse struct {
	Status               string   `json:"status"`
	ErrorMessage         string   `json:"error_message"`
	DestinationAddresses []string `json:"destination_addresses"`
	Rows                 []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value float64 `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Distances resolves origin to every destination. Destinations are sent in
// sequential batches; results keep the input order.
func (c *Client) Distances(ctx context.Context, origin string, destinations []string) ([]shared.DrivingDistance, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	out := make([]shared.DrivingDistance, 0, len(destinations))
	for start := 0; start < len(destinations); start += c.batchSize {
		end := min(start+c.batchSize, len(destinations))
		batch, err := c.fetch(ctx, origin, destinations[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, origin string, destinations []string) ([]shared.DrivingDistance, error) {
	q := url.Values{}
	q.Set("origins", origin)
	q.Set("destinations", strings.Join(destinations, "|"))
	q.Set("units", "imperial")
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		slog.Warn("distance api returned non-200", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: http %d", ErrUpstream, resp.StatusCode)
	}

	var m matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}
	if m.Status != "OK" {
		slog.Warn("distance api rejected request", "status", m.Status, "message", m.ErrorMessage)
		return nil, fmt.Errorf("%w: status %s", ErrUpstream, m.Status)
	}
	if len(m.Rows) == 0 || len(m.Rows[0].Elements) != len(destinations) {
		return nil, fmt.Errorf("%w: expected %d elements", ErrUpstream, len(destinations))
	}

	out := make([]shared.DrivingDistance, len(destinations))
	for i, el := range m.Rows[0].Elements {
		d := shared.DrivingDistance{Destination: destinations[i], Status: el.Status}
		if i < len(m.DestinationAddresses) {
			d.Address = m.DestinationAddresses[i]
		}
		if el.Status == "OK" {
			d.Miles = math.Round(el.Distance.Value/metersPerMile*10) / 10
			d.DurationMinutes = int(math.Round(el.Duration.Value / 60))
		}
		out[i] = d
	}
	return out, nil
}
