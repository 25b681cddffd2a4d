package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/twforecast/backend/internal/domain"
	"github.com/twforecast/backend/internal/metrics"
)

// forecastDataset is the 36-hour city forecast published by CWA
const forecastDataset = "F-C0032-001"

// CWAClient fetches forecasts from the CWA open-data API
type CWAClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// NewCWAClient creates a new CWA client
func NewCWAClient(apiKey, baseURL string, timeout time.Duration, m *metrics.Metrics) *CWAClient {
	return &CWAClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: m,
	}
}

// FetchLocations returns every location of the forecast dataset
func (c *CWAClient) FetchLocations(ctx context.Context) ([]domain.UpstreamLocation, error) {
	if c.apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	endpoint := fmt.Sprintf("%s/v1/rest/datastore/%s?%s",
		c.baseURL, forecastDataset, url.Values{"Authorization": {c.apiKey}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("cwa: failed to create request: %w: %w", domain.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(metrics.OutcomeTransportError, time.Since(start))
		return nil, fmt.Errorf("cwa: request failed: %w: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.ObserveUpstream(metrics.OutcomeBadStatus, time.Since(start))
		return nil, fmt.Errorf("cwa: unexpected status %d: %w", resp.StatusCode, domain.ErrUpstream)
	}

	var payload domain.UpstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.metrics.ObserveUpstream(metrics.OutcomeDecodeError, time.Since(start))
		return nil, fmt.Errorf("cwa: failed to decode response: %w: %w", domain.ErrUpstream, err)
	}
	c.metrics.ObserveUpstream(metrics.OutcomeOK, time.Since(start))

	return payload.Records.Location, nil
}
