package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"weather-charts/internal/models"
	"weather-charts/pkg/observe"
)

const (
	NWSBaseURL        = "https://api.weather.gov"
	DefaultGridOffset = "31,80"

	maxErrorBody = 2048
)

// HTTPError is returned for any non-2xx upstream response.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error (status %d): %s", e.StatusCode, e.Status)
}

type NWSOptions struct {
	BaseURL    string
	GridOffset string
	UserAgent  string
}

// NWSRepository reads gridpoint forecasts from api.weather.gov.
type NWSRepository struct {
	baseURL    string
	gridOffset string
	userAgent  string
	httpClient HTTPClient
	l          *observe.Logger
}

func NewNWSRepository(opts NWSOptions, l *observe.Logger, httpClient HTTPClient) *NWSRepository {
	if opts.BaseURL == "" {
		opts.BaseURL = NWSBaseURL
	}
	if opts.GridOffset == "" {
		opts.GridOffset = DefaultGridOffset
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &NWSRepository{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		gridOffset: opts.GridOffset,
		userAgent:  opts.UserAgent,
		httpClient: httpClient,
		l:          l,
	}
}

func (n *NWSRepository) Name() string {
	return "nws"
}

// ForecastURL interpolates station into the path verbatim.
func (n *NWSRepository) ForecastURL(station string) string {
	return fmt.Sprintf("%s/gridpoints/%s/%s/forecast", n.baseURL, station, n.gridOffset)
}

// FetchForecast makes exactly one GET request. There is no retry and no caching.
func (n *NWSRepository) FetchForecast(ctx context.Context, station string) (models.ForecastResponse, error) {
	var forecast models.ForecastResponse

	url := n.ForecastURL(station)

	n.l.Info("making nws API request", map[string]any{
		"station": station,
		"url":     url,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return forecast, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json")
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return forecast, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	n.l.Info("received nws API response", map[string]any{
		"station":    station,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return forecast, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return forecast, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	n.l.Debug("parsed nws API response", map[string]any{
		"station": station,
		"periods": len(forecast.Periods()),
	})

	return forecast, nil
}
