package repositories

import (
	"context"
	"net/http"
	"time"

	"weather-charts/config"
	"weather-charts/internal/models"
	"weather-charts/pkg/observe"
)

// ForecastRepository fetches the forecast of one station.
type ForecastRepository interface {
	Name() string
	FetchForecast(ctx context.Context, station string) (models.ForecastResponse, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// InitForecastRepository builds the NWS repository, wrapped in a rate limiter when one is configured.
func InitForecastRepository(cfg *config.Config, l *observe.Logger) ForecastRepository {
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.Weather.Timeout) * time.Second,
	}

	var repo ForecastRepository = NewNWSRepository(NWSOptions{
		BaseURL:    cfg.Weather.BaseURL,
		GridOffset: cfg.Weather.GridOffset,
		UserAgent:  cfg.Weather.UserAgent,
	}, l, httpClient)

	if cfg.Weather.RateLimit > 0 {
		repo = NewRateLimitedRepository(repo, cfg.Weather.RateLimit, cfg.Weather.Burst)
	}

	return repo
}
