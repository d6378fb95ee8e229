package repositories

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"weather-charts/internal/models"
)

// RateLimitedRepository spaces out upstream calls. It delays, it never drops or retries.
type RateLimitedRepository struct {
	repo    ForecastRepository
	limiter *rate.Limiter
}

// NewRateLimitedRepository allows rps requests per second with the given burst.
func NewRateLimitedRepository(repo ForecastRepository, rps float64, burst int) *RateLimitedRepository {
	return &RateLimitedRepository{
		repo:    repo,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedRepository) Name() string {
	return r.repo.Name()
}

func (r *RateLimitedRepository) FetchForecast(ctx context.Context, station string) (models.ForecastResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.ForecastResponse{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.repo.FetchForecast(ctx, station)
}

var _ ForecastRepository = (*RateLimitedRepository)(nil)
