package weather

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"weather-charts/internal/charts"
	"weather-charts/internal/models"
	"weather-charts/internal/repositories"
	"weather-charts/internal/views"
	"weather-charts/pkg/observe"
)

// WeatherService opens one view per navigation on top of the forecast repository.
type WeatherService struct {
	repo repositories.ForecastRepository
	l    *observe.Logger
}

func NewWeatherService(repo repositories.ForecastRepository, l *observe.Logger) *WeatherService {
	return &WeatherService{
		repo: repo,
		l:    l,
	}
}

// Catalog lists the chartable metrics.
func (s *WeatherService) Catalog() []models.ChartSpec {
	return models.ChartSpecs()
}

// NewView returns an empty combined view bound to the service's repository.
func (s *WeatherService) NewView() *views.CombinedView {
	return views.NewCombinedView(s.repo, s.l)
}

// Combined runs a fresh navigation for station and returns the resulting view.
// The snapshot is returned even on failure so callers can report its state.
func (s *WeatherService) Combined(ctx context.Context, station string) (views.Snapshot, error) {
	start := time.Now()
	s.l.Info("starting forecast navigation", map[string]any{
		"station":    station,
		"repository": s.repo.Name(),
	})

	view := s.NewView()
	err := view.Navigate(ctx, station)
	snap := view.Snapshot()

	s.l.Info("completed forecast navigation", map[string]any{
		"station":     station,
		"state":       snap.State.String(),
		"periods":     snap.Periods,
		"duration_ms": observe.Since(start),
	})

	return snap, err
}

// Metric charts a single metric for station. Unknown metrics fail before any network call.
func (s *WeatherService) Metric(ctx context.Context, station string, metric string) (models.ChartConfiguration, error) {
	kind, ok := models.ParseMetricKind(metric)
	if !ok {
		return models.ChartConfiguration{}, errors.Wrapf(charts.ErrUnknownMetric, "metric %q", metric)
	}
	spec, _ := models.SpecFor(kind)

	if station == "" {
		s.l.Error(views.ErrMissingStation)
		return models.ChartConfiguration{}, views.ErrMissingStation
	}

	forecast, err := s.repo.FetchForecast(ctx, station)
	if err != nil {
		s.l.Error(errors.Wrap(err, "error fetching weather data"), map[string]any{
			"station": station,
			"metric":  string(kind),
		})
		return models.ChartConfiguration{}, err
	}

	return views.NewSingleMetricView(spec, forecast.Periods()).Render()
}
