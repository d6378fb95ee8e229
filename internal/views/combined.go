package views

import (
	"context"
	"fmt"
	"sync"

	"weather-charts/internal/charts"
	"weather-charts/internal/models"
	"weather-charts/pkg/observe"
)

type ForecastFetcher interface {
	FetchForecast(ctx context.Context, station string) (models.ForecastResponse, error)
}

// Snapshot is a copy of a CombinedView at one point in time.
type Snapshot struct {
	Station    string                      `json:"station" example:"TOP"`
	State      State                       `json:"state" swaggertype:"string" example:"displaying"`
	Generation uint64                      `json:"generation" example:"1"`
	Overlay    *models.ChartConfiguration  `json:"overlay,omitempty"`
	Charts     []models.ChartConfiguration `json:"charts,omitempty"`
	Periods    int                         `json:"periods" example:"14"`
	Error      string                      `json:"error,omitempty"`
}

// CombinedView shows all five metrics of one station, as an overlay and as separate charts.
//
// Every Navigate call takes a new generation number. When a response arrives for a
// generation that is no longer the latest it is dropped, so a slow request can never
// overwrite the result of a newer one.
type CombinedView struct {
	fetcher ForecastFetcher
	specs   []models.ChartSpec
	l       *observe.Logger

	mu       sync.Mutex
	seq      uint64
	state    State
	station  string
	overlay  *models.ChartConfiguration
	perChart []models.ChartConfiguration
	periods  int
	err      error
}

func NewCombinedView(fetcher ForecastFetcher, l *observe.Logger) *CombinedView {
	return &CombinedView{
		fetcher: fetcher,
		specs:   models.ChartSpecs(),
		l:       l,
	}
}

// Navigate loads station into the view. It returns ErrMissingStation without any network
// call for an empty station, and ErrStaleResponse when a newer navigation won the race.
func (v *CombinedView) Navigate(ctx context.Context, station string) error {
	if station == "" {
		v.l.Error(ErrMissingStation)
		return ErrMissingStation
	}

	v.mu.Lock()
	v.seq++
	gen := v.seq
	v.state = StateLoading
	v.station = station
	// charts always belong to the station shown
	v.overlay = nil
	v.perChart = nil
	v.periods = 0
	v.err = nil
	v.mu.Unlock()

	forecast, err := v.fetcher.FetchForecast(ctx, station)

	var (
		overlay  models.ChartConfiguration
		perChart []models.ChartConfiguration
	)
	if err == nil {
		overlay, perChart, err = v.build(forecast.Periods())
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.seq {
		v.l.Warning("discarding stale forecast response", map[string]any{
			"station":    station,
			"generation": gen,
			"latest":     v.seq,
		})
		return ErrStaleResponse
	}

	if err != nil {
		v.state = StateFailed
		v.overlay = nil
		v.perChart = nil
		v.periods = 0
		v.err = err
		v.l.Error(fmt.Errorf("error fetching weather data: %w", err), map[string]any{
			"station":    station,
			"generation": gen,
		})
		return err
	}

	v.state = StateDisplaying
	v.overlay = &overlay
	v.perChart = perChart
	v.periods = len(forecast.Periods())
	v.err = nil

	return nil
}

func (v *CombinedView) build(periods []models.ForecastPeriod) (models.ChartConfiguration, []models.ChartConfiguration, error) {
	inputs, err := charts.ExtractAll(periods, v.specs)
	if err != nil {
		return models.ChartConfiguration{}, nil, err
	}

	overlay := charts.AssembleOverlay(charts.Labels(periods), inputs...)

	perChart := make([]models.ChartConfiguration, 0, len(v.specs))
	for _, spec := range v.specs {
		chart, err := NewSingleMetricView(spec, periods).Render()
		if err != nil {
			return models.ChartConfiguration{}, nil, err
		}
		perChart = append(perChart, chart)
	}

	return overlay, perChart, nil
}

func (v *CombinedView) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *CombinedView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := Snapshot{
		Station:    v.station,
		State:      v.state,
		Generation: v.seq,
		Periods:    v.periods,
	}
	if v.overlay != nil {
		overlay := *v.overlay
		s.Overlay = &overlay
	}
	if v.perChart != nil {
		s.Charts = append([]models.ChartConfiguration(nil), v.perChart...)
	}
	if v.err != nil {
		s.Error = v.err.Error()
	}

	return s
}
