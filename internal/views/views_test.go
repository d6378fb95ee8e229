package views_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-charts/internal/models"
	"weather-charts/internal/views"
	"weather-charts/pkg/observe"
)

// MockFetcher returns canned responses; a station listed in gates blocks until its channel closes.
type MockFetcher struct {
	mu        sync.Mutex
	responses map[string]models.ForecastResponse
	gates     map[string]chan struct{}
	err       error
	calls     atomic.Int32
}

func (m *MockFetcher) FetchForecast(ctx context.Context, station string) (models.ForecastResponse, error) {
	m.calls.Add(1)

	m.mu.Lock()
	gate := m.gates[station]
	resp := m.responses[station]
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return models.ForecastResponse{}, ctx.Err()
		}
	}

	if m.err != nil {
		return models.ForecastResponse{}, m.err
	}
	return resp, nil
}

func forecastOf(periods ...models.ForecastPeriod) models.ForecastResponse {
	return models.ForecastResponse{Properties: models.ForecastProperties{Periods: periods}}
}

func tonight() models.ForecastPeriod {
	return models.ForecastPeriod{
		Name:                       "Tonight",
		Temperature:                models.Float(40),
		Dewpoint:                   models.Val(5),
		RelativeHumidity:           models.Val(60),
		WindSpeed:                  "5 mph",
		ProbabilityOfPrecipitation: models.Val(20),
	}
}

func TestSingleMetricView_Render(t *testing.T) {
	spec, ok := models.SpecFor(models.WindSpeed)
	require.True(t, ok)

	chart, err := views.NewSingleMetricView(spec, []models.ForecastPeriod{tonight()}).Render()
	require.NoError(t, err)

	require.Len(t, chart.Data.Datasets, 1)
	ds := chart.Data.Datasets[0]
	assert.Equal(t, "Wind speed (mph)", ds.Label)
	require.Len(t, ds.Data, 1)
	assert.Equal(t, 5.0, *ds.Data[0])
	assert.Empty(t, ds.YAxisID)
	assert.Equal(t, []string{"Tonight"}, chart.Data.Labels)
}

func TestSingleMetricView_UnknownMetric(t *testing.T) {
	_, err := views.NewSingleMetricView(models.ChartSpec{Type: "Visibility"}, nil).Render()
	assert.Error(t, err)
}

func TestCombinedView_Displaying(t *testing.T) {
	fetcher := &MockFetcher{responses: map[string]models.ForecastResponse{"TOP": forecastOf(tonight())}}
	view := views.NewCombinedView(fetcher, observe.NewZapLogger("test-app", io.Discard))
	assert.Equal(t, views.StateUninitialized, view.State())

	require.NoError(t, view.Navigate(context.Background(), "TOP"))

	snap := view.Snapshot()
	assert.Equal(t, views.StateDisplaying, snap.State)
	assert.Equal(t, "TOP", snap.Station)
	assert.Equal(t, 1, snap.Periods)
	assert.Empty(t, snap.Error)

	require.NotNil(t, snap.Overlay)
	require.Len(t, snap.Overlay.Data.Datasets, 5)
	axes := map[string]string{}
	for _, ds := range snap.Overlay.Data.Datasets {
		assert.Len(t, ds.Data, 1)
		axes[ds.Label] = ds.YAxisID
	}
	assert.Equal(t, "y", axes["Temperature (°F)"])
	assert.Equal(t, "y", axes["Humidity (%)"])
	assert.Equal(t, "y", axes["Chance of Precipitation (%)"])
	assert.Equal(t, "y1", axes["DewPoint (°C)"])
	assert.Equal(t, "y2", axes["Wind speed (mph)"])

	require.Len(t, snap.Charts, 5)
	for _, chart := range snap.Charts {
		assert.Len(t, chart.Data.Datasets, 1)
	}
}

func TestCombinedView_EmptyPeriods(t *testing.T) {
	fetcher := &MockFetcher{responses: map[string]models.ForecastResponse{"TOP": forecastOf()}}
	view := views.NewCombinedView(fetcher, observe.NewZapLogger("test-app", io.Discard))

	require.NoError(t, view.Navigate(context.Background(), "TOP"))

	snap := view.Snapshot()
	assert.Equal(t, views.StateDisplaying, snap.State)
	require.NotNil(t, snap.Overlay)
	for _, ds := range snap.Overlay.Data.Datasets {
		assert.Empty(t, ds.Data)
	}
}

func TestCombinedView_MissingStation(t *testing.T) {
	var logs bytes.Buffer
	fetcher := &MockFetcher{}
	view := views.NewCombinedView(fetcher, observe.NewZapLogger("test-app", &logs))

	var err error
	assert.NotPanics(t, func() {
		err = view.Navigate(context.Background(), "")
	})

	assert.ErrorIs(t, err, views.ErrMissingStation)
	assert.Equal(t, int32(0), fetcher.calls.Load())
	assert.Equal(t, views.StateUninitialized, view.State())
	assert.Nil(t, view.Snapshot().Overlay)
	assert.Contains(t, logs.String(), "station parameter is missing")
}

func TestCombinedView_FetchFailure(t *testing.T) {
	var logs bytes.Buffer
	fetcher := &MockFetcher{err: errors.New("HTTP error (status 500): 500 Internal Server Error")}
	view := views.NewCombinedView(fetcher, observe.NewZapLogger("test-app", &logs))

	err := view.Navigate(context.Background(), "TOP")
	require.Error(t, err)

	snap := view.Snapshot()
	assert.Equal(t, views.StateFailed, snap.State)
	assert.Nil(t, snap.Overlay)
	assert.Nil(t, snap.Charts)
	assert.Contains(t, snap.Error, "status 500")
	assert.Equal(t, int32(1), fetcher.calls.Load())
	assert.Contains(t, logs.String(), "error fetching weather data")
}

func TestCombinedView_LoadingState(t *testing.T) {
	gate := make(chan struct{})
	fetcher := &MockFetcher{
		responses: map[string]models.ForecastResponse{"TOP": forecastOf(tonight())},
		gates:     map[string]chan struct{}{"TOP": gate},
	}
	view := views.NewCombinedView(fetcher, observe.NewZapLogger("test-app", io.Discard))

	done := make(chan error, 1)
	go func() { done <- view.Navigate(context.Background(), "TOP") }()

	assert.Eventually(t, func() bool { return view.State() == views.StateLoading }, time.Second, 5*time.Millisecond)

	close(gate)
	require.NoError(t, <-done)
	assert.Equal(t, views.StateDisplaying, view.State())
}

func TestCombinedView_LoadingDropsPreviousCharts(t *testing.T) {
	gate := make(chan struct{})
	fetcher := &MockFetcher{
		responses: map[string]models.ForecastResponse{
			"OLD": forecastOf(models.ForecastPeriod{Name: "OldLabel", WindSpeed: "1 mph"}),
			"NEW": forecastOf(models.ForecastPeriod{Name: "NewLabel", WindSpeed: "2 mph"}),
		},
		gates: map[string]chan struct{}{"NEW": gate},
	}
	view := views.NewCombinedView(fetcher, observe.NewZapLogger("test-app", io.Discard))

	require.NoError(t, view.Navigate(context.Background(), "OLD"))
	require.NotNil(t, view.Snapshot().Overlay)

	done := make(chan error, 1)
	go func() { done <- view.Navigate(context.Background(), "NEW") }()
	assert.Eventually(t, func() bool { return view.State() == views.StateLoading }, time.Second, 5*time.Millisecond)

	loading := view.Snapshot()
	assert.Equal(t, "NEW", loading.Station)
	assert.Nil(t, loading.Overlay)
	assert.Nil(t, loading.Charts)
	assert.Zero(t, loading.Periods)

	close(gate)
	require.NoError(t, <-done)

	snap := view.Snapshot()
	require.NotNil(t, snap.Overlay)
	assert.Equal(t, []string{"NewLabel"}, snap.Overlay.Data.Labels)
}

func TestCombinedView_StaleResponseDiscarded(t *testing.T) {
	slowGate := make(chan struct{})
	fetcher := &MockFetcher{
		responses: map[string]models.ForecastResponse{
			"OLD": forecastOf(models.ForecastPeriod{Name: "Old", WindSpeed: "1 mph"}),
			"NEW": forecastOf(models.ForecastPeriod{Name: "New", WindSpeed: "2 mph"}, models.ForecastPeriod{Name: "Next", WindSpeed: "3 mph"}),
		},
		gates: map[string]chan struct{}{"OLD": slowGate},
	}
	view := views.NewCombinedView(fetcher, observe.NewZapLogger("test-app", io.Discard))

	staleDone := make(chan error, 1)
	go func() { staleDone <- view.Navigate(context.Background(), "OLD") }()
	assert.Eventually(t, func() bool { return fetcher.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, view.Navigate(context.Background(), "NEW"))

	// The first request finishes last and must not overwrite the newer view.
	close(slowGate)
	assert.ErrorIs(t, <-staleDone, views.ErrStaleResponse)

	snap := view.Snapshot()
	assert.Equal(t, "NEW", snap.Station)
	assert.Equal(t, views.StateDisplaying, snap.State)
	assert.Equal(t, uint64(2), snap.Generation)
	require.NotNil(t, snap.Overlay)
	assert.Equal(t, []string{"New", "Next"}, snap.Overlay.Data.Labels)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "uninitialized", views.StateUninitialized.String())
	assert.Equal(t, "loading", views.StateLoading.String())
	assert.Equal(t, "displaying", views.StateDisplaying.String())
	assert.Equal(t, "failed", views.StateFailed.String())

	text, err := views.StateFailed.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "failed", string(text))
}
