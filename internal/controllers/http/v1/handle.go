package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"weather-charts/internal/charts"
	"weather-charts/internal/models"
	"weather-charts/internal/views"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Failed to fetch weather data"`
}

// LandingResponse describes the service and the charts it can draw
type LandingResponse struct {
	App     string             `json:"app" example:"weather-charts"`
	Version string             `json:"version" example:"1.0.0"`
	Routes  []string           `json:"routes"`
	Metrics []models.ChartSpec `json:"metrics"`
}

func (r *routes) handleRoot(c *fiber.Ctx) error {
	return c.Redirect("/home", fiber.StatusFound)
}

// GetHome godoc
// @Summary Landing page
// @Description Lists the available routes and the chartable forecast metrics
// @Tags Weather
// @Produce json
// @Success 200 {object} LandingResponse
// @Router /home [get]
func (r *routes) handleHome(c *fiber.Ctx) error {
	return c.JSON(LandingResponse{
		App:     r.appName,
		Version: r.version,
		Routes: []string{
			"/weather/{station}",
			"/weather/{station}/{metric}",
			"/swagger/index.html",
		},
		Metrics: r.service.Catalog(),
	})
}

func (r *routes) handleMissingStation(c *fiber.Ctx) error {
	r.l.Error(views.ErrMissingStation, map[string]any{"path": c.Path()})

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error: "Missing required parameter: station",
	})
}

// GetWeatherCharts godoc
// @Summary Get forecast charts for a station
// @Description Fetches the station forecast and returns an overlay chart of all five metrics plus one chart per metric
// @Tags Weather
// @Produce json
// @Param station path string true "Forecast office / grid station id" example(TOP)
// @Success 200 {object} views.Snapshot "Chart.js configurations"
// @Failure 400 {object} ErrorResponse "Missing station"
// @Failure 502 {object} ErrorResponse "Upstream forecast API failed"
// @Router /weather/{station} [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/weather/TOP"
func (r *routes) handleWeatherCharts(c *fiber.Ctx) error {
	station := c.Params("station")

	snap, err := r.service.Combined(c.Context(), station)
	switch {
	case err == nil:
		return c.JSON(snap)
	case errors.Is(err, views.ErrMissingStation):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: station",
		})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "Failed to fetch weather data",
		})
	}
}

// GetMetricChart godoc
// @Summary Get one metric chart for a station
// @Description Fetches the station forecast and charts a single metric
// @Tags Weather
// @Produce json
// @Param station path string true "Forecast office / grid station id" example(TOP)
// @Param metric path string true "Temperature, DewPoints, Humidity, WindSpeed or ProbabilityOfPrecipitation" example(WindSpeed)
// @Success 200 {object} models.ChartConfiguration "Chart.js configuration"
// @Failure 404 {object} ErrorResponse "Unknown metric"
// @Failure 502 {object} ErrorResponse "Upstream forecast API failed"
// @Router /weather/{station}/{metric} [get]
func (r *routes) handleMetricChart(c *fiber.Ctx) error {
	station := c.Params("station")
	metric := c.Params("metric")

	chart, err := r.service.Metric(c.Context(), station, metric)
	switch {
	case err == nil:
		return c.JSON(chart)
	case errors.Is(err, charts.ErrUnknownMetric):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Unknown metric: " + metric,
		})
	case errors.Is(err, views.ErrMissingStation):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: station",
		})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "Failed to fetch weather data",
		})
	}
}
