package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-charts/internal/services/weather"
	"weather-charts/pkg/observe"
)

type routes struct {
	service *weather.WeatherService
	l       *observe.Logger
	appName string
	version string
}

type RouterOptions struct {
	AppName string
	Version string
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	l *observe.Logger,
	opts RouterOptions,
) {
	r := &routes{
		service: weatherService,
		l:       l,
		appName: opts.AppName,
		version: opts.Version,
	}

	// Swagger documentation, served from the registered swag docs
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	app.Get("/", r.handleRoot)
	app.Get("/home", r.handleHome)

	app.Get("/weather", r.handleMissingStation)
	app.Get("/weather/:station", r.handleWeatherCharts)
	app.Get("/weather/:station/:metric", r.handleMetricChart)
}
