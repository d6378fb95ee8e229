// Package cli implements the forecast-cli commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"weather-charts/config"
	"weather-charts/internal/repositories"
	"weather-charts/internal/services/weather"
	"weather-charts/pkg/observe"
)

// ServiceFactory builds the weather service a command runs against.
type ServiceFactory func(cmd *cobra.Command) (*weather.WeatherService, error)

// NewRootCommand wires the chart and watch commands to services built by newService.
func NewRootCommand(newService ServiceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast-cli",
		Short: "Draw National Weather Service forecasts as terminal charts",
		Long: `forecast-cli fetches the gridpoint forecast of a weather station and draws
temperature, dew point, humidity, wind speed and chance of precipitation
as ASCII line charts, or prints the Chart.js configuration as JSON.

Quick start:
  forecast-cli chart TOP                   # All five metrics on one chart
  forecast-cli chart TOP --metric windSpeed  # One metric
  forecast-cli chart TOP --json            # Chart.js configuration
  forecast-cli watch TOP --interval 10m    # Redraw every ten minutes`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")

	cmd.AddCommand(ChartCommand(newService))
	cmd.AddCommand(WatchCommand(newService))

	return cmd
}

// DefaultServiceFactory loads the same configuration as the server and logs to stderr.
func DefaultServiceFactory(cmd *cobra.Command) (*weather.WeatherService, error) {
	cnf, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	level, _ := cmd.Flags().GetString("log-level")
	l, err := observe.New(observe.Options{
		AppName: "forecast-cli",
		AppEnv:  cnf.App.Env,
		Level:   level,
		Format:  "console",
		Writers: []io.Writer{cmd.ErrOrStderr()},
	})
	if err != nil {
		return nil, err
	}

	return weather.NewWeatherService(repositories.InitForecastRepository(cnf, l), l), nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := NewRootCommand(DefaultServiceFactory)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
