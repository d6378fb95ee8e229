package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"weather-charts/internal/models"
	"weather-charts/internal/render"
)

func ChartCommand(newService ServiceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart <station>",
		Short: "Draw the forecast of a station once",
		Long: `Fetch the forecast of a station and draw it.

Without --metric all five metrics share one chart. With --metric only that
metric is drawn; it accepts the metric type or its data key, in any case.

Examples:
  forecast-cli chart TOP
  forecast-cli chart TOP --metric Humidity --width 100 --height 20
  forecast-cli chart TOP --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd, args, newService)
		},
	}

	cmd.Flags().StringP("metric", "m", "", "Temperature, DewPoints, Humidity, WindSpeed or ProbabilityOfPrecipitation")
	cmd.Flags().Bool("json", false, "Print the Chart.js configuration instead of drawing it")
	addPlotFlags(cmd)

	return cmd
}

func runChart(cmd *cobra.Command, args []string, newService ServiceFactory) error {
	service, err := newService(cmd)
	if err != nil {
		return err
	}

	station := stationArg(args)
	metric, _ := cmd.Flags().GetString("metric")
	asJSON, _ := cmd.Flags().GetBool("json")
	opts := plotOptions(cmd)
	out := cmd.OutOrStdout()

	if metric != "" {
		chart, err := service.Metric(cmd.Context(), station, metric)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(out, chart)
		}
		fmt.Fprintln(out, render.Chart(station, chart, opts))
		return nil
	}

	snap, err := service.Combined(cmd.Context(), station)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(out, snap)
	}

	var overlay models.ChartConfiguration
	if snap.Overlay != nil {
		overlay = *snap.Overlay
	}
	fmt.Fprintln(out, render.Chart(station, overlay, opts))

	return nil
}

func addPlotFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", render.DefaultWidth, "Plot width in columns")
	cmd.Flags().Int("height", render.DefaultHeight, "Plot height in rows")
	cmd.Flags().Bool("color", true, "Color each metric (default on when writing to a terminal)")
}

func plotOptions(cmd *cobra.Command) render.Options {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	return render.Options{Width: width, Height: height, Color: terminalFlag(cmd, "color")}
}

// terminalFlag returns the flag when it was given and otherwise whether output is a terminal.
func terminalFlag(cmd *cobra.Command, name string) bool {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetBool(name)
		return v
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// stationArg returns "" when the station was left out, which the service reports as missing.
func stationArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
