// Package render draws chart configurations as ASCII line charts for terminals.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"weather-charts/internal/models"
)

const (
	DefaultHeight = 12
	DefaultWidth  = 72

	// room for the y-axis labels asciigraph prints on the left
	axisLabelWidth = 9
	minPlotWidth   = 10
)

// Options sizes the plot. Zero values fall back to the defaults.
type Options struct {
	Width  int
	Height int
	// Color disables ANSI colors when false.
	Color bool
}

// seriesColors maps each metric's border color to the closest terminal color.
var seriesColors = map[string]asciigraph.AnsiColor{
	"rgba(255,99,132)":  asciigraph.Red,
	"rgba(53,162,235)":  asciigraph.DodgerBlue,
	"rgba(75,192,192)":  asciigraph.Teal,
	"rgba(255,205,86)":  asciigraph.Gold,
	"rgba(201,203,207)": asciigraph.Gray,
}

// Chart renders every dataset of chart on one plot, with a legend and a summary line per dataset.
// Datasets without a single value are skipped. A chart with nothing to draw renders as "no data".
func Chart(title string, chart models.ChartConfiguration, opts Options) string {
	var (
		data    [][]float64
		colors  []asciigraph.AnsiColor
		legends []string
		summary []string
	)

	for _, ds := range chart.Data.Datasets {
		values := gaps(ds.Data.Float64s())
		if !hasValue(values) {
			continue
		}

		data = append(data, values)
		colors = append(colors, colorFor(ds.BorderColor))
		legends = append(legends, ds.Label)
		summary = append(summary, summarize(ds.Label, values))
	}

	if len(data) == 0 {
		return title + ": no data"
	}

	height := opts.Height
	if height <= 0 {
		height = DefaultHeight
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	plotWidth := width - axisLabelWidth
	if plotWidth < minPlotWidth {
		plotWidth = minPlotWidth
	}

	options := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(0),
		asciigraph.LabelColor(asciigraph.Default),
	}
	if caption := axisCaption(chart.Data.Labels); caption != "" {
		options = append(options, asciigraph.Caption(caption))
	}
	// asciigraph indexes SeriesColors for every legend, so the two always go together.
	// Its legend boxes are escape codes even in the default color, so plain output
	// leaves them out; the summary lines still name every series.
	if opts.Color {
		options = append(options,
			asciigraph.SeriesColors(colors...),
			asciigraph.SeriesLegends(legends...),
		)
	}

	plot := asciigraph.PlotMany(data, options...)

	return strings.Join([]string{title, plot, strings.Join(summary, "\n")}, "\n")
}

func colorFor(border string) asciigraph.AnsiColor {
	if c, ok := seriesColors[border]; ok {
		return c
	}
	return asciigraph.Default
}

// axisCaption names the first and last forecast periods.
func axisCaption(labels []string) string {
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	default:
		return labels[0] + " → " + labels[len(labels)-1]
	}
}

// gaps turns infinities into NaN so they are drawn as holes rather than stretching the axis.
func gaps(values []float64) []float64 {
	for i, v := range values {
		if math.IsInf(v, 0) {
			values[i] = math.NaN()
		}
	}
	return values
}

func hasValue(values []float64) bool {
	for _, v := range values {
		if !math.IsNaN(v) {
			return true
		}
	}
	return false
}

// summarize reports the first, min and max of the values that are present.
func summarize(label string, values []float64) string {
	first, lo, hi := math.NaN(), math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(first) {
			first = v
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return fmt.Sprintf("  %s  now: %.0f  min: %.0f  max: %.0f", label, first, lo, hi)
}
