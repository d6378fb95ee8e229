package charts

import (
	"weather-charts/internal/models"
)

const chartTypeLine = "line"

// Input pairs an extracted series with the spec that styles it.
type Input struct {
	Series models.Series
	Spec   models.ChartSpec
}

// OverlayAxes is the fixed y-axis assignment used when several metrics share one chart.
var OverlayAxes = map[models.MetricKind]string{
	models.Temperature:                "y",
	models.Humidity:                   "y",
	models.ProbabilityOfPrecipitation: "y",
	models.DewPoints:                  "y1",
	models.WindSpeed:                  "y2",
}

const primaryAxis = "y"

// overlayScales returns a fresh copy each call so callers may mutate the result.
func overlayScales() map[string]models.Scale {
	return map[string]models.Scale{
		"y": {
			Type:     "linear",
			Display:  boolPtr(true),
			Position: "left",
		},
		"y1": {
			Type:     "linear",
			Display:  boolPtr(true),
			Position: "right",
			Grid:     &models.Grid{DrawOnChartArea: false},
		},
		"y2": {
			Type:     "linear",
			Display:  boolPtr(true),
			Position: "right",
			Grid:     &models.Grid{DrawOnChartArea: false},
		},
	}
}

// Assemble builds a single-metric chart for one input and an overlay chart for several.
func Assemble(labels []string, inputs ...Input) models.ChartConfiguration {
	if len(inputs) == 1 {
		return AssembleSingle(labels, inputs[0])
	}
	return AssembleOverlay(labels, inputs...)
}

// AssembleSingle renders one dataset on a single y-axis that does not start at zero.
func AssembleSingle(labels []string, in Input) models.ChartConfiguration {
	return models.ChartConfiguration{
		Type: chartTypeLine,
		Data: models.ChartData{
			Labels:   nonNilLabels(labels),
			Datasets: []models.Dataset{dataset(in, "")},
		},
		Options: models.ChartOptions{
			Scales: map[string]models.Scale{
				"y": {BeginAtZero: boolPtr(false)},
			},
			Plugins: models.Plugins{Legend: models.Legend{Display: true}},
		},
	}
}

// AssembleOverlay puts every input on one chart, each on the axis OverlayAxes assigns.
// Metrics missing from the table fall back to the primary axis.
func AssembleOverlay(labels []string, inputs ...Input) models.ChartConfiguration {
	datasets := make([]models.Dataset, 0, len(inputs))
	for _, in := range inputs {
		axis, ok := OverlayAxes[in.Spec.Type]
		if !ok {
			axis = primaryAxis
		}
		datasets = append(datasets, dataset(in, axis))
	}

	return models.ChartConfiguration{
		Type: chartTypeLine,
		Data: models.ChartData{
			Labels:   nonNilLabels(labels),
			Datasets: datasets,
		},
		Options: models.ChartOptions{
			Scales:  overlayScales(),
			Plugins: models.Plugins{Legend: models.Legend{Display: true}},
		},
	}
}

// ExtractAll extracts the given specs from periods, in order.
func ExtractAll(periods []models.ForecastPeriod, specs []models.ChartSpec) ([]Input, error) {
	inputs := make([]Input, 0, len(specs))
	for _, spec := range specs {
		series, err := Extract(periods, spec.Type)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, Input{Series: series, Spec: spec})
	}
	return inputs, nil
}

func dataset(in Input, axis string) models.Dataset {
	data := in.Series
	if data == nil {
		data = models.Series{}
	}
	return models.Dataset{
		Data:            data,
		Label:           in.Spec.Label,
		BorderColor:     in.Spec.BorderColor,
		BackgroundColor: in.Spec.BackgroundColor,
		YAxisID:         axis,
	}
}

func nonNilLabels(labels []string) []string {
	if labels == nil {
		return []string{}
	}
	return labels
}

func boolPtr(b bool) *bool {
	return &b
}
