package models

import "strings"

// MetricKind names one chartable forecast metric.
type MetricKind string

const (
	Temperature                MetricKind = "Temperature"
	DewPoints                  MetricKind = "DewPoints"
	Humidity                   MetricKind = "Humidity"
	WindSpeed                  MetricKind = "WindSpeed"
	ProbabilityOfPrecipitation MetricKind = "ProbabilityOfPrecipitation"
)

// ChartSpec is the static display configuration of one metric.
type ChartSpec struct {
	Type            MetricKind `json:"type" example:"Temperature"`
	DataKey         string     `json:"datakey" example:"temperature"`
	Label           string     `json:"label" example:"Temperature (°F)"`
	BorderColor     string     `json:"borderColor" example:"rgba(255,99,132)"`
	BackgroundColor string     `json:"backgroundColor" example:"rgba(255,99,132,0.5)"`
}

var chartSpecs = []ChartSpec{
	{
		Type:            Temperature,
		DataKey:         "temperature",
		Label:           "Temperature (°F)",
		BorderColor:     "rgba(255,99,132)",
		BackgroundColor: "rgba(255,99,132,0.5)",
	},
	{
		Type:            DewPoints,
		DataKey:         "dewPoints",
		Label:           "DewPoint (°C)",
		BorderColor:     "rgba(53,162,235)",
		BackgroundColor: "rgba(53,162,235,0.5)",
	},
	{
		Type:            Humidity,
		DataKey:         "humidity",
		Label:           "Humidity (%)",
		BorderColor:     "rgba(75,192,192)",
		BackgroundColor: "rgba(75,192,192,0.5)",
	},
	{
		Type:            WindSpeed,
		DataKey:         "windSpeed",
		Label:           "Wind speed (mph)",
		BorderColor:     "rgba(255,205,86)",
		BackgroundColor: "rgba(255,205,86,0.5)",
	},
	{
		Type:            ProbabilityOfPrecipitation,
		DataKey:         "probabilityOfPrecipitation",
		Label:           "Chance of Precipitation (%)",
		BorderColor:     "rgba(201,203,207)",
		BackgroundColor: "rgba(201,203,207,0.5)",
	},
}

// ChartSpecs returns a copy of the five fixed specs in display order.
func ChartSpecs() []ChartSpec {
	out := make([]ChartSpec, len(chartSpecs))
	copy(out, chartSpecs)
	return out
}

func SpecFor(kind MetricKind) (ChartSpec, bool) {
	for _, s := range chartSpecs {
		if s.Type == kind {
			return s, true
		}
	}
	return ChartSpec{}, false
}

// ParseMetricKind accepts either the type or the data key, case-insensitively.
func ParseMetricKind(s string) (MetricKind, bool) {
	s = strings.TrimSpace(s)
	for _, spec := range chartSpecs {
		if strings.EqualFold(s, string(spec.Type)) || strings.EqualFold(s, spec.DataKey) {
			return spec.Type, true
		}
	}
	return "", false
}
