// Package charts turns forecast periods into per-metric series and Chart.js configurations.
package charts

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"weather-charts/internal/models"
)

var ErrUnknownMetric = errors.New("unknown metric")

// Extract projects periods onto one metric. The result always has len(periods) entries.
func Extract(periods []models.ForecastPeriod, metric models.MetricKind) (models.Series, error) {
	var pick func(p models.ForecastPeriod) *float64

	switch metric {
	case models.Temperature:
		pick = func(p models.ForecastPeriod) *float64 {
			if p.Temperature == nil {
				return nil
			}
			return ptr(*p.Temperature)
		}
	case models.DewPoints:
		pick = func(p models.ForecastPeriod) *float64 {
			return optional(p.Dewpoint)
		}
	case models.Humidity:
		pick = func(p models.ForecastPeriod) *float64 {
			return optional(p.RelativeHumidity)
		}
	case models.WindSpeed:
		pick = func(p models.ForecastPeriod) *float64 {
			return ptr(ParseLeadingInt(p.WindSpeed))
		}
	case models.ProbabilityOfPrecipitation:
		pick = func(p models.ForecastPeriod) *float64 {
			v := optional(p.ProbabilityOfPrecipitation)
			if v == nil || *v == 0 || math.IsNaN(*v) {
				return ptr(0)
			}
			return v
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	series := make(models.Series, len(periods))
	for i, p := range periods {
		series[i] = pick(p)
	}

	return series, nil
}

// Labels returns the period names, the x-axis of every chart.
func Labels(periods []models.ForecastPeriod) []string {
	labels := make([]string, len(periods))
	for i, p := range periods {
		labels[i] = p.Name
	}
	return labels
}

// ParseLeadingInt reads a base-10 integer prefix the way JavaScript's parseInt does:
// leading whitespace, an optional sign, then digits. No digits yields NaN.
//
//	"10 mph"      -> 10
//	"5 to 10 mph" -> 5
//	"mph"         -> NaN
func ParseLeadingInt(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	sign := 1.0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return math.NaN()
	}

	// Only ErrRange is possible here; ParseFloat then returns +Inf, same as JavaScript.
	v, _ := strconv.ParseFloat(s[:end], 64)

	return sign * v
}

func optional(q *models.QuantitativeValue) *float64 {
	if q == nil || q.Value == nil {
		return nil
	}
	return ptr(*q.Value)
}

func ptr(v float64) *float64 {
	return &v
}
