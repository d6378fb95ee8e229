package models

import (
	"bytes"
	"math"
	"strconv"
)

// Series is one value per forecast period. nil is null, a NaN pointer is an unparseable value.
type Series []*float64

// MarshalJSON writes nil and NaN entries as null.
func (s Series) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			buf.WriteString("null")
			continue
		}
		buf.WriteString(strconv.FormatFloat(*v, 'f', -1, 64))
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}

// Float64s converts nulls to NaN, which plotting code treats as gaps.
func (s Series) Float64s() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *v
	}
	return out
}

// ChartConfiguration is a Chart.js line chart configuration.
type ChartConfiguration struct {
	Type    string       `json:"type" example:"line"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Data            Series `json:"data" swaggertype:"array,number"`
	Label           string `json:"label" example:"Temperature (°F)"`
	BorderColor     string `json:"borderColor" example:"rgba(255,99,132)"`
	BackgroundColor string `json:"backgroundColor" example:"rgba(255,99,132,0.5)"`
	YAxisID         string `json:"yAxisID,omitempty" example:"y"`
}

type ChartOptions struct {
	Scales  map[string]Scale `json:"scales"`
	Plugins Plugins          `json:"plugins"`
}

type Scale struct {
	Type        string `json:"type,omitempty" example:"linear"`
	Display     *bool  `json:"display,omitempty"`
	Position    string `json:"position,omitempty" example:"left"`
	BeginAtZero *bool  `json:"beginAtZero,omitempty"`
	Grid        *Grid  `json:"grid,omitempty"`
}

type Grid struct {
	DrawOnChartArea bool `json:"drawOnChartArea"`
}

type Plugins struct {
	Legend Legend `json:"legend"`
}

type Legend struct {
	Display bool `json:"display"`
}
