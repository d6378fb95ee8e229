package views

import (
	"weather-charts/internal/charts"
	"weather-charts/internal/models"
)

// SingleMetricView charts one metric of an already fetched period list.
type SingleMetricView struct {
	Spec    models.ChartSpec
	Periods []models.ForecastPeriod
}

func NewSingleMetricView(spec models.ChartSpec, periods []models.ForecastPeriod) SingleMetricView {
	return SingleMetricView{Spec: spec, Periods: periods}
}

func (v SingleMetricView) Render() (models.ChartConfiguration, error) {
	series, err := charts.Extract(v.Periods, v.Spec.Type)
	if err != nil {
		return models.ChartConfiguration{}, err
	}

	return charts.Assemble(charts.Labels(v.Periods), charts.Input{Series: series, Spec: v.Spec}), nil
}
