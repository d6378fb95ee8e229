package models

// QuantitativeValue is the NWS {unitCode, value} pair. A nil Value means the upstream sent null.
type QuantitativeValue struct {
	UnitCode string   `json:"unitCode,omitempty" example:"wmoUnit:degC"`
	Value    *float64 `json:"value"`
}

// ForecastPeriod is one forecast time-slot, e.g. "Tonight".
type ForecastPeriod struct {
	Number                     int                `json:"number" example:"1"`
	Name                       string             `json:"name" example:"Tonight"`
	StartTime                  string             `json:"startTime,omitempty" example:"2026-10-19T18:00:00-05:00"`
	EndTime                    string             `json:"endTime,omitempty" example:"2026-10-20T06:00:00-05:00"`
	IsDaytime                  bool               `json:"isDaytime"`
	Temperature                *float64           `json:"temperature" example:"40"`
	TemperatureUnit            string             `json:"temperatureUnit,omitempty" example:"F"`
	Dewpoint                   *QuantitativeValue `json:"dewpoint,omitempty"`
	RelativeHumidity           *QuantitativeValue `json:"relativeHumidity,omitempty"`
	WindSpeed                  string             `json:"windSpeed" example:"5 mph"`
	WindDirection              string             `json:"windDirection,omitempty" example:"NW"`
	ProbabilityOfPrecipitation *QuantitativeValue `json:"probabilityOfPrecipitation,omitempty"`
	Icon                       string             `json:"icon,omitempty"`
	ShortForecast              string             `json:"shortForecast,omitempty" example:"Partly Cloudy"`
	DetailedForecast           string             `json:"detailedForecast,omitempty"`
}

type ForecastProperties struct {
	Updated string           `json:"updated,omitempty"`
	Units   string           `json:"units,omitempty"`
	Periods []ForecastPeriod `json:"periods"`
}

// ForecastResponse mirrors the body of GET /gridpoints/{station}/{x},{y}/forecast.
type ForecastResponse struct {
	Properties ForecastProperties `json:"properties"`
}

// Periods returns the periods in forecast order.
func (r ForecastResponse) Periods() []ForecastPeriod {
	return r.Properties.Periods
}

// Float returns a pointer to v, for Temperature in fixtures.
func Float(v float64) *float64 {
	return &v
}

// Val returns a QuantitativeValue holding v. Handy for building fixtures.
func Val(v float64) *QuantitativeValue {
	return &QuantitativeValue{Value: &v}
}
