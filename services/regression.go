package services

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"weather-atlas/models"
)

// ErrTooFewPoints is returned when a group has fewer than two members,
// which leaves the regression undefined. Such groups are skipped.
var ErrTooFewPoints = errors.New("regression: need at least two points")

// Variable selects the dependent weather variable for a regression.
type Variable string

const (
	VarMaxTemp    Variable = "max_temp"
	VarHumidity   Variable = "humidity"
	VarCloudiness Variable = "cloudiness"
	VarWindSpeed  Variable = "wind_speed"
)

// Variables lists every regressed weather variable.
var Variables = []Variable{VarMaxTemp, VarHumidity, VarCloudiness, VarWindSpeed}

// Label returns the human-readable axis label for the variable.
func (v Variable) Label() string {
	switch v {
	case VarMaxTemp:
		return "Max Temperature (°C)"
	case VarHumidity:
		return "Humidity (%)"
	case VarCloudiness:
		return "Cloudiness (%)"
	case VarWindSpeed:
		return "Wind Speed (m/s)"
	}
	return string(v)
}

// Value extracts the variable from a record.
func (v Variable) Value(r *models.CityWeatherRecord) float64 {
	switch v {
	case VarMaxTemp:
		return r.MaxTemp
	case VarHumidity:
		return float64(r.Humidity)
	case VarCloudiness:
		return float64(r.Cloudiness)
	case VarWindSpeed:
		return r.WindSpeed
	}
	return 0
}

// SplitByHemisphere partitions records by the sign of latitude.
// Lat >= 0 goes north, Lat < 0 goes south; the groups partition the
// input exactly.
func SplitByHemisphere(records []*models.CityWeatherRecord) (north, south []*models.CityWeatherRecord) {
	for _, r := range records {
		if r.Lat >= 0 {
			north = append(north, r)
		} else {
			south = append(south, r)
		}
	}
	return north, south
}

// Fit computes the ordinary least-squares regression of the variable
// against latitude for the given group.
func Fit(records []*models.CityWeatherRecord, v Variable) (models.RegressionResult, error) {
	if len(records) < 2 {
		return models.RegressionResult{}, ErrTooFewPoints
	}

	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	for i, r := range records {
		xs[i] = r.Lat
		ys[i] = v.Value(r)
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	r := stat.Correlation(xs, ys, nil)

	return models.RegressionResult{
		Slope:     slope,
		Intercept: intercept,
		R:         r,
		R2:        r * r,
		N:         len(records),
	}, nil
}

// Equation renders the fitted line as "y = mx + b".
func Equation(res models.RegressionResult) string {
	sign := "+"
	b := res.Intercept
	if b < 0 {
		sign = "-"
		b = -b
	}
	return fmt.Sprintf("y = %.2fx %s %.2f", res.Slope, sign, b)
}
