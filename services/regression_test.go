package services

import (
	"errors"
	"math"
	"testing"

	"weather-atlas/models"
)

func TestSplitByHemisphere(t *testing.T) {
	records := []*models.CityWeatherRecord{
		{City: "Reykjavik", Lat: 64.1},
		{City: "Quito", Lat: 0},
		{City: "Sydney", Lat: -33.9},
		{City: "Nairobi", Lat: -1.3},
		{City: "Honolulu", Lat: 21.3},
	}

	north, south := SplitByHemisphere(records)

	if len(north)+len(south) != len(records) {
		t.Fatalf("groups do not partition input: %d + %d != %d", len(north), len(south), len(records))
	}
	for _, r := range north {
		if r.Lat < 0 {
			t.Errorf("%s (lat %f) in northern group", r.City, r.Lat)
		}
	}
	for _, r := range south {
		if r.Lat >= 0 {
			t.Errorf("%s (lat %f) in southern group", r.City, r.Lat)
		}
	}
	// Lat == 0 belongs north
	foundQuito := false
	for _, r := range north {
		if r.City == "Quito" {
			foundQuito = true
		}
	}
	if !foundQuito {
		t.Error("Quito (lat 0) should be in the northern group")
	}
}

func TestFitPerfectLine(t *testing.T) {
	// humidity = 2*lat + 10, an exact fit
	var records []*models.CityWeatherRecord
	for lat := 5.0; lat <= 50; lat += 5 {
		records = append(records, &models.CityWeatherRecord{
			Lat:      lat,
			Humidity: int(2*lat + 10),
		})
	}

	res, err := Fit(records, VarHumidity)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if math.Abs(res.Slope-2) > 1e-9 {
		t.Errorf("slope: got %f, want 2", res.Slope)
	}
	if math.Abs(res.Intercept-10) > 1e-9 {
		t.Errorf("intercept: got %f, want 10", res.Intercept)
	}
	if math.Abs(res.R2-1) > 1e-9 {
		t.Errorf("R²: got %f, want 1", res.R2)
	}
	if res.N != len(records) {
		t.Errorf("N: got %d, want %d", res.N, len(records))
	}
}

func TestFitTooFewPoints(t *testing.T) {
	for _, records := range [][]*models.CityWeatherRecord{
		nil,
		{{Lat: 10, MaxTemp: 20}},
	} {
		if _, err := Fit(records, VarMaxTemp); !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("expected ErrTooFewPoints for %d points, got %v", len(records), err)
		}
	}
}

func TestEquation(t *testing.T) {
	tests := []struct {
		res  models.RegressionResult
		want string
	}{
		{models.RegressionResult{Slope: -0.5, Intercept: 27.31}, "y = -0.50x + 27.31"},
		{models.RegressionResult{Slope: 1.25, Intercept: -3.4}, "y = 1.25x - 3.40"},
	}

	for _, tt := range tests {
		if got := Equation(tt.res); got != tt.want {
			t.Errorf("Equation: got %q, want %q", got, tt.want)
		}
	}
}

func TestVariableValue(t *testing.T) {
	r := &models.CityWeatherRecord{MaxTemp: 25.5, Humidity: 60, Cloudiness: 20, WindSpeed: 3.2}

	tests := []struct {
		v    Variable
		want float64
	}{
		{VarMaxTemp, 25.5},
		{VarHumidity, 60},
		{VarCloudiness, 20},
		{VarWindSpeed, 3.2},
	}

	for _, tt := range tests {
		if got := tt.v.Value(r); got != tt.want {
			t.Errorf("%s: got %f, want %f", tt.v, got, tt.want)
		}
	}
}
