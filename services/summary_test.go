package services

import (
	"testing"

	"weather-atlas/models"
	"weather-atlas/utils"
)

func surveyFixture() []*models.CityWeatherRecord {
	return []*models.CityWeatherRecord{
		{City: "Hilo", Lat: 19.7, MaxTemp: 27, Humidity: 78, Country: "US"},
		{City: "Honolulu", Lat: 21.3, MaxTemp: 29, Humidity: 70, Country: "US"},
		{City: "Reykjavik", Lat: 64.1, MaxTemp: 4, Humidity: 80, Country: "IS"},
		{City: "Sydney", Lat: -33.9, MaxTemp: 22, Humidity: 60, Country: "AU"},
		{City: "Ushuaia", Lat: -54.8, MaxTemp: 6, Humidity: 65, Country: "AR"},
		{City: "Vaini", Lat: -21.2, MaxTemp: 24, Humidity: 94, Country: "TO"},
	}
}

func TestSummaryCounts(t *testing.T) {
	svc := NewSummaryService(utils.NewLogger())
	r := svc.Generate(surveyFixture())

	if r.TotalCities != 6 {
		t.Errorf("TotalCities: got %d, want 6", r.TotalCities)
	}
	if r.NorthernCount != 3 || r.SouthernCount != 3 {
		t.Errorf("hemisphere counts: got %d/%d, want 3/3", r.NorthernCount, r.SouthernCount)
	}
	if r.CountryCounts["US"] != 2 {
		t.Errorf("US count: got %d, want 2", r.CountryCounts["US"])
	}
}

func TestSummaryTemps(t *testing.T) {
	svc := NewSummaryService(utils.NewLogger())
	r := svc.Generate(surveyFixture())

	if r.MinTemp != 4 {
		t.Errorf("MinTemp: got %.2f, want 4", r.MinTemp)
	}
	if r.MaxTemp != 29 {
		t.Errorf("MaxTemp: got %.2f, want 29", r.MaxTemp)
	}
	if r.AvgTemp != 18.67 {
		t.Errorf("AvgTemp: got %.2f, want 18.67", r.AvgTemp)
	}
}

func TestSummaryFits(t *testing.T) {
	svc := NewSummaryService(utils.NewLogger())
	r := svc.Generate(surveyFixture())

	// three points per hemisphere, every variable fits
	if len(r.Fits) != 2*len(Variables) {
		t.Errorf("Fits: got %d, want %d", len(r.Fits), 2*len(Variables))
	}
	if _, ok := r.Fits["north/max_temp"]; !ok {
		t.Error("missing north/max_temp fit")
	}
}

func TestSummaryEmptyInput(t *testing.T) {
	svc := NewSummaryService(utils.NewLogger())
	r := svc.Generate(nil)
	if r.TotalCities != 0 || len(r.Fits) != 0 {
		t.Errorf("expected empty report, got %+v", r)
	}
}
