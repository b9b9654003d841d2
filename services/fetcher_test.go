package services

import (
	"context"
	"errors"
	"testing"

	"weather-atlas/models"
	"weather-atlas/utils"
)

type fakeWeather struct {
	fail map[string]bool
}

func (f *fakeWeather) CurrentByCity(_ context.Context, city string) (*models.CityWeatherRecord, error) {
	if f.fail[city] {
		return nil, errors.New("unreachable host")
	}
	return &models.CityWeatherRecord{City: city, Humidity: 50, Date: 1}, nil
}

func TestFetcherSkipsFailures(t *testing.T) {
	src := &fakeWeather{fail: map[string]bool{"Atlantis": true, "El Dorado": true}}
	f := NewFetcher(src, utils.NewLogger())

	cities := []string{"Hilo", "Atlantis", "Ushuaia", "El Dorado", "Vaini"}
	records, err := f.FetchAll(context.Background(), cities)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("records: got %d, want 3", len(records))
	}
	want := []string{"Hilo", "Ushuaia", "Vaini"}
	for i, w := range want {
		if records[i].City != w {
			t.Errorf("records[%d]: got %q, want %q", i, records[i].City, w)
		}
	}
	for _, r := range records {
		if r.City == "Atlantis" || r.City == "El Dorado" {
			t.Errorf("failed city present in output: %q", r.City)
		}
	}
}

func TestFetcherContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetcher(&fakeWeather{}, utils.NewLogger())
	records, err := f.FetchAll(ctx, []string{"Hilo"})
	if err == nil {
		t.Fatal("expected context error")
	}
	if len(records) != 0 {
		t.Errorf("records after cancel: got %d, want 0", len(records))
	}
}

func TestFetcherEmptyInput(t *testing.T) {
	f := NewFetcher(&fakeWeather{}, utils.NewLogger())
	records, err := f.FetchAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records: got %d, want 0", len(records))
	}
}
