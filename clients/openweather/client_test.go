package openweather_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weather-atlas/clients/openweather"
)

const sampleBody = `{
	"name": "Hilo",
	"coord": {"lat": 19.7297, "lon": -155.09},
	"main": {"temp_max": 27.4, "humidity": 78},
	"clouds": {"all": 40},
	"wind": {"speed": 3.6},
	"sys": {"country": "US"},
	"dt": 1700000000
}`

func newTestClient(t *testing.T, url string) *openweather.Client {
	t.Helper()
	c, err := openweather.New(url, "test-key", time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return c
}

func TestCurrentByCity(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "Hilo" || q.Get("appid") != "test-key" || q.Get("units") != "metric" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(sampleBody))
	}))
	defer ts.Close()

	rec, err := newTestClient(t, ts.URL).CurrentByCity(context.Background(), "Hilo")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if rec.City != "Hilo" || rec.Country != "US" {
		t.Errorf("city/country: got %q/%q", rec.City, rec.Country)
	}
	if rec.Lat != 19.7297 || rec.Lng != -155.09 {
		t.Errorf("coords: got %f/%f", rec.Lat, rec.Lng)
	}
	if rec.MaxTemp != 27.4 || rec.Humidity != 78 || rec.Cloudiness != 40 || rec.WindSpeed != 3.6 {
		t.Errorf("measurements: got %+v", rec)
	}
	if rec.Date != 1700000000 {
		t.Errorf("date: got %d", rec.Date)
	}
	if rec.Humidity < 0 || rec.Cloudiness < 0 {
		t.Errorf("negative humidity or cloudiness: %+v", rec)
	}
}

func TestCurrentByCityNotFound(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	_, err := newTestClient(t, ts.URL).CurrentByCity(context.Background(), "Atlantis")
	if !errors.Is(err, openweather.ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}
}

func TestCurrentByCityMalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "Hilo", "main": {`))
	}))
	defer ts.Close()

	if _, err := newTestClient(t, ts.URL).CurrentByCity(context.Background(), "Hilo"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestCurrentByCityMissingFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"coord": {"lat": 1, "lon": 2}}`))
	}))
	defer ts.Close()

	if _, err := newTestClient(t, ts.URL).CurrentByCity(context.Background(), "Hilo"); err == nil {
		t.Fatal("expected error for response missing name and dt")
	}
}

func TestNewRequiresKey(t *testing.T) {
	if _, err := openweather.New("", "", time.Second); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
