package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCriteriaMissingFileUsesDefaults(t *testing.T) {
	c, err := LoadCriteria(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c != DefaultCriteria() {
		t.Errorf("got %+v, want defaults %+v", c, DefaultCriteria())
	}
}

func TestLoadCriteria(t *testing.T) {
	path := filepath.Join(t.TempDir(), "criteria.yaml")
	body := "min_max_temp: 18\nmax_max_temp: 30\nmax_wind_speed: 6\nmax_cloudiness: 20\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCriteria(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.MinMaxTemp != 18 || c.MaxMaxTemp != 30 || c.MaxWindSpeed != 6 || c.MaxCloudiness != 20 {
		t.Errorf("got %+v", c)
	}
}

func TestLoadCriteriaMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "criteria.yaml")
	if err := os.WriteFile(path, []byte("min_max_temp: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCriteria(path); err == nil {
		t.Fatal("expected parse error")
	}
}
