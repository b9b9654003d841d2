package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Criteria defines the weather filter applied before the hotel search.
// Temperatures are in °C, wind speed in m/s, cloudiness in percent.
type Criteria struct {
	MinMaxTemp    float64 `yaml:"min_max_temp"`
	MaxMaxTemp    float64 `yaml:"max_max_temp"`
	MaxWindSpeed  float64 `yaml:"max_wind_speed"`
	MaxCloudiness int     `yaml:"max_cloudiness"`
}

// DefaultCriteria matches warm, calm, cloudless weather.
func DefaultCriteria() Criteria {
	return Criteria{
		MinMaxTemp:    21,
		MaxMaxTemp:    27,
		MaxWindSpeed:  4.5,
		MaxCloudiness: 0,
	}
}

// LoadCriteria reads the YAML criteria file. A missing file yields the
// defaults; a malformed file is an error.
func LoadCriteria(path string) (Criteria, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCriteria(), nil
		}
		return Criteria{}, fmt.Errorf("criteria: read %q: %w", path, err)
	}

	c := DefaultCriteria()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Criteria{}, fmt.Errorf("criteria: parse %q: %w", path, err)
	}
	return c, nil
}
