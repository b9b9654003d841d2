package services

import (
	"weather-atlas/config"
	"weather-atlas/models"
	"weather-atlas/utils"
)

// Filter keeps the records matching the configured weather criteria.
type Filter struct {
	criteria config.Criteria
	logger   *utils.Logger
}

// NewFilter creates a Filter with the given criteria.
func NewFilter(criteria config.Criteria, logger *utils.Logger) *Filter {
	return &Filter{criteria: criteria, logger: logger}
}

// Apply returns the records whose weather satisfies every criterion.
func (f *Filter) Apply(records []*models.CityWeatherRecord) []*models.CityWeatherRecord {
	result := make([]*models.CityWeatherRecord, 0, len(records))

	for _, r := range records {
		if f.matches(r) {
			result = append(result, r)
		}
	}

	f.logger.Info("[filter] Filtered %d → %d cities (dropped %d)",
		len(records), len(result), len(records)-len(result))
	return result
}

func (f *Filter) matches(r *models.CityWeatherRecord) bool {
	return r.MaxTemp >= f.criteria.MinMaxTemp &&
		r.MaxTemp <= f.criteria.MaxMaxTemp &&
		r.WindSpeed <= f.criteria.MaxWindSpeed &&
		r.Cloudiness <= f.criteria.MaxCloudiness
}
