package services

import (
	"context"

	"weather-atlas/models"
	"weather-atlas/utils"
)

// WeatherSource is the weather provider the fetcher draws from.
type WeatherSource interface {
	CurrentByCity(ctx context.Context, city string) (*models.CityWeatherRecord, error)
}

// Fetcher collects one observation per city, sequentially. Cities whose
// request or parse fails are dropped, not retried.
type Fetcher struct {
	source WeatherSource
	logger *utils.Logger
}

// NewFetcher creates a Fetcher over the given source.
func NewFetcher(source WeatherSource, logger *utils.Logger) *Fetcher {
	return &Fetcher{source: source, logger: logger}
}

// FetchAll requests each city in order and returns the successful
// records. The returned order is processing order.
func (f *Fetcher) FetchAll(ctx context.Context, cities []string) ([]*models.CityWeatherRecord, error) {
	records := make([]*models.CityWeatherRecord, 0, len(cities))

	for i, city := range cities {
		if ctx.Err() != nil {
			return records, ctx.Err()
		}

		f.logger.Info("[fetcher] Processing record %d/%d: %s", i+1, len(cities), city)

		rec, err := f.source.CurrentByCity(ctx, city)
		if err != nil {
			if ctx.Err() != nil {
				return records, ctx.Err()
			}
			f.logger.Warn("[fetcher] %s skipped: %v", city, err)
			continue
		}
		records = append(records, rec)
	}

	f.logger.Info("[fetcher] Collected %d/%d cities (dropped %d)",
		len(records), len(cities), len(cities)-len(records))
	return records, nil
}
