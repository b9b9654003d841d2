package services

import (
	"context"

	"weather-atlas/models"
	"weather-atlas/utils"
)

// PlacesSource answers nearest-hotel queries around a coordinate.
type PlacesSource interface {
	NearestHotel(ctx context.Context, lat, lng float64) (string, error)
}

// HotelFinder enriches weather records with the nearest hotel name.
// Any lookup failure, no-result included, yields the sentinel value.
type HotelFinder struct {
	source PlacesSource
	logger *utils.Logger
}

// NewHotelFinder creates a HotelFinder over the given source.
func NewHotelFinder(source PlacesSource, logger *utils.Logger) *HotelFinder {
	return &HotelFinder{source: source, logger: logger}
}

// FindAll queries each record in order and returns the enriched list.
func (h *HotelFinder) FindAll(ctx context.Context, records []*models.CityWeatherRecord) ([]*models.HotelRecord, error) {
	result := make([]*models.HotelRecord, 0, len(records))

	for i, r := range records {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		h.logger.Info("[hotels] Searching %d/%d: %s", i+1, len(records), r.City)

		name, err := h.source.NearestHotel(ctx, r.Lat, r.Lng)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			h.logger.Warn("[hotels] %s: %v", r.City, err)
			name = models.HotelNotFound
		}

		result = append(result, &models.HotelRecord{
			CityWeatherRecord: *r,
			HotelName:         name,
		})
	}

	return result, nil
}
