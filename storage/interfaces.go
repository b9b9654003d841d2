package storage

import "weather-atlas/models"

// RecordWriter is the interface any weather storage backend must satisfy.
type RecordWriter interface {
	Write(records []*models.CityWeatherRecord) error
	Close() error
}

// HotelRecordWriter is the interface for persisting hotel-enriched records.
type HotelRecordWriter interface {
	WriteHotels(records []*models.HotelRecord) error
	Close() error
}
