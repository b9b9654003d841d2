package models

// CityWeatherRecord is a single current-weather observation for a city.
// It is created once per successful API response and never mutated; the
// row index is assigned by the CSV writer at write time.
type CityWeatherRecord struct {
	City       string
	Lat        float64
	Lng        float64
	MaxTemp    float64
	Humidity   int
	Cloudiness int
	WindSpeed  float64
	Country    string // ISO 3166-1 alpha-2
	Date       int64  // unix timestamp of the observation
}

// HotelNotFound is the sentinel stored when the places lookup returns
// no usable result for a city.
const HotelNotFound = "No hotel found"

// HotelRecord is a CityWeatherRecord enriched with the nearest hotel name.
type HotelRecord struct {
	CityWeatherRecord
	HotelName string
}

// RegressionResult holds an ordinary least-squares fit of one weather
// variable against latitude.
type RegressionResult struct {
	Slope     float64
	Intercept float64
	R         float64
	R2        float64
	N         int
}

// SurveyReport holds the computed summary over a collected dataset.
type SurveyReport struct {
	TotalCities   int
	NorthernCount int
	SouthernCount int
	MinTemp       float64
	AvgTemp       float64
	MaxTemp       float64
	CountryCounts map[string]int

	// Fits maps "hemisphere/variable" (e.g. "north/max_temp") to its
	// regression result. Degenerate groups are absent.
	Fits map[string]RegressionResult
}
