package geo

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"weather-atlas/utils"
)

const earthRadiusKm = 6371.0

// City is one populated-place entry in the reference dataset.
type City struct {
	Name        string
	CountryCode string
	Lat         float64
	Lng         float64
}

// CityIndex answers nearest-city queries over a reference city dataset.
type CityIndex struct {
	cities []City
}

// LoadCityIndex reads a cities CSV with columns name,country,lat,lng
// (header row required) and builds an index over it.
func LoadCityIndex(path string) (*CityIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geo: open cities file %q: %w", path, err)
	}
	defer f.Close()

	return ReadCityIndex(f)
}

// ReadCityIndex parses the cities CSV from r.
func ReadCityIndex(r io.Reader) (*CityIndex, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("geo: read cities header: %w", err)
	}
	if len(header) < 4 {
		return nil, fmt.Errorf("geo: cities file needs name,country,lat,lng columns, got %d", len(header))
	}

	var cities []City
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("geo: read cities row: %w", err)
		}

		lat, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("geo: bad latitude %q for %q: %w", row[2], row[0], err)
		}
		lng, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("geo: bad longitude %q for %q: %w", row[3], row[0], err)
		}

		cities = append(cities, City{
			Name:        row[0],
			CountryCode: row[1],
			Lat:         lat,
			Lng:         lng,
		})
	}

	if len(cities) == 0 {
		return nil, fmt.Errorf("geo: cities file contains no rows")
	}
	return &CityIndex{cities: cities}, nil
}

// Size returns the number of cities in the index.
func (ix *CityIndex) Size() int {
	return len(ix.cities)
}

// Nearest returns the city closest to the given coordinate by
// great-circle distance.
func (ix *CityIndex) Nearest(c Coordinate) City {
	best := ix.cities[0]
	bestDist := haversineKm(c.Lat, c.Lng, best.Lat, best.Lng)

	for _, city := range ix.cities[1:] {
		if d := haversineKm(c.Lat, c.Lng, city.Lat, city.Lng); d < bestDist {
			best = city
			bestDist = d
		}
	}
	return best
}

// UniqueCities samples n coordinates and resolves each to its nearest
// city, deduplicating by case-insensitive name. The returned names keep
// first-seen order.
func UniqueCities(s *Sampler, ix *CityIndex, n int) []string {
	seen := utils.NewStringSet()
	var names []string

	for i := 0; i < n; i++ {
		city := ix.Nearest(s.Next())
		if seen.Add(city.Name) {
			names = append(names, city.Name)
		}
	}
	return names
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLng := (lng2 - lng1) * rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
