package geo

import "math/rand"

// Coordinate is a geographic point.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Sampler generates uniformly distributed coordinates over the globe.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler seeded with the given value.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a coordinate with latitude in [-90,90] and longitude
// in [-180,180].
func (s *Sampler) Next() Coordinate {
	return Coordinate{
		Lat: s.rng.Float64()*180 - 90,
		Lng: s.rng.Float64()*360 - 180,
	}
}
