package geo

import (
	"strings"
	"testing"
)

const citiesFixture = `name,country,lat,lng
Reykjavik,IS,64.1466,-21.9426
Quito,EC,-0.1807,-78.4678
Sydney,AU,-33.8688,151.2093
Nairobi,KE,-1.2921,36.8219
Honolulu,US,21.3069,-157.8583
`

func testIndex(t *testing.T) *CityIndex {
	t.Helper()
	ix, err := ReadCityIndex(strings.NewReader(citiesFixture))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return ix
}

func TestReadCityIndex(t *testing.T) {
	ix := testIndex(t)
	if ix.Size() != 5 {
		t.Errorf("Size: got %d, want 5", ix.Size())
	}
}

func TestReadCityIndexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty file", ""},
		{"header only", "name,country,lat,lng\n"},
		{"too few columns", "name,lat\nX,1\n"},
		{"bad latitude", "name,country,lat,lng\nX,XX,abc,10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCityIndex(strings.NewReader(tt.input)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestNearest(t *testing.T) {
	ix := testIndex(t)

	tests := []struct {
		lat, lng float64
		want     string
	}{
		{64.0, -22.0, "Reykjavik"},
		{-34.0, 151.0, "Sydney"},
		{0.0, -78.0, "Quito"},
		{21.0, -158.0, "Honolulu"},
	}

	for _, tt := range tests {
		got := ix.Nearest(Coordinate{Lat: tt.lat, Lng: tt.lng})
		if got.Name != tt.want {
			t.Errorf("Nearest(%f,%f): got %q, want %q", tt.lat, tt.lng, got.Name, tt.want)
		}
	}
}

func TestUniqueCitiesNoDuplicates(t *testing.T) {
	ix := testIndex(t)
	s := NewSampler(1)

	names := UniqueCities(s, ix, 500)

	if len(names) == 0 {
		t.Fatal("expected at least one city")
	}
	if len(names) > ix.Size() {
		t.Fatalf("got %d unique names from a %d-city index", len(names), ix.Size())
	}

	seen := make(map[string]struct{})
	for _, n := range names {
		key := strings.ToLower(n)
		if _, dup := seen[key]; dup {
			t.Errorf("duplicate city name: %q", n)
		}
		seen[key] = struct{}{}
	}
}
