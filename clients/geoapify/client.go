package geoapify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Geoapify Places endpoint.
const DefaultBaseURL = "https://api.geoapify.com/v2/places"

const hotelCategory = "accommodation.hotel"

// ErrNoPlaceFound is returned when the feature list is empty or the
// first feature carries no name.
var ErrNoPlaceFound = errors.New("geoapify: no place found")

type placesResponse struct {
	Features []struct {
		Properties struct {
			Name string `json:"name"`
		} `json:"properties"`
	} `json:"features"`
}

// Client queries the Geoapify Places API for hotels near a coordinate.
type Client struct {
	base    string
	hc      *http.Client
	key     string
	rl      *rate.Limiter
	radiusM int
}

// New creates a Client with the given search radius in meters.
func New(base, key string, radiusM int, delay time.Duration) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("geoapify: API key is required")
	}
	if base == "" {
		base = DefaultBaseURL
	}
	if radiusM <= 0 {
		radiusM = 10000
	}
	if delay <= 0 {
		delay = 200 * time.Millisecond
	}
	return &Client{
		base:    base,
		hc:      &http.Client{Timeout: 20 * time.Second},
		key:     key,
		rl:      rate.NewLimiter(rate.Every(delay), 1),
		radiusM: radiusM,
	}, nil
}

// NearestHotel returns the name of the first hotel inside the circular
// geofence around (lat, lng), biased towards the center.
func (c *Client) NearestHotel(ctx context.Context, lat, lng float64) (string, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("categories", hotelCategory)
	q.Set("filter", fmt.Sprintf("circle:%f,%f,%d", lng, lat, c.radiusM))
	q.Set("bias", fmt.Sprintf("proximity:%f,%f", lng, lat))
	q.Set("limit", "1")
	q.Set("apiKey", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("geoapify: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var body placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("geoapify: decode response: %w", err)
	}

	if len(body.Features) == 0 || body.Features[0].Properties.Name == "" {
		return "", ErrNoPlaceFound
	}
	return body.Features[0].Properties.Name, nil
}
