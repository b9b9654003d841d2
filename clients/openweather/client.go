package openweather

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

	"weather-atlas/models"
)

// DefaultBaseURL is the OpenWeatherMap current-weather endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

var (
	// ErrCityNotFound is returned when the provider does not know the city.
	ErrCityNotFound = errors.New("openweather: city not found")
	// ErrUnauthorized is returned for a rejected API key.
	ErrUnauthorized = errors.New("openweather: unauthorized")
)

// response mirrors the subset of the OpenWeatherMap JSON body we consume.
type response struct {
	Name  string `json:"name"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Main struct {
		TempMax  float64 `json:"temp_max"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	Dt int64 `json:"dt"`
}

// Client fetches current weather observations from OpenWeatherMap.
// Requests are paced by a client-side rate limiter; there are no retries —
// a failed request means the caller drops that city.
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

// New creates a Client. delay is the minimum interval between requests.
func New(base, key string, delay time.Duration) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("openweather: API key is required")
	}
	if base == "" {
		base = DefaultBaseURL
	}
	if delay <= 0 {
		delay = time.Second
	}
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Every(delay), 1),
	}, nil
}

// CurrentByCity fetches the current observation for the named city in
// metric units.
func (c *Client) CurrentByCity(ctx context.Context, city string) (*models.CityWeatherRecord, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.key)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body response
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("openweather: decode response for %q: %w", city, err)
		}
		return toRecord(&body)

	case http.StatusNotFound:
		return nil, ErrCityNotFound

	case http.StatusUnauthorized:
		return nil, ErrUnauthorized

	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("openweather: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}

// toRecord validates the decoded body and maps it onto a record. A body
// missing the city name or observation time counts as malformed.
func toRecord(body *response) (*models.CityWeatherRecord, error) {
	if body.Name == "" || body.Dt == 0 {
		return nil, fmt.Errorf("openweather: response missing required fields")
	}
	if body.Main.Humidity < 0 || body.Clouds.All < 0 {
		return nil, fmt.Errorf("openweather: negative humidity or cloudiness")
	}
	return &models.CityWeatherRecord{
		City:       body.Name,
		Lat:        body.Coord.Lat,
		Lng:        body.Coord.Lon,
		MaxTemp:    body.Main.TempMax,
		Humidity:   body.Main.Humidity,
		Cloudiness: body.Clouds.All,
		WindSpeed:  body.Wind.Speed,
		Country:    body.Sys.Country,
		Date:       body.Dt,
	}, nil
}
