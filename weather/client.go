// Copyright (c) 2026 Phil Davis <phildavis17@gmail.com>.
// SPDX-License-Identifier: MIT

package weather

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/phildavis17/weatherpls/internal/config"
	"github.com/phildavis17/weatherpls/jsoncache"
)

// Defaults used when weatherpls.yaml does not say otherwise.
const (
	DefaultLat   = 40.8363
	DefaultLong  = -73.9358
	DefaultUnits = "imperial"
)

const (
	weatherBaseURL = "https://api.openweathermap.org/data/2.5/onecall"
	geocodeBaseURL = "https://nominatim.openstreetmap.org/reverse"

	// Weather moves; places don't. Config keys cache.weather_ttl and
	// cache.geocode_ttl override these, in minutes.
	defaultWeatherTTLMinutes = 10
	defaultGeocodeTTLMinutes = 60 * 24 * 30
)

// Conditions is the current-weather slice of a one-call response.
type Conditions struct {
	Description string
	Temp        float64
	FeelsLike   float64
	Humidity    int64
	WindSpeed   float64
	WindDeg     float64
}

// Place is the result of a reverse geocode lookup.
type Place struct {
	Name     string
	Category string
}

// Client queries the weather and geocoding APIs through persistent caches,
// one cache file per API. Not safe for concurrent use; the underlying caches
// assume at most one live session per backing file.
type Client struct {
	apiKey     string
	units      string
	httpc      *http.Client
	weatherURL string
	geocodeURL string
	cacheDir   string

	fetchWeather jsoncache.Func[string]
	fetchPlace   jsoncache.Func[string]
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient swaps the HTTP client used for API calls.
func WithHTTPClient(httpc *http.Client) ClientOption {
	return func(c *Client) { c.httpc = httpc }
}

// WithUnits sets the unit system: imperial, metric, or standard.
func WithUnits(units string) ClientOption {
	return func(c *Client) { c.units = units }
}

// WithBaseURLs points the client at alternate API endpoints.
func WithBaseURLs(weatherURL, geocodeURL string) ClientOption {
	return func(c *Client) {
		c.weatherURL = weatherURL
		c.geocodeURL = geocodeURL
	}
}

// WithCacheDir places the cache files in dir instead of the default
// location.
func WithCacheDir(dir string) ClientOption {
	return func(c *Client) { c.cacheDir = dir }
}

// NewClient builds a client for the given OpenWeatherMap API key.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		units:      defaultUnits(),
		httpc:      http.DefaultClient,
		weatherURL: weatherBaseURL,
		geocodeURL: geocodeBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	weatherOpts := []jsoncache.Option{jsoncache.MaxAge(ttlFromConfig("cache.weather_ttl", defaultWeatherTTLMinutes))}
	geocodeOpts := []jsoncache.Option{jsoncache.MaxAge(ttlFromConfig("cache.geocode_ttl", defaultGeocodeTTLMinutes))}
	if c.cacheDir != "" {
		weatherOpts = append(weatherOpts, jsoncache.CacheDir(c.cacheDir))
		geocodeOpts = append(geocodeOpts, jsoncache.CacheDir(c.cacheDir))
	}

	c.fetchWeather = jsoncache.Cached("weather_by_coord", func(args ...any) (string, error) {
		lat, long, units := args[0].(float64), args[1].(float64), args[2].(string)
		url := fmt.Sprintf("%s?lat=%v&lon=%v&appid=%s&units=%s", c.weatherURL, lat, long, c.apiKey, units)
		return c.get(url)
	}, weatherOpts...)

	c.fetchPlace = jsoncache.Cached("reverse_geocode", func(args ...any) (string, error) {
		lat, long := args[0].(float64), args[1].(float64)
		url := fmt.Sprintf("%s?lat=%v&lon=%v&zoom=10&format=jsonv2", c.geocodeURL, lat, long)
		return c.get(url)
	}, geocodeOpts...)

	return c
}

// Current returns the current conditions at the coordinates.
func (c *Client) Current(lat, long float64) (Conditions, error) {
	body, err := c.fetchWeather(lat, long, c.units)
	if err != nil {
		return Conditions{}, err
	}
	cur := gjson.Get(body, "current")
	if !cur.Exists() {
		return Conditions{}, fmt.Errorf("weather response has no current block")
	}
	return Conditions{
		Description: cur.Get("weather.0.description").String(),
		Temp:        cur.Get("temp").Float(),
		FeelsLike:   cur.Get("feels_like").Float(),
		Humidity:    cur.Get("humidity").Int(),
		WindSpeed:   cur.Get("wind_speed").Float(),
		WindDeg:     cur.Get("wind_deg").Float(),
	}, nil
}

func (c *Client) get(url string) (string, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "weatherpls")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request to %s failed: %s", url, resp.Status)
	}

	return doc.String(), nil
}

// DefaultLocation returns the configured home coordinates.
func DefaultLocation() (lat, long float64) {
	lat, _ = config.GetFloat("location.lat", DefaultLat)
	long, _ = config.GetFloat("location.long", DefaultLong)
	return lat, long
}

func defaultUnits() string {
	units, _ := config.GetString("units", DefaultUnits)
	return units
}

func ttlFromConfig(key string, defaultMinutes int) time.Duration {
	minutes, _ := config.GetInt(key, defaultMinutes)
	return time.Duration(minutes) * time.Minute
}
