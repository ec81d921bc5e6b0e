// Package geocode resolves free-text locations to coordinates via an ordered
// provider chain: Google Geocoding first (when a key is configured), then
// OpenStreetMap Nominatim. Results are cached for a long TTL since geocoding
// output for a fixed query is stable.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"shutterplan/pkg/geo"
	"shutterplan/pkg/model"
	"shutterplan/pkg/request"
)

// ErrNotFound is returned when no provider can resolve the query.
var ErrNotFound = errors.New("location not found")

// Provider resolves a location query to a Location.
type Provider interface {
	Name() string
	Resolve(ctx context.Context, query string) (*model.Location, error)
}

// Resolver iterates an ordered provider list until one succeeds.
type Resolver struct {
	providers []Provider
}

// NewResolver creates a resolver over the given providers, tried in order.
func NewResolver(providers ...Provider) *Resolver {
	return &Resolver{providers: providers}
}

// Resolve tries each provider in order. Provider failures are non-fatal
// advisories; ErrNotFound is returned only when every provider fails.
func (r *Resolver) Resolve(ctx context.Context, query string) (*model.Location, error) {
	for _, p := range r.providers {
		loc, err := p.Resolve(ctx, query)
		if err != nil {
			slog.Warn("Geocoding provider failed, trying next", "provider", p.Name(), "query", query, "error", err)
			continue
		}
		if !geo.ValidCoords(loc.Lat, loc.Lon) {
			slog.Warn("Geocoding provider returned invalid coordinates", "provider", p.Name(), "lat", loc.Lat, "lon", loc.Lon)
			continue
		}
		return loc, nil
	}
	return nil, ErrNotFound
}

// GoogleProvider resolves via the Google Maps Geocoding API.
type GoogleProvider struct {
	client  *request.Client
	apiKey  string
	baseURL string
	ttl     time.Duration
}

// NewGoogleProvider creates a Google geocoding provider. baseURL overrides
// the API endpoint for tests; pass "" for the production endpoint.
func NewGoogleProvider(client *request.Client, apiKey, baseURL string, ttl time.Duration) *GoogleProvider {
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com/maps/api/geocode/json"
	}
	return &GoogleProvider{client: client, apiKey: apiKey, baseURL: baseURL, ttl: ttl}
}

// Name implements Provider.
func (p *GoogleProvider) Name() string { return "Google Maps" }

// Resolve implements Provider.
func (p *GoogleProvider) Resolve(ctx context.Context, query string) (*model.Location, error) {
	if p.apiKey == "" {
		return nil, errors.New("no API key configured")
	}

	params := url.Values{}
	params.Set("address", query)
	params.Set("key", p.apiKey)
	u := p.baseURL + "?" + params.Encode()

	body, err := p.client.Get(ctx, u, "geocode:google:"+query, p.ttl)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Status  string `json:"status"`
		Results []struct {
			FormattedAddress string `json:"formatted_address"`
			Geometry         struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.Status != "OK" || len(resp.Results) == 0 {
		return nil, fmt.Errorf("geocoding status %q with %d results", resp.Status, len(resp.Results))
	}

	first := resp.Results[0]
	return &model.Location{
		Lat:         first.Geometry.Location.Lat,
		Lon:         first.Geometry.Location.Lng,
		DisplayName: first.FormattedAddress,
		Source:      p.Name(),
	}, nil
}

// NominatimProvider resolves via OpenStreetMap Nominatim (keyless).
type NominatimProvider struct {
	client  *request.Client
	baseURL string
	ttl     time.Duration
}

// NewNominatimProvider creates a Nominatim provider. baseURL overrides the
// API endpoint for tests; pass "" for the production endpoint.
func NewNominatimProvider(client *request.Client, baseURL string, ttl time.Duration) *NominatimProvider {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org/search"
	}
	return &NominatimProvider{client: client, baseURL: baseURL, ttl: ttl}
}

// Name implements Provider.
func (p *NominatimProvider) Name() string { return "OpenStreetMap" }

// Resolve implements Provider.
func (p *NominatimProvider) Resolve(ctx context.Context, query string) (*model.Location, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	u := p.baseURL + "?" + params.Encode()

	body, err := p.client.Get(ctx, u, "geocode:osm:"+query, p.ttl)
	if err != nil {
		return nil, err
	}

	var results []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(results) == 0 {
		return nil, errors.New("empty result set")
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("bad latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("bad longitude %q: %w", results[0].Lon, err)
	}

	return &model.Location{
		Lat:         lat,
		Lon:         lon,
		DisplayName: results[0].DisplayName,
		Source:      p.Name(),
	}, nil
}
