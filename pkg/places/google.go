package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/paulmach/orb"

	"shutterplan/pkg/model"
	"shutterplan/pkg/request"
)

// GoogleProvider fetches POIs from the Google Places Nearby Search API.
type GoogleProvider struct {
	client  *request.Client
	apiKey  string
	baseURL string
	ttl     time.Duration
}

// NewGoogleProvider creates a Google Places provider. baseURL overrides the
// API endpoint for tests; pass "" for the production endpoint.
func NewGoogleProvider(client *request.Client, apiKey, baseURL string, ttl time.Duration) *GoogleProvider {
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	}
	return &GoogleProvider{client: client, apiKey: apiKey, baseURL: baseURL, ttl: ttl}
}

// Name implements Provider.
func (p *GoogleProvider) Name() string { return "Google Places" }

// Fetch implements Provider.
func (p *GoogleProvider) Fetch(ctx context.Context, lat, lon float64, radiusM int) ([]model.POI, error) {
	if p.apiKey == "" {
		return nil, errors.New("no API key configured")
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lon))
	params.Set("radius", fmt.Sprintf("%d", radiusM))
	params.Set("key", p.apiKey)
	u := p.baseURL + "?" + params.Encode()

	body, err := p.client.Get(ctx, u, cacheKey("google", lat, lon, radiusM), p.ttl)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Status  string `json:"status"`
		Results []struct {
			PlaceID  string   `json:"place_id"`
			Name     string   `json:"name"`
			Types    []string `json:"types"`
			Geometry struct {
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
	if resp.Status != "OK" {
		return nil, fmt.Errorf("places status %q", resp.Status)
	}

	pois := make([]model.POI, 0, len(resp.Results))
	for _, place := range resp.Results {
		if len(pois) == MaxResults {
			break
		}
		pois = append(pois, model.POI{
			ID:          place.PlaceID,
			Name:        place.Name,
			Pt:          orb.Point{place.Geometry.Location.Lng, place.Geometry.Location.Lat},
			GoogleTypes: place.Types,
			FromGoogle:  true,
		})
	}
	return pois, nil
}
