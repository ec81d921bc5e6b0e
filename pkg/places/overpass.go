package places

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/paulmach/orb"

	"shutterplan/pkg/model"
	"shutterplan/pkg/request"
)

// OverpassProvider fetches POIs from the Overpass API (OpenStreetMap data),
// restricted to photography-relevant tag categories. Both node and way
// geometries are queried; ways are reduced to their representative center.
type OverpassProvider struct {
	client  *request.Client
	baseURL string
	ttl     time.Duration
}

// NewOverpassProvider creates an Overpass provider. baseURL overrides the API
// endpoint for tests; pass "" for the production endpoint.
func NewOverpassProvider(client *request.Client, baseURL string, ttl time.Duration) *OverpassProvider {
	if baseURL == "" {
		baseURL = "https://overpass-api.de/api/interpreter"
	}
	return &OverpassProvider{client: client, baseURL: baseURL, ttl: ttl}
}

// Name implements Provider.
func (p *OverpassProvider) Name() string { return "Overpass" }

func overpassQuery(lat, lon float64, radiusM int) string {
	around := fmt.Sprintf("(around:%d,%f,%f)", radiusM, lat, lon)
	return fmt.Sprintf(`[out:json][timeout:25];
(
  node%[1]s["tourism"~"attraction|viewpoint|museum|artwork"];
  node%[1]s["amenity"~"marketplace|cafe|bar|restaurant|place_of_worship|theatre|library"];
  node%[1]s["leisure"~"park|garden|marina"];
  node%[1]s["shop"~"mall|department_store|supermarket"];
  node%[1]s["natural"~"beach|cliff|coastline|wetland"];
  node%[1]s["man_made"~"bridge|pier|lighthouse"];
  way%[1]s["tourism"~"attraction|viewpoint|museum|artwork"];
  way%[1]s["leisure"~"park|garden|marina"];
  way%[1]s["natural"~"beach|cliff|coastline|wetland"];
  way%[1]s["man_made"~"bridge|pier|lighthouse"];
);
out center 60;`, around)
}

// Fetch implements Provider.
func (p *OverpassProvider) Fetch(ctx context.Context, lat, lon float64, radiusM int) ([]model.POI, error) {
	query := overpassQuery(lat, lon, radiusM)

	body, err := p.client.Post(ctx, p.baseURL, []byte(query), "text/plain",
		cacheKey("overpass", lat, lon, radiusM), p.ttl)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Elements []struct {
			Type   string            `json:"type"`
			ID     int64             `json:"id"`
			Lat    float64           `json:"lat"`
			Lon    float64           `json:"lon"`
			Center *struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"center"`
			Tags map[string]string `json:"tags"`
		} `json:"elements"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	pois := make([]model.POI, 0, len(resp.Elements))
	for _, e := range resp.Elements {
		eLat, eLon := e.Lat, e.Lon
		if eLat == 0 && eLon == 0 && e.Center != nil {
			eLat, eLon = e.Center.Lat, e.Center.Lon
		}
		// Entries without resolvable coordinates are dropped.
		if eLat == 0 && eLon == 0 {
			continue
		}

		name := e.Tags["name"]
		if name == "" {
			name = e.Tags["ref"]
		}
		pois = append(pois, model.POI{
			ID:   fmt.Sprintf("%s/%d", e.Type, e.ID),
			Name: name,
			Pt:   orb.Point{eLon, eLat},
			Tags: e.Tags,
		})
	}

	// Named entries first; stable so equal-rank entries keep provider order.
	sort.SliceStable(pois, func(i, j int) bool {
		iNamed := pois[i].Name != ""
		jNamed := pois[j].Name != ""
		if iNamed != jNamed {
			return iNamed
		}
		return false
	})

	if len(pois) > MaxResults {
		pois = pois[:MaxResults]
	}
	return pois, nil
}
