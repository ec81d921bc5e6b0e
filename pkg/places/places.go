// Package places fetches photography-relevant points of interest near a
// coordinate. Google Places is tried first (when a key is configured), then
// an Overpass query over OpenStreetMap data. Results are normalized into
// model.POI, capped at 40, and cached for about an hour keyed by the H3 cell
// of the origin plus the radius, so repeat requests from roughly the same
// spot share an entry.
package places

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/uber/h3-go/v4"

	"shutterplan/pkg/model"
)

// MaxResults caps one acquisition batch.
const MaxResults = 40

// cacheKeyResolution is the H3 resolution for cache keys (~460 m hexagons,
// comparable to the default 800 m search radius).
const cacheKeyResolution = 8

// Provider fetches candidate POIs around a coordinate.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, lat, lon float64, radiusM int) ([]model.POI, error)
}

// Finder iterates an ordered provider list until one returns results.
type Finder struct {
	providers []Provider
}

// NewFinder creates a finder over the given providers, tried in order.
func NewFinder(providers ...Provider) *Finder {
	return &Finder{providers: providers}
}

// Fetch tries each provider in order and returns the first non-empty batch,
// deduplicated by ID and capped at MaxResults. Total failure yields an empty
// list, never an error: POI enrichment is best-effort.
func (f *Finder) Fetch(ctx context.Context, lat, lon float64, radiusM int) []model.POI {
	for _, p := range f.providers {
		pois, err := p.Fetch(ctx, lat, lon, radiusM)
		if err != nil {
			slog.Warn("POI provider failed, trying next", "provider", p.Name(), "error", err)
			continue
		}
		if len(pois) == 0 {
			slog.Debug("POI provider returned no results", "provider", p.Name())
			continue
		}
		return capResults(dedup(pois))
	}
	return nil
}

func dedup(pois []model.POI) []model.POI {
	seen := make(map[string]bool, len(pois))
	out := pois[:0]
	for _, p := range pois {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}

func capResults(pois []model.POI) []model.POI {
	if len(pois) > MaxResults {
		return pois[:MaxResults]
	}
	return pois
}

// cacheKey builds the shared cache key for a search origin and radius.
func cacheKey(provider string, lat, lon float64, radiusM int) string {
	cell, err := h3.LatLngToCell(h3.NewLatLng(lat, lon), cacheKeyResolution)
	if err != nil {
		// Degenerate coordinates; fall back to a raw coordinate key.
		return fmt.Sprintf("pois:%s:%.4f,%.4f:%d", provider, lat, lon, radiusM)
	}
	return fmt.Sprintf("pois:%s:%s:%d", provider, cell.String(), radiusM)
}
