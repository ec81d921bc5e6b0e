package main

import (
	"fmt"
	"log/slog"

	"shutterplan/pkg/cache"
	"shutterplan/pkg/config"
	"shutterplan/pkg/db"
	"shutterplan/pkg/geocode"
	"shutterplan/pkg/history"
	"shutterplan/pkg/places"
	"shutterplan/pkg/planner"
	"shutterplan/pkg/request"
	"shutterplan/pkg/suntimes"
	"shutterplan/pkg/tracker"
	"shutterplan/pkg/weather"
)

// stack bundles the wired provider layer behind the planner.
type stack struct {
	db       *db.DB
	tracker  *tracker.Tracker
	resolver *geocode.Resolver
	finder   *places.Finder
	weather  *weather.Service
	sun      *suntimes.Client
	history  *history.Store
}

// buildStack opens the cache database and wires the provider chains from
// config. Callers must Close it.
func buildStack(cfg *config.Config) (*stack, error) {
	database, err := db.Init(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}
	if err := database.PruneCache(); err != nil {
		slog.Warn("cache prune failed", "error", err)
	}

	trk := tracker.New()
	client := request.New(
		cache.NewSQLiteCache(database),
		trk,
		cfg.Request.Timeout.AsDuration(),
		cfg.Request.BaseDelay.AsDuration(),
		cfg.Request.RatePerS,
	)

	p := cfg.Providers

	var geocoders []geocode.Provider
	if p.GoogleMapsKey != "" {
		geocoders = append(geocoders, geocode.NewGoogleProvider(client, p.GoogleMapsKey, "", p.GeocodeTTL.AsDuration()))
	}
	geocoders = append(geocoders, geocode.NewNominatimProvider(client, "", p.GeocodeTTL.AsDuration()))

	var poiProviders []places.Provider
	if p.GoogleMapsKey != "" {
		poiProviders = append(poiProviders, places.NewGoogleProvider(client, p.GoogleMapsKey, "", p.PlacesTTL.AsDuration()))
	}
	poiProviders = append(poiProviders, places.NewOverpassProvider(client, "", p.PlacesTTL.AsDuration()))

	var weatherProviders []weather.Provider
	if p.OpenWeatherKey != "" {
		weatherProviders = append(weatherProviders, weather.NewOpenWeatherProvider(client, p.OpenWeatherKey, "", p.WeatherTTL.AsDuration()))
	}
	weatherProviders = append(weatherProviders, weather.NewOpenMeteoProvider(client, "", p.WeatherTTL.AsDuration()))

	return &stack{
		db:       database,
		tracker:  trk,
		resolver: geocode.NewResolver(geocoders...),
		finder:   places.NewFinder(poiProviders...),
		weather:  weather.NewService(weatherProviders...),
		sun:      suntimes.New(client, "", p.WeatherTTL.AsDuration()),
		history:  history.New(cfg.History.Path, cfg.History.Keep),
	}, nil
}

func (s *stack) planner(cfg *config.Config) *planner.Planner {
	return planner.New(planner.Options{
		Resolver: s.resolver,
		Finder:   s.finder,
		Weather:  s.weather,
		Sun:      s.sun,
		History:  s.history,
		RadiusM:  cfg.Planner.POIRadiusM,
		Seed:     cfg.Planner.Seed,
	})
}

func (s *stack) close() {
	if err := s.db.Close(); err != nil {
		slog.Warn("closing cache db", "error", err)
	}
}

// logUsage reports per-provider cache and API counters at debug level.
func (s *stack) logUsage() {
	for provider, stats := range s.tracker.Snapshot() {
		slog.Debug("provider usage", "provider", provider,
			"cache_hits", stats.CacheHits, "cache_misses", stats.CacheMisses,
			"api_success", stats.APISuccess, "api_failures", stats.APIFailures)
	}
}
