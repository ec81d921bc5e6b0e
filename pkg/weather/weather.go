// Package weather produces a one-line current-conditions summary for a
// coordinate. OpenWeatherMap is tried first when a key is configured, then
// the keyless Open-Meteo API. Total failure yields an empty string, never an
// error: the summary is advisory content, not a hard dependency.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"shutterplan/pkg/request"
)

// Provider returns a current-conditions summary for a coordinate.
type Provider interface {
	Name() string
	Current(ctx context.Context, lat, lon float64) (string, error)
}

// Service iterates an ordered provider list until one succeeds.
type Service struct {
	providers []Provider
}

// NewService creates a weather service over the given providers.
func NewService(providers ...Provider) *Service {
	return &Service{providers: providers}
}

// Current returns the first provider's summary, falling through on failure.
// Returns "" when every provider fails.
func (s *Service) Current(ctx context.Context, lat, lon float64) string {
	for _, p := range s.providers {
		summary, err := p.Current(ctx, lat, lon)
		if err != nil {
			slog.Warn("Weather provider failed, trying next", "provider", p.Name(), "error", err)
			continue
		}
		return summary
	}
	return ""
}

func coordKey(provider string, lat, lon float64) string {
	return fmt.Sprintf("weather:%s:%.3f,%.3f", provider, lat, lon)
}

// OpenWeatherProvider uses the OpenWeatherMap current weather API.
type OpenWeatherProvider struct {
	client  *request.Client
	apiKey  string
	baseURL string
	ttl     time.Duration
}

// NewOpenWeatherProvider creates an OpenWeatherMap provider. baseURL
// overrides the API endpoint for tests; pass "" for the production endpoint.
func NewOpenWeatherProvider(client *request.Client, apiKey, baseURL string, ttl time.Duration) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5/weather"
	}
	return &OpenWeatherProvider{client: client, apiKey: apiKey, baseURL: baseURL, ttl: ttl}
}

// Name implements Provider.
func (p *OpenWeatherProvider) Name() string { return "OpenWeatherMap" }

// Current implements Provider.
func (p *OpenWeatherProvider) Current(ctx context.Context, lat, lon float64) (string, error) {
	if p.apiKey == "" {
		return "", errors.New("no API key configured")
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("appid", p.apiKey)
	params.Set("units", "metric")
	u := p.baseURL + "?" + params.Encode()

	body, err := p.client.Get(ctx, u, coordKey("owm", lat, lon), p.ttl)
	if err != nil {
		return "", err
	}

	var resp struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	desc := ""
	if len(resp.Weather) > 0 {
		desc = resp.Weather[0].Description
	}
	return fmt.Sprintf("%.1f°C | %s | %d%% humidity | wind %.1fm/s",
		resp.Main.Temp, desc, resp.Main.Humidity, resp.Wind.Speed), nil
}

// OpenMeteoProvider uses the free, keyless Open-Meteo forecast API. Only a
// reduced summary (temperature, wind) is available.
type OpenMeteoProvider struct {
	client  *request.Client
	baseURL string
	ttl     time.Duration
}

// NewOpenMeteoProvider creates an Open-Meteo provider. baseURL overrides the
// API endpoint for tests; pass "" for the production endpoint.
func NewOpenMeteoProvider(client *request.Client, baseURL string, ttl time.Duration) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com/v1/forecast"
	}
	return &OpenMeteoProvider{client: client, baseURL: baseURL, ttl: ttl}
}

// Name implements Provider.
func (p *OpenMeteoProvider) Name() string { return "Open-Meteo" }

// Current implements Provider.
func (p *OpenMeteoProvider) Current(ctx context.Context, lat, lon float64) (string, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lon))
	params.Set("current_weather", "true")
	u := p.baseURL + "?" + params.Encode()

	body, err := p.client.Get(ctx, u, coordKey("meteo", lat, lon), p.ttl)
	if err != nil {
		return "", err
	}

	var resp struct {
		CurrentWeather *struct {
			Temperature float64 `json:"temperature"`
			Windspeed   float64 `json:"windspeed"`
		} `json:"current_weather"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.CurrentWeather == nil {
		return "", errors.New("no current weather in response")
	}
	return fmt.Sprintf("%.1f°C | wind %.1fkm/h",
		resp.CurrentWeather.Temperature, resp.CurrentWeather.Windspeed), nil
}
