// Package config loads the application configuration from YAML, with API
// credentials resolved from the environment (.env supported via godotenv).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Request   RequestConfig   `yaml:"request"`
	Log       LogConfig       `yaml:"log"`
	DB        DBConfig        `yaml:"db"`
	History   HistoryConfig   `yaml:"history"`
	Providers ProvidersConfig `yaml:"providers"`
	Planner   PlannerConfig   `yaml:"planner"`
}

// RequestConfig holds HTTP request settings.
type RequestConfig struct {
	Timeout   Duration `yaml:"timeout"`
	BaseDelay Duration `yaml:"base_delay"`
	RatePerS  float64  `yaml:"rate_per_s"` // per-provider request pacing
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DBConfig holds the response-cache database settings.
type DBConfig struct {
	Path string `yaml:"path"`
}

// HistoryConfig holds the task history file settings.
type HistoryConfig struct {
	Path string `yaml:"path"`
	Keep int    `yaml:"keep"`
}

// ProvidersConfig holds external provider settings. Keys left empty here are
// resolved from the environment (GOOGLE_MAPS_KEY, OPENWEATHER_KEY).
type ProvidersConfig struct {
	GoogleMapsKey  string   `yaml:"google_maps_key"`
	OpenWeatherKey string   `yaml:"openweather_key"`
	GeocodeTTL     Duration `yaml:"geocode_ttl"`
	PlacesTTL      Duration `yaml:"places_ttl"`
	WeatherTTL     Duration `yaml:"weather_ttl"`
}

// PlannerConfig holds task synthesis settings.
type PlannerConfig struct {
	POIRadiusM int   `yaml:"poi_radius_m"`
	Seed       int64 `yaml:"seed"` // 0 = time-based
}

// Duration wraps time.Duration for YAML unmarshalling ("30s", "1h").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// AsDuration returns the underlying time.Duration.
func (d Duration) AsDuration() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Request: RequestConfig{
			Timeout:   Duration(30 * time.Second),
			BaseDelay: Duration(500 * time.Millisecond),
			RatePerS:  5,
		},
		Log:     LogConfig{Level: "INFO"},
		DB:      DBConfig{Path: "data/shutterplan.db"},
		History: HistoryConfig{Path: "data/task_history.json", Keep: 7},
		Providers: ProvidersConfig{
			GeocodeTTL: Duration(24 * time.Hour),
			PlacesTTL:  Duration(time.Hour),
			WeatherTTL: Duration(15 * time.Minute),
		},
		Planner: PlannerConfig{POIRadiusM: 800},
	}
}

// Load reads the config file, applies defaults for anything unset, and pulls
// API keys from the environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	if cfg.Providers.GoogleMapsKey == "" {
		cfg.Providers.GoogleMapsKey = os.Getenv("GOOGLE_MAPS_KEY")
	}
	if cfg.Providers.OpenWeatherKey == "" {
		cfg.Providers.OpenWeatherKey = os.Getenv("OPENWEATHER_KEY")
	}
	if cfg.History.Keep <= 0 {
		cfg.History.Keep = 7
	}

	return cfg, nil
}

// GenerateDefault writes the default config to path.
func GenerateDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
