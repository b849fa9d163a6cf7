package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	CORS      CORSConfig      `yaml:"cors"`
	Cache     CacheConfig     `yaml:"cache"`
	KeepAlive KeepAliveConfig `yaml:"keepAlive"`
	Astronomy AstronomyConfig `yaml:"astronomy"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// CacheConfig controls the optional tithi response cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Addr    string        `yaml:"addr"`
	TTL     time.Duration `yaml:"ttl"`
}

// KeepAliveConfig drives the self-ping used on free-tier hosting.
type KeepAliveConfig struct {
	Enabled     bool          `yaml:"enabled"`
	ExternalURL string        `yaml:"externalUrl"`
	Interval    time.Duration `yaml:"interval"`
}

// AstronomyConfig holds calculation defaults applied when a request omits the
// optional parameters.
type AstronomyConfig struct {
	DefaultTimezone        string  `yaml:"defaultTimezone"`
	DefaultElevationMeters float64 `yaml:"defaultElevationMeters"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Address = ":" + v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("CACHE_ENABLED"); v != "" {
		cfg.Cache.Enabled = isTruthy(v)
	}
	if v := os.Getenv("CACHE_ADDR"); v != "" {
		cfg.Cache.Addr = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = parsed
		}
	}
	// RENDER_EXTERNAL_URL doubles as the keep-alive switch, matching the
	// hosting platform that injects it.
	if v := os.Getenv("RENDER_EXTERNAL_URL"); v != "" {
		cfg.KeepAlive.Enabled = true
		cfg.KeepAlive.ExternalURL = v
	}
	if v := os.Getenv("KEEP_ALIVE_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.KeepAlive.Interval = parsed
		}
	}
	if v := os.Getenv("DEFAULT_TIMEZONE"); v != "" {
		cfg.Astronomy.DefaultTimezone = v
	}
	if v := os.Getenv("DEFAULT_ELEVATION_METERS"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Astronomy.DefaultElevationMeters = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
		},
		CORS: CORSConfig{
			AllowedOrigins: nil,
		},
		Cache: CacheConfig{
			Enabled: false,
			Addr:    "",
			TTL:     time.Hour,
		},
		KeepAlive: KeepAliveConfig{
			Enabled:     false,
			ExternalURL: "http://localhost:8080",
			Interval:    10 * time.Minute,
		},
		Astronomy: AstronomyConfig{
			DefaultTimezone:        "UTC",
			DefaultElevationMeters: 0,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Addr) == "" {
		return errors.New("cache.addr cannot be empty when the cache is enabled")
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl cannot be negative")
	}
	if c.KeepAlive.Enabled {
		if strings.TrimSpace(c.KeepAlive.ExternalURL) == "" {
			return errors.New("keepAlive.externalUrl cannot be empty when keep-alive is enabled")
		}
		if c.KeepAlive.Interval <= 0 {
			return errors.New("keepAlive.interval must be positive")
		}
	}
	if c.Astronomy.DefaultTimezone == "" {
		return errors.New("astronomy.defaultTimezone cannot be empty")
	}
	if _, err := time.LoadLocation(c.Astronomy.DefaultTimezone); err != nil {
		return fmt.Errorf("astronomy.defaultTimezone is invalid: %w", err)
	}
	return nil
}

func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}
