package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.True(t, cfg.HTTP.RateLimit.Enabled)
	require.Equal(t, 120, cfg.HTTP.RateLimit.RequestsPerMinute)
	require.False(t, cfg.Cache.Enabled)
	require.Equal(t, time.Hour, cfg.Cache.TTL)
	require.False(t, cfg.KeepAlive.Enabled)
	require.Equal(t, "UTC", cfg.Astronomy.DefaultTimezone)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_RATE_LIMIT_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("DEFAULT_TIMEZONE", "Asia/Kolkata")
	t.Setenv("DEFAULT_ELEVATION_METERS", "216")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.False(t, cfg.HTTP.RateLimit.Enabled)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, "localhost:6379", cfg.Cache.Addr)
	require.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	require.Equal(t, "Asia/Kolkata", cfg.Astronomy.DefaultTimezone)
	require.Equal(t, 216.0, cfg.Astronomy.DefaultElevationMeters)
}

func TestRenderExternalURLEnablesKeepAlive(t *testing.T) {
	t.Setenv("RENDER_EXTERNAL_URL", "https://panchang.onrender.com")
	t.Setenv("KEEP_ALIVE_INTERVAL", "5m")

	cfg, err := Load()
	require.NoError(t, err)

	require.True(t, cfg.KeepAlive.Enabled)
	require.Equal(t, "https://panchang.onrender.com", cfg.KeepAlive.ExternalURL)
	require.Equal(t, 5*time.Minute, cfg.KeepAlive.Interval)
}

func TestValidateRejectsBrokenConfig(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty address", func(c *Config) { c.HTTP.Address = "" }, "http.address"},
		{"zero rpm", func(c *Config) { c.HTTP.RateLimit.RequestsPerMinute = 0 }, "requestsPerMinute"},
		{"cache without addr", func(c *Config) { c.Cache.Enabled = true; c.Cache.Addr = "" }, "cache.addr"},
		{"negative ttl", func(c *Config) { c.Cache.TTL = -time.Second }, "cache.ttl"},
		{"keepalive without url", func(c *Config) { c.KeepAlive.Enabled = true; c.KeepAlive.ExternalURL = " " }, "externalUrl"},
		{"bad timezone", func(c *Config) { c.Astronomy.DefaultTimezone = "Nowhere/Special" }, "defaultTimezone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
