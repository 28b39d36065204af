// SPDX-License-Identifier: MIT
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/bingefriend/tvmaze-client-go/internal/telemetry"
	"github.com/bingefriend/tvmaze-client-go/tvmaze"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultMaxRetries, cfg.MaxRetries)
	assert.Equal(t, DefaultRetryBackoff, cfg.RetryBackoff)
	assert.Equal(t, DefaultMaxBackoff, cfg.MaxBackoff)
	assert.Equal(t, DefaultRateLimit, cfg.RateLimit)
	assert.Equal(t, DefaultRateBurst, cfg.RateBurst)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, DefaultTracingExporter, cfg.TracingExporter)
	assert.Equal(t, DefaultTracingEndpoint, cfg.TracingEndpoint)
	assert.Equal(t, DefaultTracingSampleRate, cfg.TracingSampleRate)
	require.NoError(t, cfg.Validate())
}

func TestDefaultBaseURL_MatchesClient(t *testing.T) {
	assert.Equal(t, tvmaze.DefaultBaseURL, DefaultBaseURL)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://tvmaze.internal:8080")
	t.Setenv(EnvTimeout, "5s")
	t.Setenv(EnvMaxRetries, "1")
	t.Setenv(EnvRetryBackoff, "100ms")
	t.Setenv(EnvMaxBackoff, "2s")
	t.Setenv(EnvRateLimit, "0.5")
	t.Setenv(EnvRateBurst, "5")
	t.Setenv(EnvUserAgent, "show-sync/2.1")
	t.Setenv(EnvTracingEnabled, "true")
	t.Setenv(EnvTracingExporter, "http")
	t.Setenv(EnvTracingEndpoint, "collector:4318")
	t.Setenv(EnvTracingSampleRate, "0.25")

	cfg := FromEnv()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://tvmaze.internal:8080", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, cfg.RetryBackoff)
	assert.Equal(t, 2*time.Second, cfg.MaxBackoff)
	assert.Equal(t, 0.5, cfg.RateLimit)
	assert.Equal(t, 5, cfg.RateBurst)
	assert.Equal(t, "show-sync/2.1", cfg.UserAgent)
	assert.True(t, cfg.TracingEnabled)
	assert.Equal(t, "http", cfg.TracingExporter)
	assert.Equal(t, "collector:4318", cfg.TracingEndpoint)
	assert.Equal(t, 0.25, cfg.TracingSampleRate)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		cfg := FromEnv()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "bad scheme",
			mutate:  func(c *Config) { c.BaseURL = "ftp://api.tvmaze.com" },
			wantErr: "unsupported scheme",
		},
		{
			name:    "missing host",
			mutate:  func(c *Config) { c.BaseURL = "https://" },
			wantErr: "missing host",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: "timeout must be positive",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.MaxRetries = -1 },
			wantErr: "retries must be >= 0",
		},
		{
			name:    "zero backoff",
			mutate:  func(c *Config) { c.RetryBackoff = 0 },
			wantErr: "backoff must be positive",
		},
		{
			name:    "max backoff below initial",
			mutate:  func(c *Config) { c.MaxBackoff = c.RetryBackoff / 2 },
			wantErr: "below initial backoff",
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.RateLimit = 0 },
			wantErr: "rate limit must be positive",
		},
		{
			name:    "zero burst",
			mutate:  func(c *Config) { c.RateBurst = 0 },
			wantErr: "rate burst must be positive",
		},
		{
			name: "bad tracing exporter",
			mutate: func(c *Config) {
				c.TracingEnabled = true
				c.TracingExporter = "stdout"
			},
			wantErr: "unsupported exporter",
		},
		{
			name: "missing tracing endpoint",
			mutate: func(c *Config) {
				c.TracingEnabled = true
				c.TracingEndpoint = ""
			},
			wantErr: "endpoint required",
		},
		{
			name: "sample rate out of range",
			mutate: func(c *Config) {
				c.TracingEnabled = true
				c.TracingSampleRate = 1.5
			},
			wantErr: "sample rate must be within",
		},
		{
			name: "tracing disabled skips tracing checks",
			mutate: func(c *Config) {
				c.TracingEnabled = false
				c.TracingExporter = "stdout"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ClientOptions(t *testing.T) {
	cfg := Config{
		BaseURL:      DefaultBaseURL,
		Timeout:      5 * time.Second,
		MaxRetries:   2,
		RetryBackoff: 100 * time.Millisecond,
		MaxBackoff:   time.Second,
		RateLimit:    1.5,
		RateBurst:    10,
		UserAgent:    "show-sync/2.1",
	}

	opts := cfg.ClientOptions()
	assert.Equal(t, 5*time.Second, opts.Timeout)
	assert.Equal(t, 2, opts.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, opts.Backoff)
	assert.Equal(t, time.Second, opts.MaxBackoff)
	assert.Equal(t, rate.Limit(1.5), opts.RateLimit)
	assert.Equal(t, 10, opts.RateLimitBurst)
	assert.Equal(t, "show-sync/2.1", opts.UserAgent)
}

func TestConfig_TelemetryConfig(t *testing.T) {
	cfg := Config{
		TracingEnabled:    true,
		TracingExporter:   "http",
		TracingEndpoint:   "collector:4318",
		TracingSampleRate: 0.5,
	}

	tc := cfg.TelemetryConfig("tvmazectl")
	assert.Equal(t, telemetry.Config{
		Enabled:      true,
		ServiceName:  "tvmazectl",
		ExporterType: "http",
		Endpoint:     "collector:4318",
		SamplingRate: 0.5,
	}, tc)
}
