// SPDX-License-Identifier: MIT

// Package config loads client configuration from the process environment.
package config

import (
	"fmt"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/bingefriend/tvmaze-client-go/internal/telemetry"
	"github.com/bingefriend/tvmaze-client-go/tvmaze"
)

// Environment variable names understood by FromEnv.
const (
	EnvBaseURL           = "TVMAZE_BASE_URL"
	EnvTimeout           = "TVMAZE_TIMEOUT"
	EnvMaxRetries        = "TVMAZE_MAX_RETRIES"
	EnvRetryBackoff      = "TVMAZE_RETRY_BACKOFF"
	EnvMaxBackoff        = "TVMAZE_MAX_BACKOFF"
	EnvRateLimit         = "TVMAZE_RATE_LIMIT"
	EnvRateBurst         = "TVMAZE_RATE_BURST"
	EnvUserAgent         = "TVMAZE_USER_AGENT"
	EnvTracingEnabled    = "TVMAZE_TRACING_ENABLED"
	EnvTracingExporter   = "TVMAZE_TRACING_EXPORTER"
	EnvTracingEndpoint   = "TVMAZE_TRACING_ENDPOINT"
	EnvTracingSampleRate = "TVMAZE_TRACING_SAMPLE_RATE"
)

// Defaults applied when the corresponding variable is unset or invalid.
const (
	DefaultBaseURL           = tvmaze.DefaultBaseURL
	DefaultTimeout           = 30 * time.Second
	DefaultMaxRetries        = 3
	DefaultRetryBackoff      = 500 * time.Millisecond
	DefaultMaxBackoff        = 10 * time.Second
	DefaultRateLimit         = 2.0 // upstream enforces ~20 requests per 10 seconds
	DefaultRateBurst         = 20
	DefaultUserAgent         = "tvmaze-client-go"
	DefaultTracingExporter   = "grpc"
	DefaultTracingEndpoint   = "localhost:4317"
	DefaultTracingSampleRate = 1.0
)

// Config is an immutable snapshot of the client configuration.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	MaxBackoff   time.Duration
	RateLimit    float64
	RateBurst    int
	UserAgent    string

	TracingEnabled    bool
	TracingExporter   string
	TracingEndpoint   string
	TracingSampleRate float64
}

// FromEnv builds a Config from the process environment, applying defaults.
func FromEnv() Config {
	return Config{
		BaseURL:      ParseString(EnvBaseURL, DefaultBaseURL),
		Timeout:      ParseDuration(EnvTimeout, DefaultTimeout),
		MaxRetries:   ParseInt(EnvMaxRetries, DefaultMaxRetries),
		RetryBackoff: ParseDuration(EnvRetryBackoff, DefaultRetryBackoff),
		MaxBackoff:   ParseDuration(EnvMaxBackoff, DefaultMaxBackoff),
		RateLimit:    ParseFloat(EnvRateLimit, DefaultRateLimit),
		RateBurst:    ParseInt(EnvRateBurst, DefaultRateBurst),
		UserAgent:    ParseString(EnvUserAgent, DefaultUserAgent),

		TracingEnabled:    ParseBool(EnvTracingEnabled, false),
		TracingExporter:   ParseString(EnvTracingExporter, DefaultTracingExporter),
		TracingEndpoint:   ParseString(EnvTracingEndpoint, DefaultTracingEndpoint),
		TracingSampleRate: ParseFloat(EnvTracingSampleRate, DefaultTracingSampleRate),
	}
}

// Validate rejects configurations that cannot produce a working client.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%s: invalid URL %q: %w", EnvBaseURL, c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: unsupported scheme %q (want http or https)", EnvBaseURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s: missing host in %q", EnvBaseURL, c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%s: timeout must be positive (got %s)", EnvTimeout, c.Timeout)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%s: retries must be >= 0 (got %d)", EnvMaxRetries, c.MaxRetries)
	}
	if c.RetryBackoff <= 0 {
		return fmt.Errorf("%s: backoff must be positive (got %s)", EnvRetryBackoff, c.RetryBackoff)
	}
	if c.MaxBackoff < c.RetryBackoff {
		return fmt.Errorf("%s: max backoff %s below initial backoff %s", EnvMaxBackoff, c.MaxBackoff, c.RetryBackoff)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("%s: rate limit must be positive (got %g)", EnvRateLimit, c.RateLimit)
	}
	if c.RateBurst <= 0 {
		return fmt.Errorf("%s: rate burst must be positive (got %d)", EnvRateBurst, c.RateBurst)
	}
	if c.TracingEnabled {
		if c.TracingExporter != "grpc" && c.TracingExporter != "http" {
			return fmt.Errorf("%s: unsupported exporter %q (want grpc or http)", EnvTracingExporter, c.TracingExporter)
		}
		if c.TracingEndpoint == "" {
			return fmt.Errorf("%s: endpoint required when tracing is enabled", EnvTracingEndpoint)
		}
		if c.TracingSampleRate < 0 || c.TracingSampleRate > 1 {
			return fmt.Errorf("%s: sample rate must be within [0, 1] (got %g)", EnvTracingSampleRate, c.TracingSampleRate)
		}
	}
	return nil
}

// TelemetryConfig bridges the snapshot to telemetry provider options.
func (c Config) TelemetryConfig(service string) telemetry.Config {
	return telemetry.Config{
		Enabled:      c.TracingEnabled,
		ServiceName:  service,
		ExporterType: c.TracingExporter,
		Endpoint:     c.TracingEndpoint,
		SamplingRate: c.TracingSampleRate,
	}
}

// ClientOptions bridges the snapshot to tvmaze client options.
func (c Config) ClientOptions() tvmaze.Options {
	return tvmaze.Options{
		Timeout:        c.Timeout,
		MaxRetries:     c.MaxRetries,
		Backoff:        c.RetryBackoff,
		MaxBackoff:     c.MaxBackoff,
		RateLimit:      rate.Limit(c.RateLimit),
		RateLimitBurst: c.RateBurst,
		UserAgent:      c.UserAgent,
	}
}
