// SPDX-License-Identifier: MIT
package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, provider)

	// Noop provider shuts down without error.
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_GRPCExporter(t *testing.T) {
	// The OTLP gRPC exporter dials lazily, so constructing and shutting the
	// provider down needs no running collector.
	provider, err := NewProvider(context.Background(), Config{
		Enabled:      true,
		ServiceName:  "tvmaze-client",
		ExporterType: "grpc",
		Endpoint:     "localhost:4317",
		SamplingRate: 1.0,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, provider.Shutdown(ctx))
}

func TestNewProvider_HTTPExporter(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{
		Enabled:      true,
		ServiceName:  "tvmaze-client",
		ExporterType: "http",
		Endpoint:     "localhost:4318",
		SamplingRate: 0.5, // exercises the ratio-based sampler branch
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, provider.Shutdown(ctx))
}

func TestNewProvider_UnsupportedExporter(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{
		Enabled:      true,
		ServiceName:  "tvmaze-client",
		ExporterType: "carrier-pigeon",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported exporter type")
}

func TestTracer_ReturnsUsableTracer(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Enabled: false})
	require.NoError(t, err)

	tracer := Tracer("tvmaze.client")
	require.NotNil(t, tracer)

	ctx, span := tracer.Start(context.Background(), "test.span")
	require.NotNil(t, ctx)
	span.End()
}
