package telemetry

import (
	"context"
	"strings"
	"testing"

	"github.com/mrops-br/storefront-api/internal/infrastructure/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeterProviderFeedsRegistry(t *testing.T) {
	ctx := context.Background()
	cfg := &config.OTLPConfig{ServiceName: "storefront-api-test", Environment: "test"}

	res, err := newResource(ctx, cfg)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	mp, err := initMeterProvider(ctx, cfg, res, reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	counter, err := mp.Meter("test").Int64Counter("cart.operations")
	require.NoError(t, err)
	counter.Add(ctx, 2)

	families, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "cart_operations") {
			found = true
		}
	}
	assert.True(t, found, "cart.operations not exported to the registry")
}

func TestTracerProviderWithoutExport(t *testing.T) {
	ctx := context.Background()
	cfg := &config.OTLPConfig{ServiceName: "storefront-api-test", Environment: "test"}

	res, err := newResource(ctx, cfg)
	require.NoError(t, err)

	tp, err := initTracerProvider(ctx, cfg, res)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	_, span := tp.Tracer("test").Start(ctx, "op")
	defer span.End()
	assert.True(t, span.SpanContext().IsValid())
}
