package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/mrops-br/storefront-api/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

var (
	testTracer = tracenoop.NewTracerProvider().Tracer("test")
	testMeter  = metricnoop.NewMeterProvider().Meter("test")
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var (
	bat   = domain.Product{ID: "bat", Name: "Cricket Bat", Price: 10, InStock: true}
	ball  = domain.Product{ID: "ball", Name: "Ball", Price: 5, InStock: true}
	glove = domain.Product{ID: "glove", Name: "Glove", Price: 7, InStock: false}
)

func newProductRepo(t *testing.T) *memory.ProductRepository {
	t.Helper()
	repo := memory.NewProductRepository(testTracer, testLogger)
	require.NoError(t, repo.Seed(context.Background(), []domain.Product{bat, ball, glove}))
	return repo
}

func newCartRepo() *memory.CartRepository {
	return memory.NewCartRepository(testTracer, testLogger)
}
