package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mrops-br/storefront-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type cartEntry struct {
	mu   sync.Mutex
	cart *domain.Cart
}

// CartRepository keeps one in-memory cart per owner. Each cart has its own
// lock, so mutations of a single cart are applied one at a time while
// different owners never wait on each other.
type CartRepository struct {
	mu     sync.RWMutex
	carts  map[string]*cartEntry
	tracer trace.Tracer
	logger *slog.Logger
}

// NewCartRepository creates a new in-memory cart repository
func NewCartRepository(tracer trace.Tracer, logger *slog.Logger) *CartRepository {
	return &CartRepository{
		carts:  make(map[string]*cartEntry),
		tracer: tracer,
		logger: logger,
	}
}

// Mutate runs fn against the owner's cart while holding that cart's lock and
// returns the resulting snapshot. When fn fails, its error is returned with an
// empty snapshot.
func (r *CartRepository) Mutate(ctx context.Context, ownerID string, fn func(*domain.Cart) error) (domain.CartSnapshot, error) {
	ctx, span := r.tracer.Start(ctx, "CartRepository.Mutate")
	defer span.End()

	span.SetAttributes(attribute.String("cart.owner_id", ownerID))

	entry := r.entry(ownerID)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := fn(entry.cart); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Cart mutation rejected")
		return domain.CartSnapshot{}, err
	}

	snap := entry.cart.Snapshot()
	span.SetAttributes(
		attribute.Int("cart.line_count", snap.Count),
		attribute.Float64("cart.total", snap.Total),
	)
	r.logger.DebugContext(ctx, "Cart mutated in repository",
		slog.String("owner_id", ownerID),
		slog.Int("line_count", snap.Count),
	)

	span.SetStatus(codes.Ok, "Cart mutated")
	return snap, nil
}

// Snapshot returns the owner's cart as it is now. Owners that never touched
// their cart get an empty snapshot.
func (r *CartRepository) Snapshot(ctx context.Context, ownerID string) (domain.CartSnapshot, error) {
	_, span := r.tracer.Start(ctx, "CartRepository.Snapshot")
	defer span.End()

	span.SetAttributes(attribute.String("cart.owner_id", ownerID))

	r.mu.RLock()
	entry, ok := r.carts[ownerID]
	r.mu.RUnlock()

	if !ok {
		span.SetStatus(codes.Ok, "Empty cart")
		return domain.NewCart().Snapshot(), nil
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	snap := entry.cart.Snapshot()
	span.SetAttributes(attribute.Int("cart.line_count", snap.Count))
	span.SetStatus(codes.Ok, "Cart read")
	return snap, nil
}

func (r *CartRepository) entry(ownerID string) *cartEntry {
	r.mu.RLock()
	entry, ok := r.carts[ownerID]
	r.mu.RUnlock()
	if ok {
		return entry
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.carts[ownerID]; ok {
		return entry
	}
	entry = &cartEntry{cart: domain.NewCart()}
	r.carts[ownerID] = entry
	return entry
}
