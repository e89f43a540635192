package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mrops-br/storefront-api/internal/app/dto"
	"github.com/mrops-br/storefront-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CartService applies cart operations to the caller's cart. It keeps no state
// of its own; carts live in the CartRepository, keyed by owner id.
type CartService struct {
	carts          domain.CartRepository
	products       domain.ProductRepository
	tracer         trace.Tracer
	logger         *slog.Logger
	cartOperations metric.Int64Counter
}

// NewCartService creates a new cart service
func NewCartService(
	carts domain.CartRepository,
	products domain.ProductRepository,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *CartService {
	cartOperations, _ := meter.Int64Counter(
		"cart.operations",
		metric.WithDescription("Total number of cart operations"),
	)

	return &CartService{
		carts:          carts,
		products:       products,
		tracer:         tracer,
		logger:         logger,
		cartOperations: cartOperations,
	}
}

// GetCart returns the owner's cart.
func (s *CartService) GetCart(ctx context.Context, ownerID string) (*dto.CartResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.GetCart")
	defer span.End()

	snap, err := s.carts.Snapshot(ctx, ownerID)
	if err != nil {
		return nil, s.fail(ctx, span, "read", err)
	}

	span.SetStatus(codes.Ok, "Cart read")
	return dto.ToCartResponse(snap), nil
}

// AddToCart adds one unit of a catalog product. The cart stores the catalog
// record as it is at this moment. Out-of-stock products are refused.
func (s *CartService) AddToCart(ctx context.Context, ownerID, productID string) (*dto.CartResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.AddToCart")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", productID))

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, s.fail(ctx, span, "add", err)
	}
	if !product.InStock {
		return nil, s.fail(ctx, span, "add", domain.ErrProductOutOfStock)
	}

	snapshot := *product
	return s.apply(ctx, span, ownerID, "add", func(c *domain.Cart) {
		c.Add(snapshot)
	})
}

// RemoveFromCart drops the product's line. Unknown products are ignored.
func (s *CartService) RemoveFromCart(ctx context.Context, ownerID, productID string) (*dto.CartResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.RemoveFromCart")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", productID))
	return s.apply(ctx, span, ownerID, "remove", func(c *domain.Cart) {
		c.Remove(productID)
	})
}

// IncreaseQuantity adds one to the product's line, if present.
func (s *CartService) IncreaseQuantity(ctx context.Context, ownerID, productID string) (*dto.CartResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.IncreaseQuantity")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", productID))
	return s.apply(ctx, span, ownerID, "increase", func(c *domain.Cart) {
		c.Increase(productID)
	})
}

// DecreaseQuantity removes one from the product's line; the line goes away
// when it was at one.
func (s *CartService) DecreaseQuantity(ctx context.Context, ownerID, productID string) (*dto.CartResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.DecreaseQuantity")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", productID))
	return s.apply(ctx, span, ownerID, "decrease", func(c *domain.Cart) {
		c.Decrease(productID)
	})
}

// ClearCart empties the owner's cart.
func (s *CartService) ClearCart(ctx context.Context, ownerID string) (*dto.CartResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.ClearCart")
	defer span.End()

	return s.apply(ctx, span, ownerID, "clear", func(c *domain.Cart) {
		c.Clear()
	})
}

func (s *CartService) apply(ctx context.Context, span trace.Span, ownerID, operation string, op func(*domain.Cart)) (*dto.CartResponse, error) {
	snap, err := s.carts.Mutate(ctx, ownerID, func(c *domain.Cart) error {
		op(c)
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, span, operation, err)
	}

	s.record(ctx, operation, "success")
	span.SetAttributes(
		attribute.Int("cart.line_count", snap.Count),
		attribute.Float64("cart.total", snap.Total),
	)
	s.logger.InfoContext(ctx, "Cart updated",
		slog.String("operation", operation),
		slog.Int("line_count", snap.Count),
		slog.Float64("total", snap.Total),
	)

	span.SetStatus(codes.Ok, "Cart updated")
	return dto.ToCartResponse(snap), nil
}

func (s *CartService) fail(ctx context.Context, span trace.Span, operation string, err error) error {
	result := "failure"
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		result = "not_found"
	case errors.Is(err, domain.ErrProductOutOfStock):
		result = "out_of_stock"
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.logger.WarnContext(ctx, "Cart operation failed",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
	s.record(ctx, operation, result)
	return err
}

func (s *CartService) record(ctx context.Context, operation, result string) {
	s.cartOperations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("result", result),
		),
	)
}
