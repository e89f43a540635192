package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mrops-br/storefront-api/internal/app/dto"
	"github.com/mrops-br/storefront-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CheckoutService confirms orders from the caller's cart.
type CheckoutService struct {
	carts       domain.CartRepository
	tracer      trace.Tracer
	logger      *slog.Logger
	now         func() time.Time
	checkouts   metric.Int64Counter
	orderTotals metric.Float64Histogram
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	carts domain.CartRepository,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *CheckoutService {
	checkouts, _ := meter.Int64Counter(
		"checkout.attempts",
		metric.WithDescription("Total number of checkout attempts"),
	)

	orderTotals, _ := meter.Float64Histogram(
		"checkout.order.total",
		metric.WithDescription("Total amount of confirmed orders"),
	)

	return &CheckoutService{
		carts:       carts,
		tracer:      tracer,
		logger:      logger,
		now:         time.Now,
		checkouts:   checkouts,
		orderTotals: orderTotals,
	}
}

// Checkout validates the shipping form, then captures the cart's lines and
// total into an order and clears the cart in a single cart transition. A
// rejected form or an empty cart leaves the cart as it was.
func (s *CheckoutService) Checkout(ctx context.Context, ownerID string, req *dto.CheckoutRequest) (*dto.OrderResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.Checkout")
	defer span.End()

	address := req.ToAddress()
	if err := address.Validate(); err != nil {
		return nil, s.fail(ctx, span, "invalid", err)
	}

	var order *domain.Order
	_, err := s.carts.Mutate(ctx, ownerID, func(c *domain.Cart) error {
		var err error
		order, err = domain.PlaceOrder(ownerID, c, address, s.now().UTC())
		return err
	})
	if err != nil {
		result := "failure"
		if errors.Is(err, domain.ErrCartEmpty) {
			result = "empty_cart"
		}
		return nil, s.fail(ctx, span, result, err)
	}

	s.checkouts.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "success")))
	s.orderTotals.Record(ctx, order.Total)

	span.SetAttributes(
		attribute.String("order.id", order.ID),
		attribute.Int("order.line_count", len(order.Items)),
		attribute.Float64("order.total", order.Total),
	)
	s.logger.InfoContext(ctx, "Order placed",
		slog.String("order_id", order.ID),
		slog.Int("line_count", len(order.Items)),
		slog.Float64("total", order.Total),
	)

	span.SetStatus(codes.Ok, "Order placed")
	return dto.ToOrderResponse(order), nil
}

func (s *CheckoutService) fail(ctx context.Context, span trace.Span, result string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.logger.WarnContext(ctx, "Checkout rejected",
		slog.String("result", result),
		slog.String("error", err.Error()),
	)
	s.checkouts.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	return err
}
