package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mrops-br/storefront-api/internal/app/dto"
	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCheckout() *dto.CheckoutRequest {
	return &dto.CheckoutRequest{
		Name:    "Asha Rao",
		Phone:   "9876543210",
		Address: "12 MG Road",
		Country: "India",
		State:   "Karnataka",
		City:    "Bengaluru",
	}
}

func TestCheckoutService_Checkout(t *testing.T) {
	carts := newCartRepo()
	cartSvc := NewCartService(carts, newProductRepo(t), testTracer, testMeter, testLogger)
	svc := NewCheckoutService(carts, testTracer, testMeter, testLogger)
	placedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return placedAt }
	ctx := context.Background()

	_, err := cartSvc.AddToCart(ctx, "u1", "bat")
	require.NoError(t, err)
	_, err = cartSvc.AddToCart(ctx, "u1", "bat")
	require.NoError(t, err)
	_, err = cartSvc.AddToCart(ctx, "u1", "ball")
	require.NoError(t, err)

	order, err := svc.Checkout(ctx, "u1", validCheckout())
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 25.0, order.Total)
	assert.Equal(t, "25.00", order.TotalDisplay)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "Bengaluru", order.ShipTo.City)
	assert.Equal(t, placedAt, order.PlacedAt)

	cart, err := cartSvc.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}

func TestCheckoutService_InvalidFormKeepsCart(t *testing.T) {
	carts := newCartRepo()
	cartSvc := NewCartService(carts, newProductRepo(t), testTracer, testMeter, testLogger)
	svc := NewCheckoutService(carts, testTracer, testMeter, testLogger)
	ctx := context.Background()

	_, err := cartSvc.AddToCart(ctx, "u1", "bat")
	require.NoError(t, err)

	req := validCheckout()
	req.Phone = "123"
	req.City = " "

	_, err = svc.Checkout(ctx, "u1", req)
	require.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{
		"phone": "Please enter a valid phone number",
		"city":  "City is required",
	}, verr.Fields)

	cart, err := cartSvc.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 10.0, cart.Total)
}

func TestCheckoutService_EmptyCart(t *testing.T) {
	svc := NewCheckoutService(newCartRepo(), testTracer, testMeter, testLogger)

	_, err := svc.Checkout(context.Background(), "u1", validCheckout())
	assert.ErrorIs(t, err, domain.ErrCartEmpty)
}
