package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProductOutOfStock = errors.New("product is out of stock")
	ErrCartEmpty         = errors.New("cart is empty")
)

// Order is the confirmation produced by a successful checkout. It holds the
// lines and total the customer confirmed; the cart is cleared afterwards.
type Order struct {
	ID       string
	OwnerID  string
	Items    []LineItem
	Total    float64
	Address  Address
	PlacedAt time.Time
}

// PlaceOrder turns the current contents of cart into an Order and clears the
// cart. It fails with ErrCartEmpty, leaving the cart untouched, when there is
// nothing to confirm.
func PlaceOrder(ownerID string, cart *Cart, address Address, now time.Time) (*Order, error) {
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	order := &Order{
		ID:       uuid.New().String(),
		OwnerID:  ownerID,
		Items:    cart.Items(),
		Total:    cart.Total(),
		Address:  address,
		PlacedAt: now,
	}
	cart.Clear()
	return order, nil
}
