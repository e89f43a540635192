package domain

import (
	"context"
	"errors"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("no account found with this email")
)

// ProductRepository defines the contract for product storage
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	FindAll(ctx context.Context) ([]*Product, error)
	Search(ctx context.Context, query string) ([]*Product, error)
}

// CartRepository owns one Cart per owner. Mutate runs fn with exclusive access
// to the owner's cart and returns the snapshot taken right after fn, under the
// same lock. A cart is created empty on first use.
type CartRepository interface {
	Mutate(ctx context.Context, ownerID string, fn func(*Cart) error) (CartSnapshot, error)
	Snapshot(ctx context.Context, ownerID string) (CartSnapshot, error)
}

// UserRepository looks up registered accounts by email.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
}
