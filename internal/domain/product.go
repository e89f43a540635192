package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidProductName  = errors.New("product name is required")
	ErrInvalidProductPrice = errors.New("product price must not be negative")
)

// Product is a catalog record. It holds no references, so assigning a Product
// copies every field.
type Product struct {
	ID      string
	Name    string
	Price   float64
	Image   string
	InStock bool
}

// NewProduct creates a new product with validation
func NewProduct(name string, price float64, image string, inStock bool) (*Product, error) {
	product := &Product{
		ID:      uuid.New().String(),
		Name:    strings.TrimSpace(name),
		Price:   price,
		Image:   image,
		InStock: inStock,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate performs business validation on the product
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidProductName
	}
	if p.Price < 0 {
		return ErrInvalidProductPrice
	}
	return nil
}

// HasImage reports whether the product carries an image reference.
func (p Product) HasImage() bool {
	return p.Image != ""
}
