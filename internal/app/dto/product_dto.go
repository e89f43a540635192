package dto

import (
	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents the request to create a product
type CreateProductRequest struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Image   string  `json:"image,omitempty"`
	InStock bool    `json:"in_stock"`
}

// ProductResponse represents the product response
type ProductResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"price_display"`
	Image        string  `json:"image,omitempty"`
	InStock      bool    `json:"in_stock"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		PriceDisplay: FormatAmount(p.Price),
		Image:        p.Image,
		InStock:      p.InStock,
	}
}

// ToProductResponseList converts a list of domain Products to ProductResponse list
func ToProductResponseList(products []*domain.Product) []*ProductResponse {
	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(*p)
	}
	return responses
}

// FormatAmount renders an amount with exactly two decimals.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
