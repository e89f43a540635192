package memory

import (
	"context"

	"github.com/mrops-br/storefront-api/internal/domain"
)

// DefaultCatalog is the product list the service starts with when seeding is
// enabled.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{ID: "sku-cricket-bat", Name: "English Willow Cricket Bat", Price: 4999, Image: "https://cdn.storefront.dev/img/cricket-bat.jpg", InStock: true},
		{ID: "sku-football", Name: "Match Football Size 5", Price: 1299, Image: "https://cdn.storefront.dev/img/football.jpg", InStock: true},
		{ID: "sku-shin-guard", Name: "Shin Guard Pair", Price: 649.5, Image: "https://cdn.storefront.dev/img/shin-guard.jpg", InStock: true},
		{ID: "sku-goalkeeper-gloves", Name: "Goalkeeper Gloves", Price: 1899, InStock: false},
		{ID: "sku-stumps", Name: "Cricket Stumps Set", Price: 2150, Image: "https://cdn.storefront.dev/img/stumps.jpg", InStock: true},
		{ID: "sku-socks", Name: "Football Socks", Price: 299.99, InStock: true},
	}
}

// Seed loads products into the repository.
func (r *ProductRepository) Seed(ctx context.Context, products []domain.Product) error {
	for i := range products {
		if err := r.Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}
