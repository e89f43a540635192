package dto

import (
	"testing"

	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "25.00", FormatAmount(25))
	assert.Equal(t, "0.30", FormatAmount(0.1+0.2))
	assert.Equal(t, "649.50", FormatAmount(649.5))
	assert.Equal(t, "0.00", FormatAmount(0))
}

func TestToCartResponse(t *testing.T) {
	c := domain.NewCart()
	c.Add(domain.Product{ID: "A", Name: "A", Price: 10, InStock: true})
	c.Add(domain.Product{ID: "A", Name: "A", Price: 10, InStock: true})
	c.Add(domain.Product{ID: "B", Name: "B", Price: 5, InStock: true})

	resp := ToCartResponse(c.Snapshot())

	require.Len(t, resp.Items, 2)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 25.0, resp.Total)
	assert.Equal(t, "25.00", resp.TotalDisplay)
	assert.Equal(t, "A", resp.Items[0].Product.ID)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, "20.00", resp.Items[0].LineTotalDisplay)
}

func TestToCartResponse_EmptyHasNonNilItems(t *testing.T) {
	resp := ToCartResponse(domain.NewCart().Snapshot())
	assert.NotNil(t, resp.Items)
	assert.Equal(t, "0.00", resp.TotalDisplay)
}
