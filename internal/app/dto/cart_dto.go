package dto

import "github.com/mrops-br/storefront-api/internal/domain"

// AddToCartRequest names the catalog product to add.
type AddToCartRequest struct {
	ProductID string `json:"product_id"`
}

type LineItemResponse struct {
	Product          *ProductResponse `json:"product"`
	Quantity         int              `json:"quantity"`
	LineTotal        float64          `json:"line_total"`
	LineTotalDisplay string           `json:"line_total_display"`
}

// CartResponse is the cart read model: lines in cart order, the line count
// used for badges, and the total.
type CartResponse struct {
	Items        []*LineItemResponse `json:"items"`
	Count        int                 `json:"count"`
	Total        float64             `json:"total"`
	TotalDisplay string              `json:"total_display"`
}

func ToLineItemResponseList(items []domain.LineItem) []*LineItemResponse {
	responses := make([]*LineItemResponse, len(items))
	for i, item := range items {
		total := item.LineTotal()
		responses[i] = &LineItemResponse{
			Product:          ToProductResponse(item.Product),
			Quantity:         item.Quantity,
			LineTotal:        total,
			LineTotalDisplay: FormatAmount(total),
		}
	}
	return responses
}

func ToCartResponse(snap domain.CartSnapshot) *CartResponse {
	return &CartResponse{
		Items:        ToLineItemResponseList(snap.Items),
		Count:        snap.Count,
		Total:        snap.Total,
		TotalDisplay: FormatAmount(snap.Total),
	}
}
