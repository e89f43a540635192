package dto

import (
	"time"

	"github.com/mrops-br/storefront-api/internal/domain"
)

// CheckoutRequest is the shipping form. Email may be omitted.
type CheckoutRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
}

func (r *CheckoutRequest) ToAddress() domain.Address {
	return domain.Address{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		Country: r.Country,
		State:   r.State,
		City:    r.City,
	}
}

type OrderResponse struct {
	ID           string              `json:"id"`
	Items        []*LineItemResponse `json:"items"`
	Total        float64             `json:"total"`
	TotalDisplay string              `json:"total_display"`
	ShipTo       CheckoutRequest     `json:"ship_to"`
	PlacedAt     time.Time           `json:"placed_at"`
}

func ToOrderResponse(o *domain.Order) *OrderResponse {
	return &OrderResponse{
		ID:           o.ID,
		Items:        ToLineItemResponseList(o.Items),
		Total:        o.Total,
		TotalDisplay: FormatAmount(o.Total),
		ShipTo: CheckoutRequest{
			Name:    o.Address.Name,
			Email:   o.Address.Email,
			Phone:   o.Address.Phone,
			Address: o.Address.Address,
			Country: o.Address.Country,
			State:   o.Address.State,
			City:    o.Address.City,
		},
		PlacedAt: o.PlacedAt,
	}
}
