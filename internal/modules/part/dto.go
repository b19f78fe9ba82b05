package part

import (
	"strconv"

	"garagehub/internal/domain"
)

// Response renders seller garage and category as their display names.
type Response struct {
	ID           int64   `json:"id"`
	SellerGarage string  `json:"seller_garage"`
	Category     *string `json:"category"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Image        string  `json:"image,omitempty"`
	Price        string  `json:"price"`
	Stock        int     `json:"stock"`
	IsAvailable  bool    `json:"is_available"`
}

func NewResponse(p *domain.Part) Response {
	resp := Response{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Price:       strconv.FormatFloat(p.Price, 'f', 2, 64),
		Stock:       p.Stock,
		IsAvailable: p.IsAvailable,
	}
	if p.SellerGarage != nil {
		resp.SellerGarage = p.SellerGarage.Name
	}
	if p.Category != nil {
		name := p.Category.Name
		resp.Category = &name
	}
	return resp
}

func NewResponseList(parts []domain.Part) []Response {
	out := make([]Response, 0, len(parts))
	for i := range parts {
		out = append(out, NewResponse(&parts[i]))
	}
	return out
}
