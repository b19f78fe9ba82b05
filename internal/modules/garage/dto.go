package garage

import (
	"math"
	"strconv"
	"time"

	"garagehub/internal/domain"
	"garagehub/internal/modules/review"
)

// ServiceWriteEntry is one element of the write-only services list. The
// service is referenced by name and created in the catalog when missing.
type ServiceWriteEntry struct {
	Service string `json:"service" validate:"required"`
	Price   string `json:"price" validate:"required"`
}

type CreateGarageRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description" validate:"required"`
	Address     string              `json:"address" validate:"required"`
	City        string              `json:"city" validate:"required"`
	Country     string              `json:"country" validate:"required"`
	PhoneNumber string              `json:"phone_number" validate:"required"`
	Email       string              `json:"email" validate:"required,email"`
	Website     string              `json:"website,omitempty"`
	Services    []ServiceWriteEntry `json:"services,omitempty"`
}

type UpdateGarageRequest struct {
	Name        *string              `json:"name,omitempty"`
	Description *string              `json:"description,omitempty"`
	Address     *string              `json:"address,omitempty"`
	City        *string              `json:"city,omitempty"`
	Country     *string              `json:"country,omitempty"`
	PhoneNumber *string              `json:"phone_number,omitempty"`
	Email       *string              `json:"email,omitempty"`
	Website     *string              `json:"website,omitempty"`
	Services    *[]ServiceWriteEntry `json:"services,omitempty"`
}

/* ---------- RESPONSES ---------- */

type OwnerResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LocationResponse struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type GarageServiceResponse struct {
	ID          int64  `json:"id"`
	ServiceName string `json:"service_name"`
	Price       string `json:"price"`
}

type GarageResponse struct {
	ID              int64                   `json:"id"`
	Name            string                  `json:"name"`
	Description     string                  `json:"description"`
	Address         string                  `json:"address"`
	City            string                  `json:"city"`
	Country         string                  `json:"country"`
	PhoneNumber     string                  `json:"phone_number"`
	Email           string                  `json:"email"`
	Website         string                  `json:"website,omitempty"`
	Location        LocationResponse        `json:"location"`
	Owner           OwnerResponse           `json:"owner"`
	Reviews         []review.Response       `json:"reviews"`
	ServicesOffered []GarageServiceResponse `json:"services_offered"`
	DistanceKm      *float64                `json:"distance_km"`
	AverageRating   *float64                `json:"average_rating"`
	IsVerified      bool                    `json:"is_verified"`
	CreatedAt       time.Time               `json:"created_at"`
}

func NewGarageResponse(g *domain.Garage) GarageResponse {
	resp := GarageResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Address:     g.Address,
		City:        g.City,
		Country:     g.Country,
		PhoneNumber: g.PhoneNumber,
		Email:       g.Email,
		Website:     g.Website,
		Location:    LocationResponse{Lon: g.Longitude, Lat: g.Latitude},
		Reviews:     review.NewResponseList(g.Reviews),
		DistanceKm:  g.DistanceKm,
		IsVerified:  g.IsVerified,
		CreatedAt:   g.CreatedAt,
	}

	if g.Owner != nil {
		resp.Owner = OwnerResponse{
			ID:       g.Owner.ID,
			Username: g.Owner.Username,
			Email:    g.Owner.Email,
		}
	}

	resp.ServicesOffered = make([]GarageServiceResponse, 0, len(g.ServicesOffered))
	for _, gs := range g.ServicesOffered {
		entry := GarageServiceResponse{
			ID:    gs.ID,
			Price: strconv.FormatFloat(gs.Price, 'f', 2, 64),
		}
		if gs.Service != nil {
			entry.ServiceName = gs.Service.Name
		}
		resp.ServicesOffered = append(resp.ServicesOffered, entry)
	}

	resp.AverageRating = averageRating(g.Reviews)
	return resp
}

func NewGarageResponseList(garages []domain.Garage) []GarageResponse {
	out := make([]GarageResponse, 0, len(garages))
	for i := range garages {
		out = append(out, NewGarageResponse(&garages[i]))
	}
	return out
}

// averageRating is the mean of all ratings rounded to one decimal place,
// nil when the garage has no reviews.
func averageRating(reviews []domain.Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	sum := 0
	for _, rv := range reviews {
		sum += rv.Rating
	}
	avg := math.Round(float64(sum)/float64(len(reviews))*10) / 10
	return &avg
}
