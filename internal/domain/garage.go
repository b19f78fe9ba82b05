package domain

import "time"

type Garage struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id" gorm:"index;not null"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city" gorm:"index;size:100"`
	Country     string    `json:"country" gorm:"size:100"`
	Longitude   float64   `json:"-" gorm:"index"`
	Latitude    float64   `json:"-" gorm:"index"`
	PhoneNumber string    `json:"phone_number" gorm:"size:20"`
	Email       string    `json:"email"`
	Website     string    `json:"website,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`

	Owner           *User           `json:"owner,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Reviews         []Review        `json:"reviews,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	ServicesOffered []GarageService `json:"services_offered,omitempty" gorm:"constraint:OnDelete:CASCADE"`

	// Set by the repository when a proximity query supplied an origin.
	DistanceKm *float64 `json:"distance_km" gorm:"-"`
}

// Service is a global catalog entry, shared across garages.
type Service struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" gorm:"uniqueIndex;size:100"`
	Description string `json:"description"`
}

// GarageService prices a catalog service for one garage.
type GarageService struct {
	ID        int64   `json:"id"`
	GarageID  int64   `json:"-" gorm:"uniqueIndex:idx_garage_service;not null"`
	ServiceID int64   `json:"-" gorm:"uniqueIndex:idx_garage_service;not null"`
	Price     float64 `json:"price"`

	Service *Service `json:"service,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
