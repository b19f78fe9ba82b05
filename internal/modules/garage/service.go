package garage

import (
	"context"
	"errors"
	"strconv"

	"garagehub/internal/domain"
	"garagehub/internal/geocode"
	"garagehub/internal/repository"

	"gorm.io/gorm"
)

// Viewer identifies the requester for read paths. A zero ID means anonymous.
type Viewer struct {
	ID      int64
	IsStaff bool
}

type Service struct {
	garages  *repository.GarageRepository
	geocoder geocode.Geocoder
}

func NewService(garages *repository.GarageRepository, geocoder geocode.Geocoder) *Service {
	return &Service{garages: garages, geocoder: geocoder}
}

// List applies the visibility rule, then the optional proximity sort, then the
// optional city filter. Staff see unverified garages too.
func (s *Service) List(ctx context.Context, viewer Viewer, city string, origin *geocode.Point) ([]domain.Garage, error) {
	return s.garages.GetAll(ctx, repository.GarageFilters{
		City:              city,
		Origin:            origin,
		IncludeUnverified: viewer.IsStaff,
	})
}

// Get returns one garage. Unverified garages are visible only to staff and
// to their owner.
func (s *Service) Get(ctx context.Context, viewer Viewer, id int64) (*domain.Garage, error) {
	g, err := s.garages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !g.IsVerified && !viewer.IsStaff && viewer.ID != g.OwnerID {
		return nil, ErrNotFound
	}
	return g, nil
}

func (s *Service) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Garage, error) {
	return s.garages.GetByOwnerID(ctx, ownerID)
}

// Create geocodes the address and stores the garage together with its priced
// services in one transaction. The requester becomes the owner and new
// garages start unverified.
func (s *Service) Create(ctx context.Context, ownerID int64, req CreateGarageRequest) (*domain.Garage, error) {
	entries, err := parseServiceEntries(req.Services)
	if err != nil {
		return nil, err
	}

	pt := s.geocoder.Geocode(ctx, req.Address+", "+req.City)

	g := &domain.Garage{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Longitude:   pt.Lon,
		Latitude:    pt.Lat,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Website:     req.Website,
	}

	if err := s.garages.CreateWithServices(ctx, g, entries); err != nil {
		return nil, err
	}
	return s.garages.GetByID(ctx, g.ID)
}

// Update applies the supplied fields, re-geocodes when address or city
// changed, and replaces the full services set when one was sent.
func (s *Service) Update(ctx context.Context, viewer Viewer, garageID int64, req UpdateGarageRequest) (*domain.Garage, error) {
	g, err := s.garages.GetByID(ctx, garageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.authorizeWrite(viewer, g); err != nil {
		return nil, err
	}

	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.Description != nil {
		g.Description = *req.Description
	}
	if req.Address != nil {
		g.Address = *req.Address
	}
	if req.City != nil {
		g.City = *req.City
	}
	if req.Country != nil {
		g.Country = *req.Country
	}
	if req.PhoneNumber != nil {
		g.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		g.Email = *req.Email
	}
	if req.Website != nil {
		g.Website = *req.Website
	}

	// Re-geocode only when a location component changed; the stored values
	// stand in for whichever part the request did not supply.
	if req.Address != nil || req.City != nil {
		pt := s.geocoder.Geocode(ctx, g.Address+", "+g.City)
		g.Longitude = pt.Lon
		g.Latitude = pt.Lat
	}

	var entries *[]repository.ServiceEntry
	if req.Services != nil {
		parsed, err := parseServiceEntries(*req.Services)
		if err != nil {
			return nil, err
		}
		entries = &parsed
	}

	if err := s.garages.UpdateWithServices(ctx, g, entries); err != nil {
		return nil, err
	}
	return s.garages.GetByID(ctx, garageID)
}

func (s *Service) Delete(ctx context.Context, viewer Viewer, garageID int64) error {
	g, err := s.garages.GetByID(ctx, garageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.authorizeWrite(viewer, g); err != nil {
		return err
	}
	return s.garages.Delete(ctx, garageID)
}

// authorizeWrite permits only the owner. For a garage the requester should
// not even know exists, the answer matches the read path's not-found rather
// than confirming it with a 403.
func (s *Service) authorizeWrite(viewer Viewer, g *domain.Garage) error {
	if domain.CanModify(viewer.ID, g) {
		return nil
	}
	if !g.IsVerified && !viewer.IsStaff {
		return ErrNotFound
	}
	return ErrForbidden
}

func parseServiceEntries(entries []ServiceWriteEntry) ([]repository.ServiceEntry, error) {
	out := make([]repository.ServiceEntry, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		// The same service twice would trip the (garage_id, service_id)
		// unique index mid-transaction; reject it as input instead.
		if seen[e.Service] {
			return nil, ErrDuplicateService
		}
		seen[e.Service] = true

		price, err := strconv.ParseFloat(e.Price, 64)
		if err != nil || price < 0 {
			return nil, ErrInvalidPrice
		}
		out = append(out, repository.ServiceEntry{Name: e.Service, Price: price})
	}
	return out, nil
}
