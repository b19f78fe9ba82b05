package repository

import (
	"context"
	"math"
	"sort"

	"garagehub/internal/domain"
	"garagehub/internal/geocode"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GarageFilters struct {
	City              string
	Origin            *geocode.Point
	IncludeUnverified bool
}

// ServiceEntry is one element of a garage's nested services write.
type ServiceEntry struct {
	Name  string
	Price float64
}

type GarageRepository struct {
	db *gorm.DB
}

func NewGarageRepository(db *gorm.DB) *GarageRepository {
	return &GarageRepository{db: db}
}

// GetAll returns garages with optional city and proximity filters. When an
// origin is supplied the result carries a distance annotation and is sorted
// nearest-first; otherwise no ordering is implied.
func (r *GarageRepository) GetAll(ctx context.Context, f GarageFilters) ([]domain.Garage, error) {
	q := r.db.WithContext(ctx).Model(&domain.Garage{})

	if !f.IncludeUnverified {
		q = q.Where("is_verified = ?", true)
	}
	if f.City != "" {
		q = q.Where("LOWER(city) = LOWER(?)", f.City)
	}

	var garages []domain.Garage
	err := q.
		Preload("Owner").
		Preload("Reviews").
		Preload("Reviews.User").
		Preload("ServicesOffered").
		Preload("ServicesOffered.Service").
		Find(&garages).Error
	if err != nil {
		return nil, err
	}

	if f.Origin != nil {
		annotateDistance(garages, *f.Origin)
		sort.SliceStable(garages, func(i, j int) bool {
			return *garages[i].DistanceKm < *garages[j].DistanceKm
		})
	}

	return garages, nil
}

func (r *GarageRepository) GetByID(ctx context.Context, id int64) (*domain.Garage, error) {
	var garage domain.Garage
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Reviews").
		Preload("Reviews.User").
		Preload("ServicesOffered").
		Preload("ServicesOffered.Service").
		First(&garage, id).Error
	if err != nil {
		return nil, err
	}
	return &garage, nil
}

func (r *GarageRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Garage, error) {
	var garages []domain.Garage
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Preload("Owner").
		Preload("Reviews").
		Preload("Reviews.User").
		Preload("ServicesOffered").
		Preload("ServicesOffered.Service").
		Find(&garages).Error
	return garages, err
}

// CreateWithServices inserts the garage and its priced services in one
// transaction. Catalog services are resolved by name, created when missing.
func (r *GarageRepository) CreateWithServices(ctx context.Context, g *domain.Garage, services []ServiceEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(g).Error; err != nil {
			return err
		}
		return insertGarageServices(tx, g.ID, services)
	})
}

// UpdateWithServices saves the garage's scalar fields and, when services is
// non-nil, replaces the full set of priced services. All-or-nothing.
func (r *GarageRepository) UpdateWithServices(ctx context.Context, g *domain.Garage, services *[]ServiceEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(g).Error; err != nil {
			return err
		}
		if services == nil {
			return nil
		}
		if err := tx.Where("garage_id = ?", g.ID).Delete(&domain.GarageService{}).Error; err != nil {
			return err
		}
		return insertGarageServices(tx, g.ID, *services)
	})
}

// Delete removes the garage and everything hanging off it. Child rows are
// deleted explicitly so the cascade holds on SQLite as well.
func (r *GarageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("garage_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("garage_id = ?", id).Delete(&domain.GarageService{}).Error; err != nil {
			return err
		}
		if err := tx.Where("seller_garage_id = ?", id).Delete(&domain.Part{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Garage{}, id).Error
	})
}

func insertGarageServices(tx *gorm.DB, garageID int64, services []ServiceEntry) error {
	for _, entry := range services {
		svc, err := findOrCreateService(tx, entry.Name)
		if err != nil {
			return err
		}
		gs := domain.GarageService{
			GarageID:  garageID,
			ServiceID: svc.ID,
			Price:     entry.Price,
		}
		if err := tx.Omit(clause.Associations).Create(&gs).Error; err != nil {
			return err
		}
	}
	return nil
}

func annotateDistance(garages []domain.Garage, origin geocode.Point) {
	for i := range garages {
		d := haversineKm(origin.Lat, origin.Lon, garages[i].Latitude, garages[i].Longitude)
		rounded := math.Round(d*100) / 100
		garages[i].DistanceKm = &rounded
	}
}

const earthRadiusKm = 6371.0

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
