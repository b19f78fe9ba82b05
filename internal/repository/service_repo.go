package repository

import (
	"context"

	"garagehub/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// FindOrCreate resolves a catalog service by exact name, creating it when
// absent. Service names are unique catalog-wide.
func (r *ServiceRepository) FindOrCreate(ctx context.Context, name string) (*domain.Service, error) {
	return findOrCreateService(r.db.WithContext(ctx), name)
}

func (r *ServiceRepository) GetAll(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	err := r.db.WithContext(ctx).Order("name").Find(&services).Error
	return services, err
}

// findOrCreateService is the transaction-friendly form shared with the
// garage repository's nested writes.
func findOrCreateService(tx *gorm.DB, name string) (*domain.Service, error) {
	var svc domain.Service
	err := tx.Where(domain.Service{Name: name}).FirstOrCreate(&svc).Error
	if err != nil {
		return nil, err
	}
	return &svc, nil
}
