package repository

import (
	"context"

	"garagehub/internal/domain"

	"gorm.io/gorm"
)

type PartRepository struct {
	db *gorm.DB
}

func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

// GetAvailable lists parts that are in stock and flagged available.
func (r *PartRepository) GetAvailable(ctx context.Context) ([]domain.Part, error) {
	var parts []domain.Part
	err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Preload("SellerGarage").
		Preload("Category").
		Find(&parts).Error
	return parts, err
}

// GetByID fetches one available part.
func (r *PartRepository) GetByID(ctx context.Context, id int64) (*domain.Part, error) {
	var part domain.Part
	err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Preload("SellerGarage").
		Preload("Category").
		First(&part, id).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

func (r *PartRepository) Create(ctx context.Context, p *domain.Part) error {
	return r.db.WithContext(ctx).Create(p).Error
}

type PartCategoryRepository struct {
	db *gorm.DB
}

func NewPartCategoryRepository(db *gorm.DB) *PartCategoryRepository {
	return &PartCategoryRepository{db: db}
}

func (r *PartCategoryRepository) Create(ctx context.Context, c *domain.PartCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *PartCategoryRepository) GetAll(ctx context.Context) ([]domain.PartCategory, error) {
	var categories []domain.PartCategory
	err := r.db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, err
}
