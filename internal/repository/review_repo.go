package repository

import (
	"context"

	"garagehub/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review. The (garage, user) unique index enforces
// one review per user per garage; a violation surfaces as a driver error.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(rv).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("User").First(rv, rv.ID).Error
}

func (r *ReviewRepository) GetByGarage(ctx context.Context, garageID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("garage_id = ?", garageID).
		Preload("User").
		Find(&reviews).Error
	return reviews, err
}
