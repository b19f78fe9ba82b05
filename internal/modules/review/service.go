package review

import (
	"context"
	"errors"
	"strings"

	"garagehub/internal/domain"
	"garagehub/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GarageGate lets the review module confirm the target garage exists without
// depending on the garage module.
type GarageGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Garage, error)
}

type Service struct {
	reviews *repository.ReviewRepository
	garages GarageGate
}

func NewService(reviews *repository.ReviewRepository, garages GarageGate) *Service {
	return &Service{reviews: reviews, garages: garages}
}

// Create stores one review per user per garage. The requester and the path
// garage always win over anything in the body.
func (s *Service) Create(ctx context.Context, userID, garageID int64, req CreateReviewRequest) (*domain.Review, error) {
	if userID <= 0 || garageID <= 0 || req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	if _, err := s.garages.GetByID(ctx, garageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		GarageID: garageID,
		UserID:   userID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) GetByGarage(ctx context.Context, garageID int64) ([]domain.Review, error) {
	if garageID <= 0 {
		return nil, ErrInvalidRequest
	}
	if _, err := s.garages.GetByID(ctx, garageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.reviews.GetByGarage(ctx, garageID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// SQLite reports the constraint in the message only.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
