package auth

import (
	"context"
	"errors"

	"garagehub/internal/domain"
	"garagehub/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID int64, username string, isStaff bool) (string, error)
}

type Service struct {
	users *repository.UserRepository
	jwt   jwtService
}

func NewService(users *repository.UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, "", ErrEmailAlreadyExists
	}
	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return nil, "", ErrUsernameAlreadyExists
	}

	userType, err := parseUserType(req.UserType)
	if err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Profile: &domain.Profile{
			UserType:    userType,
			PhoneNumber: req.PhoneNumber,
		},
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username, user.IsStaff)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates by email, mirroring the platform's email-based sign-in.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username, user.IsStaff)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func parseUserType(raw string) (domain.UserType, error) {
	switch domain.UserType(raw) {
	case domain.UserTypeCarOwner, domain.UserTypeGarageAdmin:
		return domain.UserType(raw), nil
	case "":
		return domain.UserTypeCarOwner, nil
	default:
		return "", ErrInvalidUserType
	}
}
