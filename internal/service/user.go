package service

import (
	"context"

	"go.uber.org/zap"

	"cab/internal/domain"
	"cab/internal/geo"
	"cab/internal/repository"
)

// UserService handles user onboarding and location updates. It expects
// already-parsed scalar fields; parsing of free-form onboarding strings
// is the caller's responsibility.
type UserService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, log *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, log: log}
}

// RegisterUserRequest contains the parameters for onboarding a user.
type RegisterUserRequest struct {
	Name   string
	Gender string
	Age    int
}

// Register onboards a new user at the origin. Duplicate names are
// rejected with repository.ErrDuplicate.
func (s *UserService) Register(ctx context.Context, req RegisterUserRequest) (*domain.User, error) {
	if req.Name == "" {
		return nil, ErrInvalidName
	}
	if req.Age <= 0 {
		return nil, ErrInvalidAge
	}

	user := &domain.User{
		Name:   req.Name,
		Gender: req.Gender,
		Age:    req.Age,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user added", zap.String("user", user.Name))
	return user, nil
}

// UpdateLocation moves an existing user.
func (s *UserService) UpdateLocation(ctx context.Context, name string, location geo.Point) error {
	if name == "" {
		return ErrInvalidName
	}

	if err := s.userRepo.UpdateLocation(ctx, name, location); err != nil {
		return err
	}

	s.log.Info("user location updated",
		zap.String("user", name),
		zap.Stringer("location", location))
	return nil
}

// List returns a snapshot of all users.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.GetAll(ctx)
}
