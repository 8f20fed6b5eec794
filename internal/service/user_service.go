package service

import (
	"context"
	"strings"
	"time"

	"chatgto-server/internal/models"
	"chatgto-server/internal/repository"

	"go.uber.org/zap"
)

// UserService handles user registration.
type UserService interface {
	// CreateUser stores a user record for an identity-provider uid.
	// Store failures are returned wrapped in models.ErrStoreFailure.
	CreateUser(ctx context.Context, firebaseUID, email string) (*models.User, error)
}

// Compile-time check to ensure userServiceImpl implements UserService
var _ UserService = (*userServiceImpl)(nil)

type userServiceImpl struct {
	userRepo repository.UserRepository
	now      func() time.Time
	logger   *zap.Logger
}

// NewUserService creates a UserService backed by userRepo.
func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &userServiceImpl{
		userRepo: userRepo,
		now:      time.Now,
		logger:   logger.Named("UserService"),
	}
}

func (s *userServiceImpl) CreateUser(ctx context.Context, firebaseUID, email string) (*models.User, error) {
	user := &models.User{
		FirebaseUID: strings.TrimSpace(firebaseUID),
		Email:       strings.TrimSpace(email),
		CreatedAt:   s.now().UTC(),
	}
	s.logger.Info("Creating user", zap.String("firebaseUID", user.FirebaseUID))

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
