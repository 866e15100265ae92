package services

import (
	"context"

	"makerspace-system/internal/entities"
	"makerspace-system/internal/repositories"

	"go.uber.org/zap"
)

type UserServiceInterface interface {
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	SignWaiver(ctx context.Context, pid int64) (*entities.User, error)
}

type UserService struct {
	userRepository repositories.UserRepositoryInterface
	logger         *zap.Logger
}

func NewUserService(userRepository repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepository: userRepository, logger: logger}
}

func (s *UserService) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

// SignWaiver marks the equipment waiver as signed for the user with the given
// pid. Any authenticated caller signs their own waiver; there is no separate
// permission gate and no expiry or re-signing flow.
func (s *UserService) SignWaiver(ctx context.Context, pid int64) (*entities.User, error) {
	user, err := s.userRepository.SetWaiverSigned(ctx, pid)
	if err != nil {
		return nil, err
	}
	s.logger.Info("equipment waiver signed", zap.Int64("pid", pid))
	return user, nil
}
