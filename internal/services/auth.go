package services

import (
	"context"
	"errors"

	"makerspace-system/internal/dto"
	"makerspace-system/internal/entities"
	"makerspace-system/internal/repositories"
	apperrors "makerspace-system/pkg/errors"
	"makerspace-system/pkg/service"
	"makerspace-system/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, *entities.User, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
}

type AuthService struct {
	userRepository repositories.UserRepositoryInterface
	jwtService     service.JWTService
	logger         *zap.Logger
}

func NewAuthService(
	userRepository repositories.UserRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepository: userRepository,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, *entities.User, error) {
	user, err := s.userRepository.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.logger.Warn("login with wrong password", zap.String("email", payload.Email))
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("user logged in", zap.Uint64("userID", user.ID), zap.Int64("pid", user.PID))
	return &dto.TokenPairDTO{AccessToken: accessToken, RefreshToken: refreshToken}, user, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	// The user must still exist; a deleted account cannot refresh.
	if _, err := s.userRepository.FindUserByID(ctx, claims.UserID); err != nil {
		return nil, err
	}

	accessToken, newRefreshToken, err := s.jwtService.GenerateTokens(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}
