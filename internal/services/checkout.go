package services

import (
	"context"
	"errors"
	"fmt"

	"makerspace-system/internal/authz"
	"makerspace-system/internal/dto"
	"makerspace-system/internal/entities"
	"makerspace-system/internal/repositories"
	apperrors "makerspace-system/pkg/errors"

	"go.uber.org/zap"
)

type CheckoutServiceInterface interface {
	AddCheckoutRequest(ctx context.Context, user *entities.User, payload dto.CreateCheckoutRequestDTO) (*entities.CheckoutRequest, error)
	DeleteCheckoutRequest(ctx context.Context, subject *entities.User, payload dto.DeleteCheckoutRequestDTO) error
	ListCheckoutRequests(ctx context.Context, subject *entities.User) ([]entities.CheckoutRequest, error)
}

type CheckoutService struct {
	requestRepository repositories.CheckoutRequestRepositoryInterface
	enforcer          Enforcer
	logger            *zap.Logger
}

func NewCheckoutService(
	requestRepository repositories.CheckoutRequestRepositoryInterface,
	enforcer Enforcer,
	logger *zap.Logger,
) CheckoutServiceInterface {
	return &CheckoutService{
		requestRepository: requestRepository,
		enforcer:          enforcer,
		logger:            logger,
	}
}

// AddCheckoutRequest files a pending claim on a model. The waiver gate runs
// before any store access and no permission is required beyond it. The
// duplicate probe and the insert are two separate store calls; two concurrent
// calls for the same (model, pid) can both pass the probe. There is no unique
// index backing the rule, see migrations/00003.
func (s *CheckoutService) AddCheckoutRequest(ctx context.Context, user *entities.User, payload dto.CreateCheckoutRequestDTO) (*entities.CheckoutRequest, error) {
	if user == nil || !user.SignedEquipmentWavier {
		return nil, apperrors.ErrWaiverNotSigned
	}

	existing, err := s.requestRepository.FindRequest(ctx, payload.Model, payload.PID)
	if err != nil && !errors.Is(err, apperrors.ErrCheckoutRequestNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("model=%q: %w", payload.Model, apperrors.ErrDuplicateCheckoutRequest)
	}

	created, err := s.requestRepository.CreateRequest(ctx, &entities.CheckoutRequest{
		UserName: payload.UserName,
		Model:    payload.Model,
		PID:      payload.PID,
	})
	if err != nil {
		s.logger.Error("failed to create checkout request",
			zap.String("model", payload.Model),
			zap.Int64("pid", payload.PID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("checkout request created", zap.String("model", created.Model), zap.Int64("pid", created.PID))
	return created, nil
}

// DeleteCheckoutRequest removes the request matching (model, pid) exactly.
func (s *CheckoutService) DeleteCheckoutRequest(ctx context.Context, subject *entities.User, payload dto.DeleteCheckoutRequestDTO) error {
	if err := s.enforcer.Enforce(ctx, subject, authz.EquipmentDeleteRequest, authz.ResourceEquipment); err != nil {
		return err
	}

	if _, err := s.requestRepository.FindRequest(ctx, payload.Model, payload.PID); err != nil {
		return err
	}

	if err := s.requestRepository.DeleteRequest(ctx, payload.Model, payload.PID); err != nil {
		return err
	}

	s.logger.Info("checkout request deleted", zap.String("model", payload.Model), zap.Int64("pid", payload.PID))
	return nil
}

func (s *CheckoutService) ListCheckoutRequests(ctx context.Context, subject *entities.User) ([]entities.CheckoutRequest, error) {
	if err := s.enforcer.Enforce(ctx, subject, authz.EquipmentGetAllRequests, authz.ResourceEquipment); err != nil {
		return nil, err
	}
	return s.requestRepository.GetAllRequests(ctx)
}
